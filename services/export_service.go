package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"backend/models"
	"backend/store"
)

// Export data types.
const (
	ExportPersonal = "personal"
	ExportPhotos   = "photos"
	ExportMetrics  = "metrics"
	ExportComplete = "complete"
)

type ExportService struct {
	st    store.Store
	users *UserService
}

func NewExportService(st store.Store, users *UserService) *ExportService {
	return &ExportService{st: st, users: users}
}

// Build assembles one of the four export shapes and returns the download
// filename plus the JSON payload.
func (s *ExportService) Build(userID uint, dataType string) (string, []byte, error) {
	var payload map[string]interface{}
	var err error

	switch dataType {
	case ExportPersonal:
		payload, err = s.personal(userID)
	case ExportPhotos:
		payload, err = s.photos(userID)
	case ExportMetrics:
		payload, err = s.metrics(userID)
	case ExportComplete:
		payload, err = s.complete(userID)
	default:
		return "", nil, errors.New("Tipo de exportación inválido")
	}
	if err != nil {
		return "", nil, err
	}

	payload["exported_at"] = time.Now().Format(time.RFC3339)
	payload["data_type"] = dataType

	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("%s-export-%s.json", dataType, time.Now().Format("2006-01-02"))
	return filename, raw, nil
}

func (s *ExportService) personal(userID uint) (map[string]interface{}, error) {
	profile, err := s.users.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	prog, err := s.st.Progress().ByUser(userID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}
	return map[string]interface{}{
		"profile":  profile,
		"progress": prog,
	}, nil
}

func (s *ExportService) photos(userID uint) (map[string]interface{}, error) {
	photos, err := s.st.Photos().ByUser(userID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"photos": photos}, nil
}

func (s *ExportService) metrics(userID uint) (map[string]interface{}, error) {
	all, err := s.st.Metrics().ByUser(userID)
	if err != nil {
		return nil, err
	}
	out := map[string]interface{}{"inicio": nil, "fin": nil}
	for i := range all {
		switch all[i].Phase {
		case models.PhaseInicio:
			out["inicio"] = all[i]
		case models.PhaseFin:
			out["fin"] = all[i]
		}
	}
	return map[string]interface{}{"metrics": out}, nil
}

func (s *ExportService) complete(userID uint) (map[string]interface{}, error) {
	out, err := s.personal(userID)
	if err != nil {
		return nil, err
	}

	photos, err := s.photos(userID)
	if err != nil {
		return nil, err
	}
	out["photos"] = photos["photos"]

	metrics, err := s.metrics(userID)
	if err != nil {
		return nil, err
	}
	out["metrics"] = metrics["metrics"]

	habits, err := s.st.Habits().ByUser(userID)
	if err != nil {
		return nil, err
	}
	out["habits"] = habits

	plans, err := s.st.Plans().ByUser(userID)
	if err != nil {
		return nil, err
	}
	out["day_plans"] = plans

	participations, err := s.st.Participations().ByUser(userID)
	if err != nil {
		return nil, err
	}
	out["challenge_participations"] = participations

	return out, nil
}

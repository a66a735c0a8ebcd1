package services

import (
	"errors"

	"backend/models"
	"backend/store"
)

type PlanService struct {
	st       store.Store
	progress *ProgressService
}

func NewPlanService(st store.Store, progress *ProgressService) *PlanService {
	return &PlanService{st: st, progress: progress}
}

type PlanContentInput struct {
	Manana   string `json:"manana"`
	Mediodia string `json:"mediodia"`
	Tarde    string `json:"tarde"`
	Noche    string `json:"noche"`
}

func validDay(day int) bool { return day >= 0 && day <= 21 }

// GetDay returns the plan for one challenge day, creating an empty one on
// first access.
func (s *PlanService) GetDay(userID uint, day int) (*models.DayPlan, error) {
	if !validDay(day) {
		return nil, errors.New("Día fuera de rango (0-21)")
	}

	plan, err := s.st.Plans().ByUserAndDay(userID, day)
	if errors.Is(err, store.ErrNotFound) {
		plan = &models.DayPlan{UserID: userID, Day: day}
		if err := s.st.Plans().Create(plan); err != nil {
			return nil, err
		}
		return plan, nil
	}
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *PlanService) ListDays(userID uint) ([]models.DayPlan, error) {
	return s.st.Plans().ByUser(userID)
}

// UpsertContent sets the section texts for one day (coach or seed flow).
func (s *PlanService) UpsertContent(userID uint, day int, input PlanContentInput) (*models.DayPlan, error) {
	plan, err := s.GetDay(userID, day)
	if err != nil {
		return nil, err
	}

	plan.MananaContent = input.Manana
	plan.MediodiaContent = input.Mediodia
	plan.TardeContent = input.Tarde
	plan.NocheContent = input.Noche

	if err := s.st.Plans().Save(plan); err != nil {
		return nil, err
	}
	return plan, nil
}

// CompleteSection flips one section flag. Completing the fourth section of a
// day counts the day as done for the streak.
func (s *PlanService) CompleteSection(userID uint, day int, section string, done bool) (*models.DayPlan, error) {
	plan, err := s.GetDay(userID, day)
	if err != nil {
		return nil, err
	}

	wasAllDone := plan.AllDone()
	if !plan.SetSection(section, done) {
		return nil, errors.New("Sección inválida")
	}

	if err := s.st.Plans().Save(plan); err != nil {
		return nil, err
	}

	if plan.AllDone() && !wasAllDone {
		if _, err := s.progress.CompleteDay(userID); err != nil {
			return nil, err
		}
		if _, err := s.progress.RefreshAdherence(userID); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

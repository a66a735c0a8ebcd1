package services

import (
	"errors"

	"backend/models"
	"backend/store"
	"backend/utils"
)

type MetricsService struct {
	st    store.Store
	users *UserService
}

func NewMetricsService(st store.Store, users *UserService) *MetricsService {
	return &MetricsService{st: st, users: users}
}

// MetricsInput carries the measured fields of a Day-0 / Day-21 form. IMC is
// always derived server-side.
type MetricsInput struct {
	PesoKg             float64 `json:"peso_kg"`
	EstaturaCm         float64 `json:"estatura_cm"`
	CinturaCm          float64 `json:"cintura_cm"`
	CaderaCm           float64 `json:"cadera_cm"`
	PechoCm            float64 `json:"pecho_cm"`
	BrazoCm            float64 `json:"brazo_cm"`
	MusloCm            float64 `json:"muslo_cm"`
	CuelloCm           float64 `json:"cuello_cm"`
	GrasaPct           float64 `json:"grasa_pct"`
	MusculoPct         float64 `json:"musculo_pct"`
	AguaPct            float64 `json:"agua_pct"`
	PresionSistolica   float64 `json:"presion_sistolica"`
	PresionDiastolica  float64 `json:"presion_diastolica"`
	FrecuenciaCardiaca float64 `json:"frecuencia_cardiaca"`
	HorasSueno         float64 `json:"horas_sueno"`
	NivelEnergia       float64 `json:"nivel_energia"`
	NivelEstres        float64 `json:"nivel_estres"`
}

func validPhase(phase string) bool {
	return phase == models.PhaseInicio || phase == models.PhaseFin
}

// Submit creates the snapshot for (user, phase) or updates it in place on
// resubmission; at most one record exists per phase.
func (s *MetricsService) Submit(userID uint, phase string, input MetricsInput) (*models.HealthMetrics, error) {
	if !validPhase(phase) {
		return nil, errors.New("Fase inválida")
	}
	if input.PesoKg <= 0 || input.EstaturaCm <= 0 {
		return nil, errors.New("Peso y estatura son obligatorios")
	}

	imc, err := utils.CalculateIMC(input.PesoKg, input.EstaturaCm)
	if err != nil {
		return nil, err
	}

	existing, err := s.st.Metrics().ByUserAndPhase(userID, phase)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	m := existing
	if m == nil {
		m = &models.HealthMetrics{UserID: userID, Phase: phase}
	}
	m.PesoKg = input.PesoKg
	m.EstaturaCm = input.EstaturaCm
	m.IMC = imc
	m.CinturaCm = input.CinturaCm
	m.CaderaCm = input.CaderaCm
	m.PechoCm = input.PechoCm
	m.BrazoCm = input.BrazoCm
	m.MusloCm = input.MusloCm
	m.CuelloCm = input.CuelloCm
	m.GrasaPct = input.GrasaPct
	m.MusculoPct = input.MusculoPct
	m.AguaPct = input.AguaPct
	m.PresionSistolica = input.PresionSistolica
	m.PresionDiastolica = input.PresionDiastolica
	m.FrecuenciaCardiaca = input.FrecuenciaCardiaca
	m.HorasSueno = input.HorasSueno
	m.NivelEnergia = input.NivelEnergia
	m.NivelEstres = input.NivelEstres

	if existing == nil {
		err = s.st.Metrics().Create(m)
	} else {
		err = s.st.Metrics().Save(m)
	}
	if err != nil {
		return nil, err
	}

	if err := s.users.MarkPhaseCompleted(userID, phase); err != nil {
		return nil, err
	}
	return m, nil
}

// GetByPhase returns nil (not an error) when the snapshot has not been
// submitted yet.
func (s *MetricsService) GetByPhase(userID uint, phase string) (*models.HealthMetrics, error) {
	if !validPhase(phase) {
		return nil, errors.New("Fase inválida")
	}
	m, err := s.st.Metrics().ByUserAndPhase(userID, phase)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Comparison returns both snapshots side by side with per-field deltas for
// the progress charts.
func (s *MetricsService) Comparison(userID uint) (map[string]interface{}, error) {
	inicio, err := s.GetByPhase(userID, models.PhaseInicio)
	if err != nil {
		return nil, err
	}
	fin, err := s.GetByPhase(userID, models.PhaseFin)
	if err != nil {
		return nil, err
	}

	out := map[string]interface{}{
		"inicio": inicio,
		"fin":    fin,
	}
	if inicio != nil && fin != nil {
		out["delta"] = map[string]float64{
			"peso_kg":     fin.PesoKg - inicio.PesoKg,
			"imc":         fin.IMC - inicio.IMC,
			"cintura_cm":  fin.CinturaCm - inicio.CinturaCm,
			"cadera_cm":   fin.CaderaCm - inicio.CaderaCm,
			"grasa_pct":   fin.GrasaPct - inicio.GrasaPct,
			"musculo_pct": fin.MusculoPct - inicio.MusculoPct,
		}
		out["categoria_imc"] = utils.CategoriaIMC(fin.IMC)
	}
	return out, nil
}

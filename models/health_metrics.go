package models

import (
	"gorm.io/gorm"
)

const (
	PhaseInicio = "inicio" // Day 0 baseline
	PhaseFin    = "fin"    // Day 21 final
)

// HealthMetrics is an anthropometric snapshot tied to a user and a phase.
// At most one record exists per (user, phase); resubmission updates in place.
type HealthMetrics struct {
	gorm.Model
	UserID uint   `gorm:"index:idx_metrics_user_phase,unique;not null" json:"user_id"`
	Phase  string `gorm:"index:idx_metrics_user_phase,unique;size:10" json:"phase"`

	PesoKg     float64 `json:"peso_kg"`
	EstaturaCm float64 `json:"estatura_cm"`
	IMC        float64 `json:"imc"` // derived, 1 decimal

	CinturaCm float64 `json:"cintura_cm"`
	CaderaCm  float64 `json:"cadera_cm"`
	PechoCm   float64 `json:"pecho_cm"`
	BrazoCm   float64 `json:"brazo_cm"`
	MusloCm   float64 `json:"muslo_cm"`
	CuelloCm  float64 `json:"cuello_cm"`

	GrasaPct   float64 `json:"grasa_pct"`
	MusculoPct float64 `json:"musculo_pct"`
	AguaPct    float64 `json:"agua_pct"`

	PresionSistolica   float64 `json:"presion_sistolica"`
	PresionDiastolica  float64 `json:"presion_diastolica"`
	FrecuenciaCardiaca float64 `json:"frecuencia_cardiaca"`

	HorasSueno   float64 `json:"horas_sueno"`
	NivelEnergia float64 `json:"nivel_energia"`
	NivelEstres  float64 `json:"nivel_estres"`
}

// Populated reports whether at least one measured field carries a value.
func (m *HealthMetrics) Populated() bool {
	fields := []float64{
		m.PesoKg, m.EstaturaCm, m.IMC,
		m.CinturaCm, m.CaderaCm, m.PechoCm, m.BrazoCm, m.MusloCm, m.CuelloCm,
		m.GrasaPct, m.MusculoPct, m.AguaPct,
		m.PresionSistolica, m.PresionDiastolica, m.FrecuenciaCardiaca,
		m.HorasSueno, m.NivelEnergia, m.NivelEstres,
	}
	for _, f := range fields {
		if f > 0 {
			return true
		}
	}
	return false
}

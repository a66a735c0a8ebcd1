package models

import (
	"gorm.io/gorm"
)

// Section keys used in the API; each maps to a content + done pair below.
const (
	SectionManana   = "manana"
	SectionMediodia = "mediodia"
	SectionTarde    = "tarde"
	SectionNoche    = "noche"
)

// DayPlan is one user's plan for one challenge day (0..21), split into four
// time-of-day sections.
type DayPlan struct {
	gorm.Model
	UserID uint `gorm:"index:idx_plan_user_day,unique;not null" json:"user_id"`
	Day    int  `gorm:"index:idx_plan_user_day,unique" json:"day"`

	MananaContent   string `json:"manana_content"`
	MananaDone      bool   `json:"manana_done"`
	MediodiaContent string `json:"mediodia_content"`
	MediodiaDone    bool   `json:"mediodia_done"`
	TardeContent    string `json:"tarde_content"`
	TardeDone       bool   `json:"tarde_done"`
	NocheContent    string `json:"noche_content"`
	NocheDone       bool   `json:"noche_done"`
}

func (p *DayPlan) AllDone() bool {
	return p.MananaDone && p.MediodiaDone && p.TardeDone && p.NocheDone
}

// SetSection flips one section's completion flag. Unknown keys return false.
func (p *DayPlan) SetSection(section string, done bool) bool {
	switch section {
	case SectionManana:
		p.MananaDone = done
	case SectionMediodia:
		p.MediodiaDone = done
	case SectionTarde:
		p.TardeDone = done
	case SectionNoche:
		p.NocheDone = done
	default:
		return false
	}
	return true
}

package models

import (
	"gorm.io/gorm"
)

// CohortMember tracks per-user membership flags for one running 21-day
// challenge; it is the substrate the ranking is computed over.
type CohortMember struct {
	gorm.Model
	UserID         uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Day0Completed  bool    `json:"day0_completed"`
	Day21Completed bool    `json:"day21_completed"`
	AdherencePct   float64 `json:"adherence_pct"`
}

package models

import (
	"gorm.io/gorm"
)

// Photo is a phase-tagged progress photo. Final-phase photos feed the
// ranking bonus check.
type Photo struct {
	gorm.Model
	UserID  uint   `gorm:"index" json:"user_id"`
	Phase   string `gorm:"size:10" json:"phase"` // inicio | fin
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

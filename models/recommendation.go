package models

import (
	"gorm.io/gorm"
)

// Recommendation is a coach-authored tip broadcast to the cohort.
type Recommendation struct {
	gorm.Model
	CoachID  uint   `json:"coach_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
	Audience string `gorm:"size:20;default:'todos'" json:"audience"`
}

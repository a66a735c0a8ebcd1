package models

import (
	"gorm.io/gorm"
)

// Habit status cycle: incomplete -> partial -> completed -> incomplete.
const (
	HabitIncomplete = "incomplete"
	HabitPartial    = "partial"
	HabitCompleted  = "completed"
)

type Habit struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null" json:"user_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Target       int    `json:"target"` // optional; 0 means no numeric target
	Unit         string `json:"unit"`
	Status       string `gorm:"size:16;default:'incomplete'" json:"status"`
	CurrentValue int    `json:"current_value"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// MiniChallenge is a coach-defined side challenge with a reward payout.
type MiniChallenge struct {
	gorm.Model
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Target       int       `json:"target"`
	Unit         string    `json:"unit"`
	DurationDays int       `json:"duration_days"`
	RewardPoints int       `json:"reward_points"`
	StartsAt     time.Time `json:"starts_at"`
	EndsAt       time.Time `json:"ends_at"`
	Active       bool      `json:"active"`
	CreatedBy    uint      `json:"created_by"`
}

// ChallengeParticipation joins a user to a mini challenge. A user holds at
// most one active participation per challenge at a time.
type ChallengeParticipation struct {
	gorm.Model
	UserID        uint       `gorm:"index" json:"user_id"`
	ChallengeID   uint       `gorm:"index" json:"challenge_id"`
	Progress      int        `json:"progress"`
	Active        bool       `json:"active"`
	CompletedAt   *time.Time `json:"completed_at"`
	PointsAwarded int        `json:"points_awarded"`
}

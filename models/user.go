package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleParticipant = "Participante"
	RoleCoach       = "Coach"
)

// NotificationPreferences is embedded in User; updates merge field-wise,
// never by replacing the whole block.
type NotificationPreferences struct {
	DailyMoments  bool `gorm:"default:true"`
	Habits        bool `gorm:"default:true"`
	Challenges    bool `gorm:"default:true"`
	CoachMessages bool `gorm:"default:true"`
}

type User struct {
	gorm.Model
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	FirstName      string
	LastName       string
	Phone          string
	Birthday       time.Time
	Gender         string
	Role           string `gorm:"size:16;default:'Participante'"`
	ProfilePicture string

	Day0Completed  bool
	Day21Completed bool

	NotificationPrefs NotificationPreferences `gorm:"embedded;embeddedPrefix:notif_"`

	PrivacyConsent   bool
	MarketingConsent bool

	// Account deletion is a recorded request, never an erasure.
	DeletionRequested   bool
	DeletionRequestedAt *time.Time

	ResetToken    string
	ResetTokenExp time.Time

	Disabled bool
}

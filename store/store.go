package store

import (
	"errors"

	"backend/models"
)

// ErrNotFound is returned by every lookup that assumes existence. Services
// wrap it with a user-facing message.
var ErrNotFound = errors.New("record not found")

// Store is the injected data-access surface. Production wires the gorm
// implementation, tests and dev mode wire the in-memory one, and the Apper
// overlay reroutes broadcasts to the hosted database when configured.
type Store interface {
	Users() UserRepo
	Progress() ProgressRepo
	Metrics() MetricsRepo
	Plans() PlanRepo
	Habits() HabitRepo
	Challenges() ChallengeRepo
	Participations() ParticipationRepo
	Recommendations() RecommendationRepo
	Notifications() NotificationRepo
	Cohort() CohortRepo
	Photos() PhotoRepo
	Devices() DeviceRepo
}

type UserRepo interface {
	Create(u *models.User) error
	ByID(id uint) (*models.User, error)
	ByEmail(email string) (*models.User, error)
	ByResetToken(token string) (*models.User, error)
	Save(u *models.User) error
	All() ([]models.User, error)
}

type ProgressRepo interface {
	ByUser(userID uint) (*models.Progress, error)
	Create(p *models.Progress) error
	Save(p *models.Progress) error
}

type MetricsRepo interface {
	// ByUserAndPhase returns ErrNotFound when no snapshot exists yet; callers
	// decide whether that is an error or simply "not yet created".
	ByUserAndPhase(userID uint, phase string) (*models.HealthMetrics, error)
	ByUser(userID uint) ([]models.HealthMetrics, error)
	Create(m *models.HealthMetrics) error
	Save(m *models.HealthMetrics) error
}

type PlanRepo interface {
	ByUserAndDay(userID uint, day int) (*models.DayPlan, error)
	ByUser(userID uint) ([]models.DayPlan, error)
	Create(p *models.DayPlan) error
	Save(p *models.DayPlan) error
}

type HabitRepo interface {
	ByUser(userID uint) ([]models.Habit, error)
	ByID(id uint) (*models.Habit, error)
	Create(h *models.Habit) error
	Save(h *models.Habit) error
	Delete(id uint) error
}

type ChallengeRepo interface {
	All() ([]models.MiniChallenge, error)
	ByID(id uint) (*models.MiniChallenge, error)
	Create(c *models.MiniChallenge) error
	Save(c *models.MiniChallenge) error
	Delete(id uint) error
}

type ParticipationRepo interface {
	ByUser(userID uint) ([]models.ChallengeParticipation, error)
	ActiveByUserAndChallenge(userID, challengeID uint) (*models.ChallengeParticipation, error)
	Create(p *models.ChallengeParticipation) error
	Save(p *models.ChallengeParticipation) error
	DeleteByChallenge(challengeID uint) error
}

type RecommendationRepo interface {
	All() ([]models.Recommendation, error)
	Create(r *models.Recommendation) error
	Delete(id uint) error
}

type NotificationRepo interface {
	All() ([]models.Notification, error)
	ByID(id uint) (*models.Notification, error)
	Create(n *models.Notification) error
	Save(n *models.Notification) error
}

type CohortRepo interface {
	All() ([]models.CohortMember, error)
	ByUser(userID uint) (*models.CohortMember, error)
	Create(m *models.CohortMember) error
	Save(m *models.CohortMember) error
}

type PhotoRepo interface {
	ByUser(userID uint) ([]models.Photo, error)
	ByUserAndPhase(userID uint, phase string) ([]models.Photo, error)
	Create(p *models.Photo) error
	Delete(id uint) error
}

type DeviceRepo interface {
	ByUser(userID uint) ([]models.UserDevice, error)
	AllEnabled() ([]models.UserDevice, error)
	ByUserAndTokenHash(userID uint, hash string) (*models.UserDevice, error)
	Create(d *models.UserDevice) error
	Save(d *models.UserDevice) error
	SetEnabledForUser(userID uint, enabled bool) error
}

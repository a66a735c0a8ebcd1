package store

import (
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

// Gorm is the Postgres-backed store. Ids come from the column sequence here,
// so the memory store's max+1 reuse does not apply.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm { return &Gorm{db: db} }

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// ---- Users ----

type gormUsers struct{ db *gorm.DB }

func (g *Gorm) Users() UserRepo { return gormUsers{g.db} }

func (r gormUsers) Create(u *models.User) error { return r.db.Create(u).Error }

func (r gormUsers) ByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r gormUsers) ByEmail(email string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r gormUsers) ByResetToken(token string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("reset_token = ? AND reset_token <> ''", token).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r gormUsers) Save(u *models.User) error { return r.db.Save(u).Error }

func (r gormUsers) All() ([]models.User, error) {
	var out []models.User
	err := r.db.Find(&out).Error
	return out, err
}

// ---- Progress ----

type gormProgress struct{ db *gorm.DB }

func (g *Gorm) Progress() ProgressRepo { return gormProgress{g.db} }

func (r gormProgress) ByUser(userID uint) (*models.Progress, error) {
	var p models.Progress
	if err := r.db.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r gormProgress) Create(p *models.Progress) error { return r.db.Create(p).Error }
func (r gormProgress) Save(p *models.Progress) error   { return r.db.Save(p).Error }

// ---- HealthMetrics ----

type gormMetrics struct{ db *gorm.DB }

func (g *Gorm) Metrics() MetricsRepo { return gormMetrics{g.db} }

func (r gormMetrics) ByUserAndPhase(userID uint, phase string) (*models.HealthMetrics, error) {
	var m models.HealthMetrics
	if err := r.db.Where("user_id = ? AND phase = ?", userID, phase).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r gormMetrics) ByUser(userID uint) ([]models.HealthMetrics, error) {
	var out []models.HealthMetrics
	err := r.db.Where("user_id = ?", userID).Find(&out).Error
	return out, err
}

func (r gormMetrics) Create(m *models.HealthMetrics) error { return r.db.Create(m).Error }
func (r gormMetrics) Save(m *models.HealthMetrics) error   { return r.db.Save(m).Error }

// ---- DayPlans ----

type gormPlans struct{ db *gorm.DB }

func (g *Gorm) Plans() PlanRepo { return gormPlans{g.db} }

func (r gormPlans) ByUserAndDay(userID uint, day int) (*models.DayPlan, error) {
	var p models.DayPlan
	if err := r.db.Where("user_id = ? AND day = ?", userID, day).First(&p).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r gormPlans) ByUser(userID uint) ([]models.DayPlan, error) {
	var out []models.DayPlan
	err := r.db.Where("user_id = ?", userID).Order("day ASC").Find(&out).Error
	return out, err
}

func (r gormPlans) Create(p *models.DayPlan) error { return r.db.Create(p).Error }
func (r gormPlans) Save(p *models.DayPlan) error   { return r.db.Save(p).Error }

// ---- Habits ----

type gormHabits struct{ db *gorm.DB }

func (g *Gorm) Habits() HabitRepo { return gormHabits{g.db} }

func (r gormHabits) ByUser(userID uint) ([]models.Habit, error) {
	var out []models.Habit
	err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&out).Error
	return out, err
}

func (r gormHabits) ByID(id uint) (*models.Habit, error) {
	var h models.Habit
	if err := r.db.First(&h, id).Error; err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (r gormHabits) Create(h *models.Habit) error { return r.db.Create(h).Error }
func (r gormHabits) Save(h *models.Habit) error   { return r.db.Save(h).Error }

func (r gormHabits) Delete(id uint) error {
	res := r.db.Delete(&models.Habit{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- MiniChallenges ----

type gormChallenges struct{ db *gorm.DB }

func (g *Gorm) Challenges() ChallengeRepo { return gormChallenges{g.db} }

func (r gormChallenges) All() ([]models.MiniChallenge, error) {
	var out []models.MiniChallenge
	err := r.db.Order("id ASC").Find(&out).Error
	return out, err
}

func (r gormChallenges) ByID(id uint) (*models.MiniChallenge, error) {
	var c models.MiniChallenge
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r gormChallenges) Create(c *models.MiniChallenge) error { return r.db.Create(c).Error }
func (r gormChallenges) Save(c *models.MiniChallenge) error   { return r.db.Save(c).Error }

func (r gormChallenges) Delete(id uint) error {
	res := r.db.Delete(&models.MiniChallenge{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- ChallengeParticipations ----

type gormParticipations struct{ db *gorm.DB }

func (g *Gorm) Participations() ParticipationRepo { return gormParticipations{g.db} }

func (r gormParticipations) ByUser(userID uint) ([]models.ChallengeParticipation, error) {
	var out []models.ChallengeParticipation
	err := r.db.Where("user_id = ?", userID).Find(&out).Error
	return out, err
}

func (r gormParticipations) ActiveByUserAndChallenge(userID, challengeID uint) (*models.ChallengeParticipation, error) {
	var p models.ChallengeParticipation
	err := r.db.Where("user_id = ? AND challenge_id = ? AND active = ?", userID, challengeID, true).
		First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r gormParticipations) Create(p *models.ChallengeParticipation) error { return r.db.Create(p).Error }
func (r gormParticipations) Save(p *models.ChallengeParticipation) error   { return r.db.Save(p).Error }

func (r gormParticipations) DeleteByChallenge(challengeID uint) error {
	return r.db.Where("challenge_id = ?", challengeID).
		Delete(&models.ChallengeParticipation{}).Error
}

// ---- Recommendations ----

type gormRecommendations struct{ db *gorm.DB }

func (g *Gorm) Recommendations() RecommendationRepo { return gormRecommendations{g.db} }

func (r gormRecommendations) All() ([]models.Recommendation, error) {
	var out []models.Recommendation
	err := r.db.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r gormRecommendations) Create(rec *models.Recommendation) error { return r.db.Create(rec).Error }

func (r gormRecommendations) Delete(id uint) error {
	res := r.db.Delete(&models.Recommendation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Notifications ----

type gormNotifications struct{ db *gorm.DB }

func (g *Gorm) Notifications() NotificationRepo { return gormNotifications{g.db} }

func (r gormNotifications) All() ([]models.Notification, error) {
	var out []models.Notification
	err := r.db.Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r gormNotifications) ByID(id uint) (*models.Notification, error) {
	var n models.Notification
	if err := r.db.First(&n, id).Error; err != nil {
		return nil, translate(err)
	}
	return &n, nil
}

func (r gormNotifications) Create(n *models.Notification) error { return r.db.Create(n).Error }
func (r gormNotifications) Save(n *models.Notification) error   { return r.db.Save(n).Error }

// ---- Cohort ----

type gormCohort struct{ db *gorm.DB }

func (g *Gorm) Cohort() CohortRepo { return gormCohort{g.db} }

func (r gormCohort) All() ([]models.CohortMember, error) {
	var out []models.CohortMember
	err := r.db.Order("id ASC").Find(&out).Error
	return out, err
}

func (r gormCohort) ByUser(userID uint) (*models.CohortMember, error) {
	var m models.CohortMember
	if err := r.db.Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translate(err)
	}
	return &m, nil
}

func (r gormCohort) Create(m *models.CohortMember) error { return r.db.Create(m).Error }
func (r gormCohort) Save(m *models.CohortMember) error   { return r.db.Save(m).Error }

// ---- Photos ----

type gormPhotos struct{ db *gorm.DB }

func (g *Gorm) Photos() PhotoRepo { return gormPhotos{g.db} }

func (r gormPhotos) ByUser(userID uint) ([]models.Photo, error) {
	var out []models.Photo
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r gormPhotos) ByUserAndPhase(userID uint, phase string) ([]models.Photo, error) {
	var out []models.Photo
	err := r.db.Where("user_id = ? AND phase = ?", userID, phase).Find(&out).Error
	return out, err
}

func (r gormPhotos) Create(p *models.Photo) error { return r.db.Create(p).Error }

func (r gormPhotos) Delete(id uint) error {
	res := r.db.Delete(&models.Photo{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- Devices ----

type gormDevices struct{ db *gorm.DB }

func (g *Gorm) Devices() DeviceRepo { return gormDevices{g.db} }

func (r gormDevices) ByUser(userID uint) ([]models.UserDevice, error) {
	var out []models.UserDevice
	err := r.db.Where("user_id = ?", userID).Find(&out).Error
	return out, err
}

func (r gormDevices) AllEnabled() ([]models.UserDevice, error) {
	var out []models.UserDevice
	err := r.db.Where("enabled = ?", true).Find(&out).Error
	return out, err
}

func (r gormDevices) ByUserAndTokenHash(userID uint, hash string) (*models.UserDevice, error) {
	var d models.UserDevice
	if err := r.db.Where("user_id = ? AND token_hash = ?", userID, hash).First(&d).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (r gormDevices) Create(d *models.UserDevice) error { return r.db.Create(d).Error }
func (r gormDevices) Save(d *models.UserDevice) error   { return r.db.Save(d).Error }

func (r gormDevices) SetEnabledForUser(userID uint, enabled bool) error {
	return r.db.Model(&models.UserDevice{}).
		Where("user_id = ?", userID).
		Update("enabled", enabled).Error
}

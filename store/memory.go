package store

import (
	"sync"
	"time"

	"backend/models"
)

// Memory is the in-memory store. It mirrors the mock backend the product was
// developed against: ids are assigned max(existing)+1 (so deleting the
// max-id record makes its id reusable), every return value is a deep copy,
// lookups that miss return ErrNotFound, and an optional per-operation delay
// simulates network round-trips so loading states can be exercised.
//
// All access serializes through one mutex, which also removes the
// lost-update hazard between racing mutations.
type Memory struct {
	mu sync.Mutex

	// Latency enables the artificial round-trip delays (dev only).
	Latency bool

	users           []models.User
	progress        []models.Progress
	metrics         []models.HealthMetrics
	plans           []models.DayPlan
	habits          []models.Habit
	challenges      []models.MiniChallenge
	participations  []models.ChallengeParticipation
	recommendations []models.Recommendation
	notifications   []models.Notification
	cohort          []models.CohortMember
	photos          []models.Photo
	devices         []models.UserDevice
}

func NewMemory() *Memory { return &Memory{} }

const (
	readDelay   = 200 * time.Millisecond
	writeDelay  = 400 * time.Millisecond
	deleteDelay = 600 * time.Millisecond
)

func (m *Memory) wait(d time.Duration) {
	if m.Latency {
		time.Sleep(d)
	}
}

func nextID(ids []uint) uint {
	var max uint
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// ---- Users ----

type memUsers struct{ m *Memory }

func (m *Memory) Users() UserRepo { return memUsers{m} }

func (r memUsers) Create(u *models.User) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.users))
	for i := range r.m.users {
		ids[i] = r.m.users[i].ID
	}
	u.ID = nextID(ids)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	r.m.users = append(r.m.users, cloneUser(*u))
	return nil
}

func (r memUsers) ByID(id uint) (*models.User, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.users {
		if r.m.users[i].ID == id {
			c := cloneUser(r.m.users[i])
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memUsers) ByEmail(email string) (*models.User, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.users {
		if r.m.users[i].Email == email {
			c := cloneUser(r.m.users[i])
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memUsers) ByResetToken(token string) (*models.User, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.users {
		if token != "" && r.m.users[i].ResetToken == token {
			c := cloneUser(r.m.users[i])
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memUsers) Save(u *models.User) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.users {
		if r.m.users[i].ID == u.ID {
			u.UpdatedAt = time.Now()
			r.m.users[i] = cloneUser(*u)
			return nil
		}
	}
	return ErrNotFound
}

func (r memUsers) All() ([]models.User, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]models.User, len(r.m.users))
	for i := range r.m.users {
		out[i] = cloneUser(r.m.users[i])
	}
	return out, nil
}

func cloneUser(u models.User) models.User {
	c := u
	if u.DeletionRequestedAt != nil {
		t := *u.DeletionRequestedAt
		c.DeletionRequestedAt = &t
	}
	return c
}

// ---- Progress ----

type memProgress struct{ m *Memory }

func (m *Memory) Progress() ProgressRepo { return memProgress{m} }

func (r memProgress) ByUser(userID uint) (*models.Progress, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.progress {
		if r.m.progress[i].UserID == userID {
			c := r.m.progress[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memProgress) Create(p *models.Progress) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.progress))
	for i := range r.m.progress {
		ids[i] = r.m.progress[i].ID
	}
	p.ID = nextID(ids)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.m.progress = append(r.m.progress, *p)
	return nil
}

func (r memProgress) Save(p *models.Progress) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.progress {
		if r.m.progress[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			r.m.progress[i] = *p
			return nil
		}
	}
	return ErrNotFound
}

// ---- HealthMetrics ----

type memMetrics struct{ m *Memory }

func (m *Memory) Metrics() MetricsRepo { return memMetrics{m} }

func (r memMetrics) ByUserAndPhase(userID uint, phase string) (*models.HealthMetrics, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.metrics {
		if r.m.metrics[i].UserID == userID && r.m.metrics[i].Phase == phase {
			c := r.m.metrics[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memMetrics) ByUser(userID uint) ([]models.HealthMetrics, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.HealthMetrics
	for i := range r.m.metrics {
		if r.m.metrics[i].UserID == userID {
			out = append(out, r.m.metrics[i])
		}
	}
	return out, nil
}

func (r memMetrics) Create(mtr *models.HealthMetrics) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.metrics))
	for i := range r.m.metrics {
		ids[i] = r.m.metrics[i].ID
	}
	mtr.ID = nextID(ids)
	mtr.CreatedAt = time.Now()
	mtr.UpdatedAt = mtr.CreatedAt
	r.m.metrics = append(r.m.metrics, *mtr)
	return nil
}

func (r memMetrics) Save(mtr *models.HealthMetrics) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.metrics {
		if r.m.metrics[i].ID == mtr.ID {
			mtr.UpdatedAt = time.Now()
			r.m.metrics[i] = *mtr
			return nil
		}
	}
	return ErrNotFound
}

// ---- DayPlans ----

type memPlans struct{ m *Memory }

func (m *Memory) Plans() PlanRepo { return memPlans{m} }

func (r memPlans) ByUserAndDay(userID uint, day int) (*models.DayPlan, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.plans {
		if r.m.plans[i].UserID == userID && r.m.plans[i].Day == day {
			c := r.m.plans[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memPlans) ByUser(userID uint) ([]models.DayPlan, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.DayPlan
	for i := range r.m.plans {
		if r.m.plans[i].UserID == userID {
			out = append(out, r.m.plans[i])
		}
	}
	return out, nil
}

func (r memPlans) Create(p *models.DayPlan) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.plans))
	for i := range r.m.plans {
		ids[i] = r.m.plans[i].ID
	}
	p.ID = nextID(ids)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.m.plans = append(r.m.plans, *p)
	return nil
}

func (r memPlans) Save(p *models.DayPlan) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.plans {
		if r.m.plans[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			r.m.plans[i] = *p
			return nil
		}
	}
	return ErrNotFound
}

// ---- Habits ----

type memHabits struct{ m *Memory }

func (m *Memory) Habits() HabitRepo { return memHabits{m} }

func (r memHabits) ByUser(userID uint) ([]models.Habit, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Habit
	for i := range r.m.habits {
		if r.m.habits[i].UserID == userID {
			out = append(out, r.m.habits[i])
		}
	}
	return out, nil
}

func (r memHabits) ByID(id uint) (*models.Habit, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.habits {
		if r.m.habits[i].ID == id {
			c := r.m.habits[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memHabits) Create(h *models.Habit) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.habits))
	for i := range r.m.habits {
		ids[i] = r.m.habits[i].ID
	}
	h.ID = nextID(ids)
	h.CreatedAt = time.Now()
	h.UpdatedAt = h.CreatedAt
	if h.Status == "" {
		h.Status = models.HabitIncomplete
	}
	r.m.habits = append(r.m.habits, *h)
	return nil
}

func (r memHabits) Save(h *models.Habit) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.habits {
		if r.m.habits[i].ID == h.ID {
			h.UpdatedAt = time.Now()
			r.m.habits[i] = *h
			return nil
		}
	}
	return ErrNotFound
}

func (r memHabits) Delete(id uint) error {
	r.m.wait(deleteDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.habits {
		if r.m.habits[i].ID == id {
			r.m.habits = append(r.m.habits[:i], r.m.habits[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- MiniChallenges ----

type memChallenges struct{ m *Memory }

func (m *Memory) Challenges() ChallengeRepo { return memChallenges{m} }

func (r memChallenges) All() ([]models.MiniChallenge, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]models.MiniChallenge, len(r.m.challenges))
	copy(out, r.m.challenges)
	return out, nil
}

func (r memChallenges) ByID(id uint) (*models.MiniChallenge, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.challenges {
		if r.m.challenges[i].ID == id {
			c := r.m.challenges[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memChallenges) Create(c *models.MiniChallenge) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.challenges))
	for i := range r.m.challenges {
		ids[i] = r.m.challenges[i].ID
	}
	c.ID = nextID(ids)
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.m.challenges = append(r.m.challenges, *c)
	return nil
}

func (r memChallenges) Save(c *models.MiniChallenge) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.challenges {
		if r.m.challenges[i].ID == c.ID {
			c.UpdatedAt = time.Now()
			r.m.challenges[i] = *c
			return nil
		}
	}
	return ErrNotFound
}

func (r memChallenges) Delete(id uint) error {
	r.m.wait(deleteDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.challenges {
		if r.m.challenges[i].ID == id {
			r.m.challenges = append(r.m.challenges[:i], r.m.challenges[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- ChallengeParticipations ----

type memParticipations struct{ m *Memory }

func (m *Memory) Participations() ParticipationRepo { return memParticipations{m} }

func (r memParticipations) ByUser(userID uint) ([]models.ChallengeParticipation, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.ChallengeParticipation
	for i := range r.m.participations {
		if r.m.participations[i].UserID == userID {
			out = append(out, cloneParticipation(r.m.participations[i]))
		}
	}
	return out, nil
}

func (r memParticipations) ActiveByUserAndChallenge(userID, challengeID uint) (*models.ChallengeParticipation, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.participations {
		p := r.m.participations[i]
		if p.UserID == userID && p.ChallengeID == challengeID && p.Active {
			c := cloneParticipation(p)
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memParticipations) Create(p *models.ChallengeParticipation) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.participations))
	for i := range r.m.participations {
		ids[i] = r.m.participations[i].ID
	}
	p.ID = nextID(ids)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.m.participations = append(r.m.participations, cloneParticipation(*p))
	return nil
}

func (r memParticipations) Save(p *models.ChallengeParticipation) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.participations {
		if r.m.participations[i].ID == p.ID {
			p.UpdatedAt = time.Now()
			r.m.participations[i] = cloneParticipation(*p)
			return nil
		}
	}
	return ErrNotFound
}

// DeleteByChallenge is the manual cascade used when a mini challenge is
// removed. Other entities do not cascade.
func (r memParticipations) DeleteByChallenge(challengeID uint) error {
	r.m.wait(deleteDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	kept := r.m.participations[:0]
	for _, p := range r.m.participations {
		if p.ChallengeID != challengeID {
			kept = append(kept, p)
		}
	}
	r.m.participations = kept
	return nil
}

func cloneParticipation(p models.ChallengeParticipation) models.ChallengeParticipation {
	c := p
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		c.CompletedAt = &t
	}
	return c
}

// ---- Recommendations ----

type memRecommendations struct{ m *Memory }

func (m *Memory) Recommendations() RecommendationRepo { return memRecommendations{m} }

func (r memRecommendations) All() ([]models.Recommendation, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]models.Recommendation, len(r.m.recommendations))
	copy(out, r.m.recommendations)
	return out, nil
}

func (r memRecommendations) Create(rec *models.Recommendation) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.recommendations))
	for i := range r.m.recommendations {
		ids[i] = r.m.recommendations[i].ID
	}
	rec.ID = nextID(ids)
	rec.CreatedAt = time.Now()
	rec.UpdatedAt = rec.CreatedAt
	r.m.recommendations = append(r.m.recommendations, *rec)
	return nil
}

func (r memRecommendations) Delete(id uint) error {
	r.m.wait(deleteDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.recommendations {
		if r.m.recommendations[i].ID == id {
			r.m.recommendations = append(r.m.recommendations[:i], r.m.recommendations[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Notifications ----

type memNotifications struct{ m *Memory }

func (m *Memory) Notifications() NotificationRepo { return memNotifications{m} }

func (r memNotifications) All() ([]models.Notification, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]models.Notification, len(r.m.notifications))
	copy(out, r.m.notifications)
	return out, nil
}

func (r memNotifications) ByID(id uint) (*models.Notification, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.notifications {
		if r.m.notifications[i].ID == id {
			c := r.m.notifications[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memNotifications) Create(n *models.Notification) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.notifications))
	for i := range r.m.notifications {
		ids[i] = r.m.notifications[i].ID
	}
	n.ID = nextID(ids)
	n.CreatedAt = time.Now()
	n.UpdatedAt = n.CreatedAt
	r.m.notifications = append(r.m.notifications, *n)
	return nil
}

func (r memNotifications) Save(n *models.Notification) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.notifications {
		if r.m.notifications[i].ID == n.ID {
			n.UpdatedAt = time.Now()
			r.m.notifications[i] = *n
			return nil
		}
	}
	return ErrNotFound
}

// ---- Cohort ----

type memCohort struct{ m *Memory }

func (m *Memory) Cohort() CohortRepo { return memCohort{m} }

func (r memCohort) All() ([]models.CohortMember, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	out := make([]models.CohortMember, len(r.m.cohort))
	copy(out, r.m.cohort)
	return out, nil
}

func (r memCohort) ByUser(userID uint) (*models.CohortMember, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.cohort {
		if r.m.cohort[i].UserID == userID {
			c := r.m.cohort[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memCohort) Create(mem *models.CohortMember) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.cohort))
	for i := range r.m.cohort {
		ids[i] = r.m.cohort[i].ID
	}
	mem.ID = nextID(ids)
	mem.CreatedAt = time.Now()
	mem.UpdatedAt = mem.CreatedAt
	r.m.cohort = append(r.m.cohort, *mem)
	return nil
}

func (r memCohort) Save(mem *models.CohortMember) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.cohort {
		if r.m.cohort[i].ID == mem.ID {
			mem.UpdatedAt = time.Now()
			r.m.cohort[i] = *mem
			return nil
		}
	}
	return ErrNotFound
}

// ---- Photos ----

type memPhotos struct{ m *Memory }

func (m *Memory) Photos() PhotoRepo { return memPhotos{m} }

func (r memPhotos) ByUser(userID uint) ([]models.Photo, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Photo
	for i := range r.m.photos {
		if r.m.photos[i].UserID == userID {
			out = append(out, r.m.photos[i])
		}
	}
	return out, nil
}

func (r memPhotos) ByUserAndPhase(userID uint, phase string) ([]models.Photo, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.Photo
	for i := range r.m.photos {
		if r.m.photos[i].UserID == userID && r.m.photos[i].Phase == phase {
			out = append(out, r.m.photos[i])
		}
	}
	return out, nil
}

func (r memPhotos) Create(p *models.Photo) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.photos))
	for i := range r.m.photos {
		ids[i] = r.m.photos[i].ID
	}
	p.ID = nextID(ids)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	r.m.photos = append(r.m.photos, *p)
	return nil
}

func (r memPhotos) Delete(id uint) error {
	r.m.wait(deleteDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.photos {
		if r.m.photos[i].ID == id {
			r.m.photos = append(r.m.photos[:i], r.m.photos[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ---- Devices ----

type memDevices struct{ m *Memory }

func (m *Memory) Devices() DeviceRepo { return memDevices{m} }

func (r memDevices) ByUser(userID uint) ([]models.UserDevice, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.UserDevice
	for i := range r.m.devices {
		if r.m.devices[i].UserID == userID {
			out = append(out, r.m.devices[i])
		}
	}
	return out, nil
}

func (r memDevices) AllEnabled() ([]models.UserDevice, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []models.UserDevice
	for i := range r.m.devices {
		if r.m.devices[i].Enabled {
			out = append(out, r.m.devices[i])
		}
	}
	return out, nil
}

func (r memDevices) ByUserAndTokenHash(userID uint, hash string) (*models.UserDevice, error) {
	r.m.wait(readDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.devices {
		if r.m.devices[i].UserID == userID && r.m.devices[i].TokenHash == hash {
			c := r.m.devices[i]
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r memDevices) Create(d *models.UserDevice) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	ids := make([]uint, len(r.m.devices))
	for i := range r.m.devices {
		ids[i] = r.m.devices[i].ID
	}
	d.ID = nextID(ids)
	d.CreatedAt = time.Now()
	d.UpdatedAt = d.CreatedAt
	r.m.devices = append(r.m.devices, *d)
	return nil
}

func (r memDevices) Save(d *models.UserDevice) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.devices {
		if r.m.devices[i].ID == d.ID {
			d.UpdatedAt = time.Now()
			r.m.devices[i] = *d
			return nil
		}
	}
	return ErrNotFound
}

func (r memDevices) SetEnabledForUser(userID uint, enabled bool) error {
	r.m.wait(writeDelay)
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for i := range r.m.devices {
		if r.m.devices[i].UserID == userID {
			r.m.devices[i].Enabled = enabled
		}
	}
	return nil
}

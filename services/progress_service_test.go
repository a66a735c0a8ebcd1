package services

import (
	"testing"

	"backend/models"
	"backend/store"

	"github.com/stretchr/testify/assert"
)

func TestProgressLazyCreateDefaults(t *testing.T) {
	svc := NewProgressService(store.NewMemory())

	prog, err := svc.GetOrCreate(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, prog.CurrentDay)
	assert.Equal(t, 1, prog.Level)
	assert.Equal(t, 0, prog.TotalPoints)

	again, err := svc.GetOrCreate(1)
	assert.NoError(t, err)
	assert.Equal(t, prog.ID, again.ID)
}

func TestProgressAwardPointsLevelsUp(t *testing.T) {
	svc := NewProgressService(store.NewMemory())

	prog, err := svc.AwardPoints(1, 250, "reto_1")
	assert.NoError(t, err)
	assert.Equal(t, 250, prog.TotalPoints)
	assert.Equal(t, 3, prog.Level)
	assert.Contains(t, prog.AchievementList(), "reto_1")

	// the same achievement is not recorded twice
	prog, err = svc.AwardPoints(1, 10, "reto_1")
	assert.NoError(t, err)
	assert.Len(t, prog.AchievementList(), 1)
}

func TestProgressCompleteDayAdvancesAndCaps(t *testing.T) {
	svc := NewProgressService(store.NewMemory())

	var prog *models.Progress
	var err error
	for i := 0; i < 25; i++ {
		prog, err = svc.CompleteDay(1)
		assert.NoError(t, err)
	}

	// the challenge day never passes 21 even after extra completions
	assert.Equal(t, 21, prog.CurrentDay)
	assert.Equal(t, 25, prog.Streak)
	assert.Equal(t, 25, prog.BestStreak)
	assert.Equal(t, 250, prog.TotalPoints)
	assert.Contains(t, prog.AchievementList(), "racha_7")
	assert.Contains(t, prog.AchievementList(), "racha_21")
}

func TestProgressBreakStreakKeepsBest(t *testing.T) {
	svc := NewProgressService(store.NewMemory())

	for i := 0; i < 5; i++ {
		_, err := svc.CompleteDay(1)
		assert.NoError(t, err)
	}
	assert.NoError(t, svc.BreakStreak(1))

	prog, err := svc.GetOrCreate(1)
	assert.NoError(t, err)
	assert.Equal(t, 0, prog.Streak)
	assert.Equal(t, 5, prog.BestStreak)
}

func TestProgressRefreshAdherence(t *testing.T) {
	st := store.NewMemory()
	svc := NewProgressService(st)

	assert.NoError(t, st.Habits().Create(&models.Habit{UserID: 1, Name: "Agua", Status: models.HabitCompleted}))
	assert.NoError(t, st.Habits().Create(&models.Habit{UserID: 1, Name: "Caminar", Status: models.HabitIncomplete}))

	plan := &models.DayPlan{UserID: 1, Day: 1, MananaDone: true, MediodiaDone: true}
	assert.NoError(t, st.Plans().Create(plan))

	// 3 of 6 trackable items done
	pct, err := svc.RefreshAdherence(1)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, pct)

	prog, err := svc.GetOrCreate(1)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, prog.AdherencePct)
}

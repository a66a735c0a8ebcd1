package services

import (
	"fmt"
	"testing"

	"backend/models"
	"backend/store"

	"github.com/stretchr/testify/assert"
)

// seedMember creates a user, cohort membership and progress row in one go.
func seedMember(t *testing.T, st store.Store, points, day int) *models.User {
	t.Helper()
	u := seedUser(t, st, fmt.Sprintf("user%d-%d@example.com", points, day))
	assert.NoError(t, st.Cohort().Create(&models.CohortMember{UserID: u.ID}))
	assert.NoError(t, st.Progress().Create(&models.Progress{
		UserID:      u.ID,
		CurrentDay:  day,
		TotalPoints: points,
		Level:       1,
	}))
	return u
}

// completeUser satisfies both bonus conditions: two final photos and a
// populated final metrics record.
func completeUser(t *testing.T, st store.Store, userID uint) {
	t.Helper()
	for i := 0; i < 2; i++ {
		assert.NoError(t, st.Photos().Create(&models.Photo{UserID: userID, Phase: models.PhaseFin, URL: "s3://x"}))
	}
	assert.NoError(t, st.Metrics().Create(&models.HealthMetrics{
		UserID:     userID,
		Phase:      models.PhaseFin,
		PesoKg:     66,
		EstaturaCm: 175,
		IMC:        21.6,
	}))
}

func TestRankingBonusRequiresAllConditions(t *testing.T) {
	st := store.NewMemory()

	finished := seedMember(t, st, 200, 21)
	completeUser(t, st, finished.ID)

	// day 21 but only one final photo
	onePhoto := seedMember(t, st, 180, 21)
	assert.NoError(t, st.Photos().Create(&models.Photo{UserID: onePhoto.ID, Phase: models.PhaseFin, URL: "s3://y"}))
	assert.NoError(t, st.Metrics().Create(&models.HealthMetrics{UserID: onePhoto.ID, Phase: models.PhaseFin, PesoKg: 70, EstaturaCm: 170, IMC: 24.2}))

	// day 21 with photos but no final metrics
	noMetrics := seedMember(t, st, 170, 21)
	for i := 0; i < 2; i++ {
		assert.NoError(t, st.Photos().Create(&models.Photo{UserID: noMetrics.ID, Phase: models.PhaseFin, URL: "s3://z"}))
	}

	// mid-challenge user never qualifies
	midway := seedMember(t, st, 300, 10)
	completeUser(t, st, midway.ID)

	entries, err := NewRankingService(st).Compute()
	assert.NoError(t, err)
	assert.Len(t, entries, 4)

	byUser := map[uint]RankingEntry{}
	for _, e := range entries {
		byUser[e.UserID] = e
	}

	assert.Equal(t, 50, byUser[finished.ID].BonusPoints)
	assert.Equal(t, 250, byUser[finished.ID].TotalPoints)

	assert.Equal(t, 0, byUser[onePhoto.ID].BonusPoints)
	assert.Equal(t, 0, byUser[noMetrics.ID].BonusPoints)
	assert.Equal(t, 0, byUser[midway.ID].BonusPoints)
	assert.Equal(t, 300, byUser[midway.ID].TotalPoints)
}

func TestRankingStableOrderAndPositions(t *testing.T) {
	st := store.NewMemory()

	a := seedMember(t, st, 100, 5)
	b := seedMember(t, st, 150, 5)
	c := seedMember(t, st, 150, 5)
	d := seedMember(t, st, 90, 5)

	entries, err := NewRankingService(st).Compute()
	assert.NoError(t, err)
	assert.Len(t, entries, 4)

	// ties keep insertion order; positions are 1-based
	assert.Equal(t, []uint{b.ID, c.ID, a.ID, d.ID}, []uint{entries[0].UserID, entries[1].UserID, entries[2].UserID, entries[3].UserID})
	assert.Equal(t, []int{1, 2, 3, 4}, []int{entries[0].RankingPosition, entries[1].RankingPosition, entries[2].RankingPosition, entries[3].RankingPosition})
}

func TestRankingTopAndPosition(t *testing.T) {
	st := store.NewMemory()

	for i := 0; i < 12; i++ {
		seedMember(t, st, 10*(i+1), 5)
	}
	last := seedMember(t, st, 1, 5)

	svc := NewRankingService(st)

	top, err := svc.Top(10)
	assert.NoError(t, err)
	assert.Len(t, top, 10)

	entry, surrounding, err := svc.PositionOf(last.ID)
	assert.NoError(t, err)
	assert.Len(t, surrounding, 10)
	assert.Equal(t, 13, entry.RankingPosition)
}

func TestRankingRecalculateBumpsTimestamp(t *testing.T) {
	svc := NewRankingService(store.NewMemory())

	assert.True(t, svc.LastCalculated().IsZero())
	ts := svc.Recalculate()
	assert.False(t, ts.IsZero())
	assert.Equal(t, ts, svc.LastCalculated())
}

package services

import (
	"testing"

	"backend/models"
	"backend/store"

	"github.com/stretchr/testify/assert"
)

func TestUpdateProfileIsPartial(t *testing.T) {
	st := store.NewMemory()
	svc := NewUserService(st)
	u := seedUser(t, st, "ana@example.com")
	u.LastName = "Pérez"
	u.Phone = "555-1234"
	assert.NoError(t, st.Users().Save(u))

	assert.NoError(t, svc.UpdateProfile(u.ID, ProfileInput{FirstName: "Anita", Birthday: "1990-04-15"}))

	got, err := st.Users().ByID(u.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Anita", got.FirstName)
	assert.Equal(t, "Pérez", got.LastName)
	assert.Equal(t, "555-1234", got.Phone)
	assert.Equal(t, "1990-04-15", got.Birthday.Format("2006-01-02"))
}

func TestUpdateNotificationPreferencesMergesFieldWise(t *testing.T) {
	st := store.NewMemory()
	svc := NewUserService(st)
	u := seedUser(t, st, "ana@example.com")
	u.NotificationPrefs = models.NotificationPreferences{
		DailyMoments: true, Habits: true, Challenges: true, CoachMessages: true,
	}
	assert.NoError(t, st.Users().Save(u))

	off := false
	assert.NoError(t, svc.UpdateNotificationPreferences(u.ID, NotificationPrefsInput{Habits: &off}))

	got, err := st.Users().ByID(u.ID)
	assert.NoError(t, err)
	assert.False(t, got.NotificationPrefs.Habits)
	// untouched fields keep their stored values
	assert.True(t, got.NotificationPrefs.DailyMoments)
	assert.True(t, got.NotificationPrefs.Challenges)
	assert.True(t, got.NotificationPrefs.CoachMessages)
}

func TestRequestDeletionIsIdempotent(t *testing.T) {
	st := store.NewMemory()
	svc := NewUserService(st)
	u := seedUser(t, st, "ana@example.com")

	assert.NoError(t, svc.RequestDeletion(u.ID))

	got, err := st.Users().ByID(u.ID)
	assert.NoError(t, err)
	assert.True(t, got.DeletionRequested)
	assert.NotNil(t, got.DeletionRequestedAt)
	first := *got.DeletionRequestedAt

	assert.NoError(t, svc.RequestDeletion(u.ID))
	got, err = st.Users().ByID(u.ID)
	assert.NoError(t, err)
	assert.Equal(t, first, *got.DeletionRequestedAt)
}

func TestGetProfileHidesDisabledUsers(t *testing.T) {
	st := store.NewMemory()
	svc := NewUserService(st)
	u := seedUser(t, st, "ana@example.com")
	u.Disabled = true
	assert.NoError(t, st.Users().Save(u))

	_, err := svc.GetProfile(u.ID)
	assert.EqualError(t, err, "Usuario no encontrado o deshabilitado")
}

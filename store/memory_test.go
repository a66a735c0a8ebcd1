package store

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
)

func TestMemoryAssignsMaxPlusOneIDs(t *testing.T) {
	mem := NewMemory()

	h1 := &models.Habit{UserID: 1, Name: "Agua"}
	h2 := &models.Habit{UserID: 1, Name: "Caminar"}
	assert.NoError(t, mem.Habits().Create(h1))
	assert.NoError(t, mem.Habits().Create(h2))

	assert.Equal(t, uint(1), h1.ID)
	assert.Equal(t, uint(2), h2.ID)
}

func TestMemoryReusesIDAfterDeletingMax(t *testing.T) {
	mem := NewMemory()

	h1 := &models.Habit{UserID: 1, Name: "Agua"}
	h2 := &models.Habit{UserID: 1, Name: "Caminar"}
	assert.NoError(t, mem.Habits().Create(h1))
	assert.NoError(t, mem.Habits().Create(h2))

	// deleting the max-id record frees its id
	assert.NoError(t, mem.Habits().Delete(h2.ID))

	h3 := &models.Habit{UserID: 1, Name: "Dormir"}
	assert.NoError(t, mem.Habits().Create(h3))
	assert.Equal(t, h2.ID, h3.ID)
}

func TestMemoryLookupMissIsError(t *testing.T) {
	mem := NewMemory()

	_, err := mem.Habits().ByID(42)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = mem.Users().ByEmail("nadie@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, mem.Habits().Delete(42), ErrNotFound)
}

func TestMemoryReturnsCopies(t *testing.T) {
	mem := NewMemory()

	u := &models.User{Email: "ana@example.com", Password: "x", FirstName: "Ana"}
	assert.NoError(t, mem.Users().Create(u))

	got, err := mem.Users().ByID(u.ID)
	assert.NoError(t, err)

	// mutating the returned record must not leak into the store
	got.FirstName = "Cambiada"

	again, err := mem.Users().ByID(u.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Ana", again.FirstName)
}

func TestMemoryChallengeCascadeIsExplicitOnly(t *testing.T) {
	mem := NewMemory()

	ch := &models.MiniChallenge{Title: "10k pasos", Target: 10}
	assert.NoError(t, mem.Challenges().Create(ch))

	p := &models.ChallengeParticipation{UserID: 1, ChallengeID: ch.ID, Active: true}
	assert.NoError(t, mem.Participations().Create(p))

	// deleting the challenge alone leaves the participation behind
	assert.NoError(t, mem.Challenges().Delete(ch.ID))
	parts, err := mem.Participations().ByUser(1)
	assert.NoError(t, err)
	assert.Len(t, parts, 1)

	// the cascade is a separate, explicit call
	assert.NoError(t, mem.Participations().DeleteByChallenge(ch.ID))
	parts, err = mem.Participations().ByUser(1)
	assert.NoError(t, err)
	assert.Empty(t, parts)
}

package services

import (
	"testing"

	"backend/store"

	"github.com/stretchr/testify/assert"
)

func newChallengeService(st store.Store) *ChallengeService {
	return NewChallengeService(st, NewProgressService(st))
}

func TestChallengeCreateValidation(t *testing.T) {
	svc := newChallengeService(store.NewMemory())

	_, err := svc.Create(1, ChallengeInput{Title: "  ", Target: 10})
	assert.EqualError(t, err, "El título es obligatorio")

	_, err = svc.Create(1, ChallengeInput{Title: "10k pasos", Target: 0})
	assert.EqualError(t, err, "La meta debe ser mayor que cero")
}

func TestChallengeJoinOnceWhileActive(t *testing.T) {
	svc := newChallengeService(store.NewMemory())

	ch, err := svc.Create(1, ChallengeInput{Title: "10k pasos", Target: 10, RewardPoints: 30})
	assert.NoError(t, err)

	_, err = svc.Join(2, ch.ID)
	assert.NoError(t, err)

	_, err = svc.Join(2, ch.ID)
	assert.EqualError(t, err, "Ya tienes una participación activa en este reto")
}

func TestChallengeCompletionPaysReward(t *testing.T) {
	st := store.NewMemory()
	svc := newChallengeService(st)

	ch, err := svc.Create(1, ChallengeInput{Title: "10k pasos", Target: 10, RewardPoints: 30})
	assert.NoError(t, err)

	_, err = svc.Join(2, ch.ID)
	assert.NoError(t, err)

	part, err := svc.RecordProgress(2, ch.ID, 6)
	assert.NoError(t, err)
	assert.True(t, part.Active)
	assert.Equal(t, 6, part.Progress)

	// overshoot clamps at the target and completes the participation
	part, err = svc.RecordProgress(2, ch.ID, 7)
	assert.NoError(t, err)
	assert.False(t, part.Active)
	assert.Equal(t, 10, part.Progress)
	assert.NotNil(t, part.CompletedAt)
	assert.Equal(t, 30, part.PointsAwarded)

	prog, err := st.Progress().ByUser(2)
	assert.NoError(t, err)
	assert.Equal(t, 30, prog.TotalPoints)
	assert.Contains(t, prog.AchievementList(), "reto_1")
}

func TestChallengeRejoinAfterCompletion(t *testing.T) {
	svc := newChallengeService(store.NewMemory())

	ch, err := svc.Create(1, ChallengeInput{Title: "10k pasos", Target: 5})
	assert.NoError(t, err)

	_, err = svc.Join(2, ch.ID)
	assert.NoError(t, err)
	_, err = svc.RecordProgress(2, ch.ID, 5)
	assert.NoError(t, err)

	// the completed participation no longer blocks a new one
	_, err = svc.Join(2, ch.ID)
	assert.NoError(t, err)

	parts, err := svc.ParticipationsOf(2)
	assert.NoError(t, err)
	assert.Len(t, parts, 2)
}

func TestChallengeDeleteCascadesParticipations(t *testing.T) {
	st := store.NewMemory()
	svc := newChallengeService(st)

	ch, err := svc.Create(1, ChallengeInput{Title: "10k pasos", Target: 10})
	assert.NoError(t, err)
	_, err = svc.Join(2, ch.ID)
	assert.NoError(t, err)
	_, err = svc.Join(3, ch.ID)
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ch.ID))

	parts, err := st.Participations().ByUser(2)
	assert.NoError(t, err)
	assert.Empty(t, parts)
	parts, err = st.Participations().ByUser(3)
	assert.NoError(t, err)
	assert.Empty(t, parts)

	assert.EqualError(t, svc.Delete(ch.ID), "Reto no encontrado")
}

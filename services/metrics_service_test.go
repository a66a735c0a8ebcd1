package services

import (
	"testing"

	"backend/models"
	"backend/store"

	"github.com/stretchr/testify/assert"
)

func seedUser(t *testing.T, st store.Store, email string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Password: "x", FirstName: "Ana", Role: models.RoleParticipant}
	assert.NoError(t, st.Users().Create(u))
	return u
}

func TestMetricsSubmitComputesIMC(t *testing.T) {
	st := store.NewMemory()
	u := seedUser(t, st, "ana@example.com")
	svc := NewMetricsService(st, NewUserService(st))

	m, err := svc.Submit(u.ID, models.PhaseInicio, MetricsInput{PesoKg: 70, EstaturaCm: 175})
	assert.NoError(t, err)
	assert.Equal(t, 22.9, m.IMC)
}

func TestMetricsSubmitValidatesInput(t *testing.T) {
	st := store.NewMemory()
	u := seedUser(t, st, "ana@example.com")
	svc := NewMetricsService(st, NewUserService(st))

	_, err := svc.Submit(u.ID, "mitad", MetricsInput{PesoKg: 70, EstaturaCm: 175})
	assert.EqualError(t, err, "Fase inválida")

	_, err = svc.Submit(u.ID, models.PhaseInicio, MetricsInput{PesoKg: 0, EstaturaCm: 175})
	assert.EqualError(t, err, "Peso y estatura son obligatorios")
}

func TestMetricsResubmitUpdatesInPlace(t *testing.T) {
	st := store.NewMemory()
	u := seedUser(t, st, "ana@example.com")
	svc := NewMetricsService(st, NewUserService(st))

	first, err := svc.Submit(u.ID, models.PhaseInicio, MetricsInput{PesoKg: 70, EstaturaCm: 175})
	assert.NoError(t, err)

	second, err := svc.Submit(u.ID, models.PhaseInicio, MetricsInput{PesoKg: 68, EstaturaCm: 175})
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := st.Metrics().ByUser(u.ID)
	assert.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, 68.0, all[0].PesoKg)
}

func TestMetricsSubmitMarksPhaseCompleted(t *testing.T) {
	st := store.NewMemory()
	u := seedUser(t, st, "ana@example.com")
	svc := NewMetricsService(st, NewUserService(st))

	_, err := svc.Submit(u.ID, models.PhaseFin, MetricsInput{PesoKg: 66, EstaturaCm: 175})
	assert.NoError(t, err)

	user, err := st.Users().ByID(u.ID)
	assert.NoError(t, err)
	assert.True(t, user.Day21Completed)

	member, err := st.Cohort().ByUser(u.ID)
	assert.NoError(t, err)
	assert.True(t, member.Day21Completed)
}

func TestMetricsGetByPhaseMissingIsNil(t *testing.T) {
	st := store.NewMemory()
	u := seedUser(t, st, "ana@example.com")
	svc := NewMetricsService(st, NewUserService(st))

	m, err := svc.GetByPhase(u.ID, models.PhaseFin)
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func TestMetricsComparisonDeltas(t *testing.T) {
	st := store.NewMemory()
	u := seedUser(t, st, "ana@example.com")
	svc := NewMetricsService(st, NewUserService(st))

	_, err := svc.Submit(u.ID, models.PhaseInicio, MetricsInput{PesoKg: 70, EstaturaCm: 175})
	assert.NoError(t, err)
	_, err = svc.Submit(u.ID, models.PhaseFin, MetricsInput{PesoKg: 66, EstaturaCm: 175})
	assert.NoError(t, err)

	out, err := svc.Comparison(u.ID)
	assert.NoError(t, err)

	delta, ok := out["delta"].(map[string]float64)
	assert.True(t, ok)
	assert.InDelta(t, -4.0, delta["peso_kg"], 0.001)
}

package services

import (
	"testing"
	"time"

	"backend/models"
	"backend/store"

	"github.com/stretchr/testify/assert"
)

func TestRegisterCreatesParticipantWithCohort(t *testing.T) {
	st := store.NewMemory()
	svc := NewAuthService(st)

	user, err := svc.Register("ana@example.com", "secreta", "Ana", "Pérez")
	assert.NoError(t, err)
	assert.Equal(t, models.RoleParticipant, user.Role)
	assert.NotEqual(t, "secreta", user.Password)
	assert.True(t, user.NotificationPrefs.DailyMoments)

	_, err = st.Cohort().ByUser(user.ID)
	assert.NoError(t, err)

	_, err = svc.Register("ana@example.com", "otra", "Ana", "Pérez")
	assert.EqualError(t, err, "El email ya está registrado")
}

func TestLoginChecksPasswordAndDisabled(t *testing.T) {
	st := store.NewMemory()
	svc := NewAuthService(st)

	user, err := svc.Register("ana@example.com", "secreta", "Ana", "Pérez")
	assert.NoError(t, err)

	sess, err := svc.Login("ana@example.com", "secreta")
	assert.NoError(t, err)
	assert.Equal(t, user.ID, sess.UserID)
	assert.NotEmpty(t, sess.Token)

	_, err = svc.Login("ana@example.com", "equivocada")
	assert.EqualError(t, err, "Contraseña incorrecta")

	user.Disabled = true
	assert.NoError(t, st.Users().Save(user))
	_, err = svc.Login("ana@example.com", "secreta")
	assert.EqualError(t, err, "Usuario no encontrado o deshabilitado")
}

func TestPasswordResetFlow(t *testing.T) {
	st := store.NewMemory()
	svc := NewAuthService(st)

	_, err := svc.Register("ana@example.com", "secreta", "Ana", "Pérez")
	assert.NoError(t, err)

	code, err := svc.ForgotPassword("ana@example.com")
	assert.NoError(t, err)
	assert.Len(t, code, 6)

	assert.NoError(t, svc.ResetPassword(code, "nueva"))

	_, err = svc.Login("ana@example.com", "nueva")
	assert.NoError(t, err)

	// the code is single-use
	assert.EqualError(t, svc.ResetPassword(code, "otra"), "Código inválido o expirado")
}

func TestPasswordResetExpiredCode(t *testing.T) {
	st := store.NewMemory()
	svc := NewAuthService(st)

	user, err := svc.Register("ana@example.com", "secreta", "Ana", "Pérez")
	assert.NoError(t, err)

	code, err := svc.ForgotPassword("ana@example.com")
	assert.NoError(t, err)

	user, err = st.Users().ByID(user.ID)
	assert.NoError(t, err)
	user.ResetTokenExp = time.Now().Add(-time.Minute)
	assert.NoError(t, st.Users().Save(user))

	assert.EqualError(t, svc.ResetPassword(code, "nueva"), "Código inválido o expirado")
}

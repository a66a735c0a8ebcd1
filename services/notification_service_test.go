package services

import (
	"testing"

	"backend/models"
	"backend/store"

	"github.com/stretchr/testify/assert"
)

type recordingBroadcaster struct {
	sent []*models.Notification
}

func (r *recordingBroadcaster) BroadcastNotification(n *models.Notification) {
	r.sent = append(r.sent, n)
}

func TestNotificationCreateValidatesAndBroadcasts(t *testing.T) {
	st := store.NewMemory()
	rec := &recordingBroadcaster{}
	svc := NewNotificationService(st, rec)

	_, err := svc.Create(1, NotificationInput{Title: "", Message: "hola"})
	assert.EqualError(t, err, "El título es obligatorio")
	_, err = svc.Create(1, NotificationInput{Title: "Aviso", Message: " "})
	assert.EqualError(t, err, "El mensaje es obligatorio")

	n, err := svc.Create(1, NotificationInput{Title: "Aviso", Message: "Semana 2 empieza"})
	assert.NoError(t, err)
	assert.Equal(t, models.AudienceAll, n.Audience)
	assert.Len(t, rec.sent, 1)
}

func TestNotificationAudienceFilter(t *testing.T) {
	st := store.NewMemory()
	svc := NewNotificationService(st)

	participant := seedUser(t, st, "p@example.com")
	finished := seedUser(t, st, "f@example.com")
	finished.Day21Completed = true
	assert.NoError(t, st.Users().Save(finished))

	_, err := svc.Create(9, NotificationInput{Title: "Todos", Message: "m", Audience: models.AudienceAll})
	assert.NoError(t, err)
	_, err = svc.Create(9, NotificationInput{Title: "Solo completados", Message: "m", Audience: models.AudienceCompleted})
	assert.NoError(t, err)

	forParticipant, err := svc.ListFor(participant.ID)
	assert.NoError(t, err)
	assert.Len(t, forParticipant, 1)

	forFinished, err := svc.ListFor(finished.ID)
	assert.NoError(t, err)
	assert.Len(t, forFinished, 2)
}

func TestNotificationMarkReadIsPerUser(t *testing.T) {
	st := store.NewMemory()
	svc := NewNotificationService(st)

	a := seedUser(t, st, "a@example.com")
	b := seedUser(t, st, "b@example.com")

	n, err := svc.Create(9, NotificationInput{Title: "Aviso", Message: "m"})
	assert.NoError(t, err)

	assert.NoError(t, svc.MarkRead(n.ID, a.ID))
	// marking twice is a no-op
	assert.NoError(t, svc.MarkRead(n.ID, a.ID))

	forA, err := svc.ListFor(a.ID)
	assert.NoError(t, err)
	assert.True(t, forA[0]["read"].(bool))

	forB, err := svc.ListFor(b.ID)
	assert.NoError(t, err)
	assert.False(t, forB[0]["read"].(bool))

	assert.EqualError(t, svc.MarkRead(999, a.ID), "Notificación no encontrada")
}

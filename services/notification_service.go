package services

import (
	"errors"
	"strings"

	"backend/models"
	"backend/store"
)

// Broadcaster fans a new notification out to connected/registered clients.
// Both the websocket hub and the SNS push service satisfy it.
type Broadcaster interface {
	BroadcastNotification(n *models.Notification)
}

type NotificationService struct {
	st           store.Store
	broadcasters []Broadcaster
}

func NewNotificationService(st store.Store, broadcasters ...Broadcaster) *NotificationService {
	return &NotificationService{st: st, broadcasters: broadcasters}
}

type NotificationInput struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Audience string `json:"audience"`
}

func (s *NotificationService) Create(coachID uint, input NotificationInput) (*models.Notification, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.New("El título es obligatorio")
	}
	if strings.TrimSpace(input.Message) == "" {
		return nil, errors.New("El mensaje es obligatorio")
	}

	audience := input.Audience
	if audience == "" {
		audience = models.AudienceAll
	}

	n := &models.Notification{
		CoachID:  coachID,
		Title:    input.Title,
		Message:  input.Message,
		Category: input.Category,
		Audience: audience,
	}
	if err := s.st.Notifications().Create(n); err != nil {
		return nil, err
	}

	for _, b := range s.broadcasters {
		b.BroadcastNotification(n)
	}
	return n, nil
}

// ListFor returns the notifications visible to one user, each annotated with
// that user's read flag.
func (s *NotificationService) ListFor(userID uint) ([]map[string]interface{}, error) {
	user, err := s.st.Users().ByID(userID)
	if err != nil {
		return nil, errors.New("Usuario no encontrado")
	}

	all, err := s.st.Notifications().All()
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(all))
	for _, n := range all {
		if !audienceMatches(n.Audience, user) {
			continue
		}
		out = append(out, map[string]interface{}{
			"id":         n.ID,
			"title":      n.Title,
			"message":    n.Message,
			"category":   n.Category,
			"audience":   n.Audience,
			"created_at": n.CreatedAt,
			"read":       n.ReadByUser(userID),
		})
	}
	return out, nil
}

func audienceMatches(audience string, user *models.User) bool {
	switch audience {
	case "", models.AudienceAll:
		return true
	case models.AudienceParticipants:
		return user.Role == models.RoleParticipant
	case models.AudienceCompleted:
		return user.Day21Completed
	default:
		return true
	}
}

func (s *NotificationService) MarkRead(notificationID, userID uint) error {
	n, err := s.st.Notifications().ByID(notificationID)
	if err != nil {
		return errors.New("Notificación no encontrada")
	}
	if n.ReadByUser(userID) {
		return nil
	}
	n.MarkRead(userID)
	return s.st.Notifications().Save(n)
}

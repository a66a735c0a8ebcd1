package store

import (
	"context"
	"errors"
	"net/http"
	"time"

	"backend/apper"
	"backend/models"
)

// WithApper reroutes the broadcast entities (recommendations and
// notifications) through the Apper hosted database while everything else
// stays on the base store.
func WithApper(base Store, client *apper.Client) Store {
	return &apperOverlay{Store: base, client: client}
}

type apperOverlay struct {
	Store
	client *apper.Client
}

func (o *apperOverlay) Recommendations() RecommendationRepo {
	return apperRecommendations{o.client}
}

func (o *apperOverlay) Notifications() NotificationRepo {
	return apperNotifications{o.client}
}

func isApperMissing(err error) bool {
	var apErr *apper.Error
	return errors.As(err, &apErr) && apErr.Status == http.StatusNotFound
}

func recordTime(rec apper.Record, key string) time.Time {
	if s, ok := rec[key].(string); ok {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func recordUint(rec apper.Record, key string) uint {
	if f, ok := rec[key].(float64); ok {
		return uint(f)
	}
	return 0
}

func recordString(rec apper.Record, key string) string {
	s, _ := rec[key].(string)
	return s
}

// ---- Recommendations ----

const tableRecommendations = "recommendation"

type apperRecommendations struct{ client *apper.Client }

func decodeRecommendation(rec apper.Record) models.Recommendation {
	var r models.Recommendation
	r.ID = recordUint(rec, "Id")
	r.CreatedAt = recordTime(rec, "CreatedOn")
	r.UpdatedAt = recordTime(rec, "ModifiedOn")
	r.CoachID = recordUint(rec, "coach_id")
	r.Title = recordString(rec, "title")
	r.Body = recordString(rec, "body")
	r.Category = recordString(rec, "category")
	r.Audience = recordString(rec, "audience")
	return r
}

func (a apperRecommendations) All() ([]models.Recommendation, error) {
	recs, err := a.client.Query(context.Background(), tableRecommendations, apper.QueryOptions{})
	if err != nil {
		return nil, err
	}
	out := make([]models.Recommendation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, decodeRecommendation(rec))
	}
	return out, nil
}

func (a apperRecommendations) Create(r *models.Recommendation) error {
	created, err := a.client.Create(context.Background(), tableRecommendations, apper.Record{
		"coach_id": r.CoachID,
		"title":    r.Title,
		"body":     r.Body,
		"category": r.Category,
		"audience": r.Audience,
	})
	if err != nil {
		return err
	}
	*r = decodeRecommendation(created)
	return nil
}

func (a apperRecommendations) Delete(id uint) error {
	err := a.client.Delete(context.Background(), tableRecommendations, id)
	if isApperMissing(err) {
		return ErrNotFound
	}
	return err
}

// ---- Notifications ----

const tableNotifications = "notification"

type apperNotifications struct{ client *apper.Client }

func decodeNotification(rec apper.Record) models.Notification {
	var n models.Notification
	n.ID = recordUint(rec, "Id")
	n.CreatedAt = recordTime(rec, "CreatedOn")
	n.UpdatedAt = recordTime(rec, "ModifiedOn")
	n.CoachID = recordUint(rec, "coach_id")
	n.Title = recordString(rec, "title")
	n.Message = recordString(rec, "message")
	n.Category = recordString(rec, "category")
	n.Audience = recordString(rec, "audience")
	n.ReadBy = recordString(rec, "read_by")
	return n
}

func (a apperNotifications) All() ([]models.Notification, error) {
	recs, err := a.client.Query(context.Background(), tableNotifications, apper.QueryOptions{})
	if err != nil {
		return nil, err
	}
	out := make([]models.Notification, 0, len(recs))
	for _, rec := range recs {
		out = append(out, decodeNotification(rec))
	}
	return out, nil
}

func (a apperNotifications) ByID(id uint) (*models.Notification, error) {
	rec, err := a.client.FindByID(context.Background(), tableNotifications, id)
	if err != nil {
		if isApperMissing(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	n := decodeNotification(rec)
	return &n, nil
}

func (a apperNotifications) Create(n *models.Notification) error {
	created, err := a.client.Create(context.Background(), tableNotifications, apper.Record{
		"coach_id": n.CoachID,
		"title":    n.Title,
		"message":  n.Message,
		"category": n.Category,
		"audience": n.Audience,
		"read_by":  n.ReadBy,
	})
	if err != nil {
		return err
	}
	*n = decodeNotification(created)
	return nil
}

func (a apperNotifications) Save(n *models.Notification) error {
	_, err := a.client.Update(context.Background(), tableNotifications, n.ID, apper.Record{
		"title":    n.Title,
		"message":  n.Message,
		"category": n.Category,
		"audience": n.Audience,
		"read_by":  n.ReadBy,
	})
	if isApperMissing(err) {
		return ErrNotFound
	}
	return err
}

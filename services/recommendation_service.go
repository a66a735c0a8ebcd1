package services

import (
	"errors"
	"strings"

	"backend/models"
	"backend/store"
)

type RecommendationService struct {
	st store.Store
}

func NewRecommendationService(st store.Store) *RecommendationService {
	return &RecommendationService{st: st}
}

type RecommendationInput struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
	Audience string `json:"audience"`
}

func (s *RecommendationService) List() ([]models.Recommendation, error) {
	return s.st.Recommendations().All()
}

func (s *RecommendationService) Create(coachID uint, input RecommendationInput) (*models.Recommendation, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.New("El título es obligatorio")
	}

	audience := input.Audience
	if audience == "" {
		audience = models.AudienceAll
	}

	rec := &models.Recommendation{
		CoachID:  coachID,
		Title:    input.Title,
		Body:     input.Body,
		Category: input.Category,
		Audience: audience,
	}
	if err := s.st.Recommendations().Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *RecommendationService) Delete(id uint) error {
	err := s.st.Recommendations().Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		return errors.New("Recomendación no encontrada")
	}
	return err
}

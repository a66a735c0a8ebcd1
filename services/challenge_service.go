package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/models"
	"backend/store"
)

type ChallengeService struct {
	st       store.Store
	progress *ProgressService
}

func NewChallengeService(st store.Store, progress *ProgressService) *ChallengeService {
	return &ChallengeService{st: st, progress: progress}
}

type ChallengeInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Target       int    `json:"target"`
	Unit         string `json:"unit"`
	DurationDays int    `json:"duration_days"`
	RewardPoints int    `json:"reward_points"`
}

func (s *ChallengeService) List() ([]models.MiniChallenge, error) {
	return s.st.Challenges().All()
}

func (s *ChallengeService) Create(coachID uint, input ChallengeInput) (*models.MiniChallenge, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.New("El título es obligatorio")
	}
	if input.Target <= 0 {
		return nil, errors.New("La meta debe ser mayor que cero")
	}

	now := time.Now()
	duration := input.DurationDays
	if duration <= 0 {
		duration = 7
	}
	ch := &models.MiniChallenge{
		Title:        input.Title,
		Description:  input.Description,
		Target:       input.Target,
		Unit:         input.Unit,
		DurationDays: duration,
		RewardPoints: input.RewardPoints,
		StartsAt:     now,
		EndsAt:       now.AddDate(0, 0, duration),
		Active:       true,
		CreatedBy:    coachID,
	}
	if err := s.st.Challenges().Create(ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// Delete removes the challenge and manually cascades its participations.
// No other entity cascades on delete.
func (s *ChallengeService) Delete(challengeID uint) error {
	if _, err := s.st.Challenges().ByID(challengeID); err != nil {
		return errors.New("Reto no encontrado")
	}
	if err := s.st.Challenges().Delete(challengeID); err != nil {
		return err
	}
	return s.st.Participations().DeleteByChallenge(challengeID)
}

// Join enrolls a user. A user holds at most one active participation per
// challenge.
func (s *ChallengeService) Join(userID, challengeID uint) (*models.ChallengeParticipation, error) {
	ch, err := s.st.Challenges().ByID(challengeID)
	if err != nil {
		return nil, errors.New("Reto no encontrado")
	}
	if !ch.Active || time.Now().After(ch.EndsAt) {
		return nil, errors.New("El reto ya no está activo")
	}

	if _, err := s.st.Participations().ActiveByUserAndChallenge(userID, challengeID); err == nil {
		return nil, errors.New("Ya tienes una participación activa en este reto")
	}

	part := &models.ChallengeParticipation{
		UserID:      userID,
		ChallengeID: challengeID,
		Active:      true,
	}
	if err := s.st.Participations().Create(part); err != nil {
		return nil, err
	}
	return part, nil
}

// RecordProgress advances a participation; reaching the target completes it
// and pays the reward into the user's progress.
func (s *ChallengeService) RecordProgress(userID, challengeID uint, value int) (*models.ChallengeParticipation, error) {
	ch, err := s.st.Challenges().ByID(challengeID)
	if err != nil {
		return nil, errors.New("Reto no encontrado")
	}

	part, err := s.st.Participations().ActiveByUserAndChallenge(userID, challengeID)
	if err != nil {
		return nil, errors.New("No tienes una participación activa en este reto")
	}

	part.Progress += value
	if part.Progress >= ch.Target {
		now := time.Now()
		part.Progress = ch.Target
		part.Active = false
		part.CompletedAt = &now
		part.PointsAwarded = ch.RewardPoints

		if _, err := s.progress.AwardPoints(userID, ch.RewardPoints, fmt.Sprintf("reto_%d", ch.ID)); err != nil {
			return nil, err
		}
	}

	if err := s.st.Participations().Save(part); err != nil {
		return nil, err
	}
	return part, nil
}

func (s *ChallengeService) ParticipationsOf(userID uint) ([]models.ChallengeParticipation, error) {
	return s.st.Participations().ByUser(userID)
}

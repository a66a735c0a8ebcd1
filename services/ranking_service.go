package services

import (
	"errors"
	"log"
	"sort"
	"sync"
	"time"

	"backend/models"
	"backend/store"
)

const (
	// Flat bonus for completed participants who met the final-photos and
	// self-evaluation conditions.
	completionBonus = 50
	finalPhotosMin  = 2
)

type RankingService struct {
	st store.Store

	mu             sync.Mutex
	lastCalculated time.Time
}

func NewRankingService(st store.Store) *RankingService {
	return &RankingService{st: st}
}

// RankingEntry is one leaderboard row. TotalPoints already includes the
// bonus.
type RankingEntry struct {
	UserID          uint    `json:"user_id"`
	Name            string  `json:"name"`
	TotalPoints     int     `json:"total_points"`
	BonusPoints     int     `json:"bonus_points"`
	CurrentDay      int     `json:"current_day"`
	AdherencePct    float64 `json:"adherence_pct"`
	RankingPosition int     `json:"ranking_position"`
}

// Compute builds the full leaderboard over all cohort members. A failed
// bonus lookup for one member logs a warning and scores that member without
// the bonus instead of failing the whole ranking.
func (s *RankingService) Compute() ([]RankingEntry, error) {
	members, err := s.st.Cohort().All()
	if err != nil {
		return nil, err
	}

	entries := make([]RankingEntry, 0, len(members))
	for _, member := range members {
		entry := RankingEntry{
			UserID:       member.UserID,
			AdherencePct: member.AdherencePct,
		}

		if user, err := s.st.Users().ByID(member.UserID); err == nil {
			entry.Name = user.FirstName + " " + user.LastName
		}

		prog, err := s.st.Progress().ByUser(member.UserID)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		if prog != nil {
			entry.TotalPoints = prog.TotalPoints
			entry.CurrentDay = prog.CurrentDay
		}

		if entry.CurrentDay >= 21 {
			entry.BonusPoints = s.bonusFor(member.UserID)
			entry.TotalPoints += entry.BonusPoints
		}

		entries = append(entries, entry)
	}

	// stable: tied totals keep cohort order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalPoints > entries[j].TotalPoints
	})
	for i := range entries {
		entries[i].RankingPosition = i + 1
	}
	return entries, nil
}

// bonusFor checks the two independent conditions: at least two final-phase
// photos, and a populated Day-21 metrics record. Both must hold.
func (s *RankingService) bonusFor(userID uint) int {
	photos, err := s.st.Photos().ByUserAndPhase(userID, models.PhaseFin)
	if err != nil {
		log.Printf("ranking: foto lookup falló para usuario %d: %v", userID, err)
		return 0
	}
	if len(photos) < finalPhotosMin {
		return 0
	}

	metrics, err := s.st.Metrics().ByUserAndPhase(userID, models.PhaseFin)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("ranking: métricas lookup falló para usuario %d: %v", userID, err)
		}
		return 0
	}
	if !metrics.Populated() {
		return 0
	}
	return completionBonus
}

// Top returns the leaderboard limited to the first n entries (everything
// when n <= 0).
func (s *RankingService) Top(n int) ([]RankingEntry, error) {
	entries, err := s.Compute()
	if err != nil {
		return nil, err
	}
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries, nil
}

// PositionOf returns one user's entry plus the surrounding top 10.
func (s *RankingService) PositionOf(userID uint) (*RankingEntry, []RankingEntry, error) {
	entries, err := s.Compute()
	if err != nil {
		return nil, nil, err
	}

	top := entries
	if len(top) > 10 {
		top = top[:10]
	}
	for i := range entries {
		if entries[i].UserID == userID {
			return &entries[i], top, nil
		}
	}
	return nil, top, errors.New("Usuario no está en el ranking")
}

// Recalculate is a timestamp bump: the ranking is always computed live, so
// there is nothing to rebuild.
func (s *RankingService) Recalculate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastCalculated = time.Now()
	return s.lastCalculated
}

func (s *RankingService) LastCalculated() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCalculated
}

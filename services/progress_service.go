package services

import (
	"errors"
	"math"

	"backend/models"
	"backend/store"
)

type ProgressService struct {
	st store.Store
}

func NewProgressService(st store.Store) *ProgressService {
	return &ProgressService{st: st}
}

// GetOrCreate returns the user's progress row, creating it lazily with the
// challenge's starting state on first read.
func (s *ProgressService) GetOrCreate(userID uint) (*models.Progress, error) {
	prog, err := s.st.Progress().ByUser(userID)
	if errors.Is(err, store.ErrNotFound) {
		prog = &models.Progress{
			UserID:     userID,
			CurrentDay: 1,
			Level:      1,
		}
		if err := s.st.Progress().Create(prog); err != nil {
			return nil, err
		}
		return prog, nil
	}
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// AwardPoints adds points and recomputes the level (one level per 100
// points).
func (s *ProgressService) AwardPoints(userID uint, points int, achievement string) (*models.Progress, error) {
	prog, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	prog.TotalPoints += points
	prog.Level = prog.TotalPoints/100 + 1
	if achievement != "" {
		prog.AddAchievement(achievement)
	}
	if err := s.st.Progress().Save(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

// CompleteDay advances the challenge day, extends the streak and awards the
// daily completion points.
func (s *ProgressService) CompleteDay(userID uint) (*models.Progress, error) {
	prog, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	prog.Streak++
	if prog.Streak > prog.BestStreak {
		prog.BestStreak = prog.Streak
	}
	if prog.CurrentDay < 21 {
		prog.CurrentDay++
	}
	prog.TotalPoints += 10
	prog.Level = prog.TotalPoints/100 + 1

	switch prog.Streak {
	case 7:
		prog.AddAchievement("racha_7")
	case 21:
		prog.AddAchievement("racha_21")
	}

	if err := s.st.Progress().Save(prog); err != nil {
		return nil, err
	}
	return prog, nil
}

// BreakStreak resets the current streak when a day passes without activity.
func (s *ProgressService) BreakStreak(userID uint) error {
	prog, err := s.GetOrCreate(userID)
	if err != nil {
		return err
	}
	prog.Streak = 0
	return s.st.Progress().Save(prog)
}

// RefreshAdherence recomputes the adherence percentage from the user's
// habits and plan sections and mirrors it on the cohort membership.
func (s *ProgressService) RefreshAdherence(userID uint) (float64, error) {
	habits, err := s.st.Habits().ByUser(userID)
	if err != nil {
		return 0, err
	}
	plans, err := s.st.Plans().ByUser(userID)
	if err != nil {
		return 0, err
	}

	var total, done int
	for _, h := range habits {
		total++
		if h.Status == models.HabitCompleted {
			done++
		}
	}
	for _, p := range plans {
		for _, sec := range []bool{p.MananaDone, p.MediodiaDone, p.TardeDone, p.NocheDone} {
			total++
			if sec {
				done++
			}
		}
	}

	var pct float64
	if total > 0 {
		pct = math.Round(float64(done)/float64(total)*1000) / 10
	}

	prog, err := s.GetOrCreate(userID)
	if err != nil {
		return 0, err
	}
	prog.AdherencePct = pct
	if err := s.st.Progress().Save(prog); err != nil {
		return 0, err
	}

	if member, err := s.st.Cohort().ByUser(userID); err == nil {
		member.AdherencePct = pct
		_ = s.st.Cohort().Save(member)
	}

	return pct, nil
}

package services

import (
	"math"

	"backend/store"
)

// CohortService serves the coach views over the enrolled group.
type CohortService struct {
	st store.Store
}

func NewCohortService(st store.Store) *CohortService {
	return &CohortService{st: st}
}

type CohortSummary struct {
	Members         int     `json:"members"`
	Day0Completed   int     `json:"day0_completed"`
	Day21Completed  int     `json:"day21_completed"`
	AvgAdherencePct float64 `json:"avg_adherence_pct"`
}

func (s *CohortService) Summary() (*CohortSummary, error) {
	members, err := s.st.Cohort().All()
	if err != nil {
		return nil, err
	}

	out := &CohortSummary{Members: len(members)}
	var adherenceSum float64
	for _, m := range members {
		if m.Day0Completed {
			out.Day0Completed++
		}
		if m.Day21Completed {
			out.Day21Completed++
		}
		adherenceSum += m.AdherencePct
	}
	if len(members) > 0 {
		out.AvgAdherencePct = math.Round(adherenceSum/float64(len(members))*10) / 10
	}
	return out, nil
}

// Members lists the cohort with each member's name and progress attached.
func (s *CohortService) Members() ([]map[string]interface{}, error) {
	members, err := s.st.Cohort().All()
	if err != nil {
		return nil, err
	}

	out := make([]map[string]interface{}, 0, len(members))
	for _, m := range members {
		row := map[string]interface{}{
			"user_id":         m.UserID,
			"day0_completed":  m.Day0Completed,
			"day21_completed": m.Day21Completed,
			"adherence_pct":   m.AdherencePct,
		}
		if user, err := s.st.Users().ByID(m.UserID); err == nil {
			row["name"] = user.FirstName + " " + user.LastName
			row["email"] = user.Email
		}
		if prog, err := s.st.Progress().ByUser(m.UserID); err == nil {
			row["current_day"] = prog.CurrentDay
			row["total_points"] = prog.TotalPoints
			row["streak"] = prog.Streak
		}
		out = append(out, row)
	}
	return out, nil
}

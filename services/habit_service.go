package services

import (
	"errors"
	"strings"

	"backend/models"
	"backend/store"
)

type HabitService struct {
	st store.Store
}

func NewHabitService(st store.Store) *HabitService {
	return &HabitService{st: st}
}

type HabitInput struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Target   int    `json:"target"`
	Unit     string `json:"unit"`
}

func (s *HabitService) List(userID uint) ([]models.Habit, error) {
	return s.st.Habits().ByUser(userID)
}

func (s *HabitService) Create(userID uint, input HabitInput) (*models.Habit, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("El nombre es obligatorio")
	}

	habit := &models.Habit{
		UserID:   userID,
		Name:     input.Name,
		Category: input.Category,
		Target:   input.Target,
		Unit:     input.Unit,
		Status:   models.HabitIncomplete,
	}
	if err := s.st.Habits().Create(habit); err != nil {
		return nil, err
	}
	return habit, nil
}

// Toggle cycles the habit through its three states:
//
//	incomplete (value 0) -> partial (value = target/2, minimum 1)
//	-> completed (value = target) -> incomplete again.
func (s *HabitService) Toggle(userID, habitID uint) (*models.Habit, error) {
	habit, err := s.st.Habits().ByID(habitID)
	if err != nil || habit.UserID != userID {
		return nil, errors.New("Hábito no encontrado")
	}

	switch habit.Status {
	case models.HabitIncomplete:
		habit.Status = models.HabitPartial
		habit.CurrentValue = habit.Target / 2
		if habit.CurrentValue < 1 {
			habit.CurrentValue = 1
		}
	case models.HabitPartial:
		habit.Status = models.HabitCompleted
		habit.CurrentValue = habit.Target
	default:
		habit.Status = models.HabitIncomplete
		habit.CurrentValue = 0
	}

	if err := s.st.Habits().Save(habit); err != nil {
		return nil, err
	}
	return habit, nil
}

func (s *HabitService) Delete(userID, habitID uint) error {
	habit, err := s.st.Habits().ByID(habitID)
	if err != nil || habit.UserID != userID {
		return errors.New("Hábito no encontrado")
	}
	return s.st.Habits().Delete(habitID)
}

package services

import (
	"testing"

	"backend/models"
	"backend/store"

	"github.com/stretchr/testify/assert"
)

func TestHabitCreateRequiresName(t *testing.T) {
	svc := NewHabitService(store.NewMemory())

	_, err := svc.Create(1, HabitInput{Name: "   "})
	assert.EqualError(t, err, "El nombre es obligatorio")
}

func TestHabitToggleCycle(t *testing.T) {
	svc := NewHabitService(store.NewMemory())

	habit, err := svc.Create(1, HabitInput{Name: "Agua", Target: 8, Unit: "vasos"})
	assert.NoError(t, err)
	assert.Equal(t, models.HabitIncomplete, habit.Status)

	habit, err = svc.Toggle(1, habit.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.HabitPartial, habit.Status)
	assert.Equal(t, 4, habit.CurrentValue)

	habit, err = svc.Toggle(1, habit.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.HabitCompleted, habit.Status)
	assert.Equal(t, 8, habit.CurrentValue)

	// third toggle closes the cycle and resets the value
	habit, err = svc.Toggle(1, habit.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.HabitIncomplete, habit.Status)
	assert.Equal(t, 0, habit.CurrentValue)
}

func TestHabitTogglePartialValueFloorsAtOne(t *testing.T) {
	svc := NewHabitService(store.NewMemory())

	habit, err := svc.Create(1, HabitInput{Name: "Meditar", Target: 1})
	assert.NoError(t, err)

	habit, err = svc.Toggle(1, habit.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.HabitPartial, habit.Status)
	assert.Equal(t, 1, habit.CurrentValue)
}

func TestHabitOwnershipHidesOtherUsers(t *testing.T) {
	svc := NewHabitService(store.NewMemory())

	habit, err := svc.Create(1, HabitInput{Name: "Agua", Target: 8})
	assert.NoError(t, err)

	_, err = svc.Toggle(2, habit.ID)
	assert.EqualError(t, err, "Hábito no encontrado")

	err = svc.Delete(2, habit.ID)
	assert.EqualError(t, err, "Hábito no encontrado")

	// the real owner can still delete it
	assert.NoError(t, svc.Delete(1, habit.ID))
	list, err := svc.List(1)
	assert.NoError(t, err)
	assert.Empty(t, list)
}

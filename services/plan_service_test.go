package services

import (
	"testing"

	"backend/models"
	"backend/store"

	"github.com/stretchr/testify/assert"
)

func newPlanService(st store.Store) *PlanService {
	return NewPlanService(st, NewProgressService(st))
}

func TestPlanGetDayLazyCreates(t *testing.T) {
	svc := newPlanService(store.NewMemory())

	plan, err := svc.GetDay(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3, plan.Day)
	assert.False(t, plan.AllDone())

	again, err := svc.GetDay(1, 3)
	assert.NoError(t, err)
	assert.Equal(t, plan.ID, again.ID)
}

func TestPlanRejectsDayOutOfRange(t *testing.T) {
	svc := newPlanService(store.NewMemory())

	_, err := svc.GetDay(1, 22)
	assert.EqualError(t, err, "Día fuera de rango (0-21)")
	_, err = svc.GetDay(1, -1)
	assert.Error(t, err)
}

func TestPlanUpsertContent(t *testing.T) {
	svc := newPlanService(store.NewMemory())

	plan, err := svc.UpsertContent(1, 1, PlanContentInput{
		Manana: "Vaso de agua", Mediodia: "Caminata", Tarde: "Lectura", Noche: "Gratitud",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Vaso de agua", plan.MananaContent)
	assert.Equal(t, "Gratitud", plan.NocheContent)
}

func TestPlanCompletingAllSectionsCompletesDay(t *testing.T) {
	st := store.NewMemory()
	svc := newPlanService(st)

	for _, section := range []string{models.SectionManana, models.SectionMediodia, models.SectionTarde} {
		plan, err := svc.CompleteSection(1, 1, section, true)
		assert.NoError(t, err)
		assert.False(t, plan.AllDone())
	}

	// no progress row yet: three sections do not finish the day
	_, err := st.Progress().ByUser(1)
	assert.ErrorIs(t, err, store.ErrNotFound)

	plan, err := svc.CompleteSection(1, 1, models.SectionNoche, true)
	assert.NoError(t, err)
	assert.True(t, plan.AllDone())

	prog, err := st.Progress().ByUser(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, prog.Streak)
	assert.Equal(t, 10, prog.TotalPoints)
	assert.Equal(t, 100.0, prog.AdherencePct)
}

func TestPlanReflippingSectionDoesNotDoubleCount(t *testing.T) {
	st := store.NewMemory()
	svc := newPlanService(st)

	for _, section := range []string{models.SectionManana, models.SectionMediodia, models.SectionTarde, models.SectionNoche} {
		_, err := svc.CompleteSection(1, 1, section, true)
		assert.NoError(t, err)
	}

	// re-marking an already done section must not complete the day again
	_, err := svc.CompleteSection(1, 1, models.SectionNoche, true)
	assert.NoError(t, err)

	prog, err := st.Progress().ByUser(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, prog.Streak)
	assert.Equal(t, 10, prog.TotalPoints)
}

func TestPlanRejectsUnknownSection(t *testing.T) {
	svc := newPlanService(store.NewMemory())

	_, err := svc.CompleteSection(1, 1, "madrugada", true)
	assert.EqualError(t, err, "Sección inválida")
}

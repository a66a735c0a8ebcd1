package services

import (
	"testing"

	"backend/models"
	"backend/store"

	"github.com/stretchr/testify/assert"
)

func newPhotoService(st store.Store) *PhotoService {
	svc := NewPhotoService(st)
	svc.upload = func(base64Data, keyPrefix string) (string, error) {
		return "https://bucket.s3.amazonaws.com/" + keyPrefix + "/test.jpg", nil
	}
	return svc
}

func TestPhotoUploadTagsPhase(t *testing.T) {
	st := store.NewMemory()
	svc := newPhotoService(st)

	photo, err := svc.Upload(1, models.PhaseFin, "data:image/jpeg;base64,xxxx", "día 21")
	assert.NoError(t, err)
	assert.Equal(t, models.PhaseFin, photo.Phase)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/photos/1/fin/test.jpg", photo.URL)

	byPhase, err := st.Photos().ByUserAndPhase(1, models.PhaseFin)
	assert.NoError(t, err)
	assert.Len(t, byPhase, 1)
}

func TestPhotoUploadValidation(t *testing.T) {
	svc := newPhotoService(store.NewMemory())

	_, err := svc.Upload(1, "mitad", "data:image/jpeg;base64,xxxx", "")
	assert.EqualError(t, err, "Fase inválida")

	_, err = svc.Upload(1, models.PhaseInicio, "", "")
	assert.EqualError(t, err, "La imagen es obligatoria")
}

func TestPhotoDeleteIsOwnerScoped(t *testing.T) {
	st := store.NewMemory()
	svc := newPhotoService(st)

	photo, err := svc.Upload(1, models.PhaseInicio, "data:image/jpeg;base64,xxxx", "")
	assert.NoError(t, err)

	assert.EqualError(t, svc.Delete(2, photo.ID), "Foto no encontrada")
	assert.NoError(t, svc.Delete(1, photo.ID))

	list, err := svc.List(1)
	assert.NoError(t, err)
	assert.Empty(t, list)
}

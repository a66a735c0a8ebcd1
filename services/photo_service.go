package services

import (
	"errors"
	"fmt"

	"backend/models"
	"backend/store"
	"backend/utils"
)

type PhotoService struct {
	st store.Store

	// upload is swappable in tests; defaults to the S3 uploader.
	upload func(base64Data, keyPrefix string) (string, error)
}

func NewPhotoService(st store.Store) *PhotoService {
	return &PhotoService{st: st, upload: utils.UploadBase64ImageToS3}
}

func (s *PhotoService) List(userID uint) ([]models.Photo, error) {
	return s.st.Photos().ByUser(userID)
}

// Upload stores a phase-tagged progress photo in S3 and records it.
func (s *PhotoService) Upload(userID uint, phase, base64Data, caption string) (*models.Photo, error) {
	if !validPhase(phase) {
		return nil, errors.New("Fase inválida")
	}
	if base64Data == "" {
		return nil, errors.New("La imagen es obligatoria")
	}

	url, err := s.upload(base64Data, fmt.Sprintf("photos/%d/%s", userID, phase))
	if err != nil {
		return nil, err
	}

	photo := &models.Photo{
		UserID:  userID,
		Phase:   phase,
		URL:     url,
		Caption: caption,
	}
	if err := s.st.Photos().Create(photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *PhotoService) Delete(userID, photoID uint) error {
	photos, err := s.st.Photos().ByUser(userID)
	if err != nil {
		return err
	}
	for _, p := range photos {
		if p.ID == photoID {
			return s.st.Photos().Delete(photoID)
		}
	}
	return errors.New("Foto no encontrada")
}

package services

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"backend/models"
	"backend/store"

	"github.com/stretchr/testify/assert"
)

func TestExportFilename(t *testing.T) {
	st := store.NewMemory()
	u := seedUser(t, st, "ana@example.com")
	svc := NewExportService(st, NewUserService(st))

	filename, _, err := svc.Build(u.ID, ExportPersonal)
	assert.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("personal-export-%s.json", time.Now().Format("2006-01-02")), filename)
}

func TestExportShapes(t *testing.T) {
	st := store.NewMemory()
	u := seedUser(t, st, "ana@example.com")
	assert.NoError(t, st.Photos().Create(&models.Photo{UserID: u.ID, Phase: models.PhaseInicio, URL: "s3://a"}))
	assert.NoError(t, st.Metrics().Create(&models.HealthMetrics{UserID: u.ID, Phase: models.PhaseInicio, PesoKg: 70, EstaturaCm: 175, IMC: 22.9}))

	svc := NewExportService(st, NewUserService(st))

	for dataType, key := range map[string]string{
		ExportPersonal: "profile",
		ExportPhotos:   "photos",
		ExportMetrics:  "metrics",
	} {
		_, raw, err := svc.Build(u.ID, dataType)
		assert.NoError(t, err)

		var payload map[string]interface{}
		assert.NoError(t, json.Unmarshal(raw, &payload))
		assert.Equal(t, dataType, payload["data_type"])
		assert.Contains(t, payload, key)
		assert.Contains(t, payload, "exported_at")
	}

	_, raw, err := svc.Build(u.ID, ExportComplete)
	assert.NoError(t, err)
	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "profile")
	assert.Contains(t, payload, "photos")
	assert.Contains(t, payload, "metrics")
}

func TestExportRejectsUnknownType(t *testing.T) {
	st := store.NewMemory()
	u := seedUser(t, st, "ana@example.com")
	svc := NewExportService(st, NewUserService(st))

	_, _, err := svc.Build(u.ID, "video")
	assert.EqualError(t, err, "Tipo de exportación inválido")
}

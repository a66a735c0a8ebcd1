package controllers

import (
	"fmt"
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ExportController struct {
	Exports *services.ExportService
}

func NewExportController(exports *services.ExportService) *ExportController {
	return &ExportController{Exports: exports}
}

// GET /export/:type — personal | photos | metrics | complete
func (e *ExportController) Download(c *gin.Context) {
	filename, payload, err := e.Exports.Build(c.GetUint("userID"), c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", payload)
}

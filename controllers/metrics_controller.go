package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type MetricsController struct {
	Metrics *services.MetricsService
}

func NewMetricsController(metrics *services.MetricsService) *MetricsController {
	return &MetricsController{Metrics: metrics}
}

type metricsReq struct {
	Phase string `json:"phase" binding:"required"`
	services.MetricsInput
}

// POST /metrics — Day-0 or Day-21 form submission
func (m *MetricsController) Submit(c *gin.Context) {
	var req metricsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := m.Metrics.Submit(c.GetUint("userID"), req.Phase, req.MetricsInput)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GET /metrics/:phase
func (m *MetricsController) GetByPhase(c *gin.Context) {
	record, err := m.Metrics.GetByPhase(c.GetUint("userID"), c.Param("phase"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusOK, gin.H{"metrics": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"metrics": record})
}

// GET /metrics/comparison
func (m *MetricsController) Comparison(c *gin.Context) {
	out, err := m.Metrics.Comparison(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

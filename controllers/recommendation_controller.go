package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	Recommendations *services.RecommendationService
}

func NewRecommendationController(recs *services.RecommendationService) *RecommendationController {
	return &RecommendationController{Recommendations: recs}
}

func (r *RecommendationController) List(c *gin.Context) {
	recs, err := r.Recommendations.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// POST /coach/recommendations
func (r *RecommendationController) Create(c *gin.Context) {
	var input services.RecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := r.Recommendations.Create(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// DELETE /coach/recommendations/:id
func (r *RecommendationController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := r.Recommendations.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recomendación eliminada"})
}

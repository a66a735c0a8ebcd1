package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type RankingController struct {
	Ranking *services.RankingService
}

func NewRankingController(ranking *services.RankingService) *RankingController {
	return &RankingController{Ranking: ranking}
}

// GET /ranking?limit=N
func (r *RankingController) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Límite inválido"})
			return
		}
		limit = n
	}

	entries, err := r.Ranking.Top(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ranking": entries})
}

// GET /ranking/me — own position plus the top 10
func (r *RankingController) Me(c *gin.Context) {
	entry, top, err := r.Ranking.PositionOf(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "top": top})
		return
	}
	c.JSON(http.StatusOK, gin.H{"me": entry, "top": top})
}

// POST /coach/ranking/recalculate
func (r *RankingController) Recalculate(c *gin.Context) {
	at := r.Ranking.Recalculate()
	c.JSON(http.StatusOK, gin.H{"message": "Ranking recalculado", "calculated_at": at})
}

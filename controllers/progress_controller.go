package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *services.ProgressService
}

func NewProgressController(progress *services.ProgressService) *ProgressController {
	return &ProgressController{Progress: progress}
}

func (p *ProgressController) Get(c *gin.Context) {
	prog, err := p.Progress.GetOrCreate(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_day":   prog.CurrentDay,
		"streak":        prog.Streak,
		"best_streak":   prog.BestStreak,
		"total_points":  prog.TotalPoints,
		"level":         prog.Level,
		"adherence_pct": prog.AdherencePct,
		"achievements":  prog.AchievementList(),
	})
}

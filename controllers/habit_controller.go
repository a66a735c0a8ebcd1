package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type HabitController struct {
	Habits   *services.HabitService
	Progress *services.ProgressService
}

func NewHabitController(habits *services.HabitService, progress *services.ProgressService) *HabitController {
	return &HabitController{Habits: habits, Progress: progress}
}

func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Identificador inválido"})
		return 0, false
	}
	return uint(id), true
}

func (h *HabitController) List(c *gin.Context) {
	habits, err := h.Habits.List(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

func (h *HabitController) Create(c *gin.Context) {
	var input services.HabitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.Habits.Create(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, habit)
}

// POST /habits/:id/toggle
func (h *HabitController) Toggle(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	userID := c.GetUint("userID")
	habit, err := h.Habits.Toggle(userID, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	// adherence follows habit completion
	if _, err := h.Progress.RefreshAdherence(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, habit)
}

func (h *HabitController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.Habits.Delete(c.GetUint("userID"), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hábito eliminado"})
}

package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ChallengeController struct {
	Challenges *services.ChallengeService
}

func NewChallengeController(challenges *services.ChallengeService) *ChallengeController {
	return &ChallengeController{Challenges: challenges}
}

func (ch *ChallengeController) List(c *gin.Context) {
	challenges, err := ch.Challenges.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

// POST /coach/challenges
func (ch *ChallengeController) Create(c *gin.Context) {
	var input services.ChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := ch.Challenges.Create(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DELETE /coach/challenges/:id
func (ch *ChallengeController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := ch.Challenges.Delete(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reto eliminado"})
}

// POST /challenges/:id/join
func (ch *ChallengeController) Join(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	part, err := ch.Challenges.Join(c.GetUint("userID"), id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, part)
}

type challengeProgressReq struct {
	Value int `json:"value" binding:"required"`
}

// POST /challenges/:id/progress
func (ch *ChallengeController) RecordProgress(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req challengeProgressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	part, err := ch.Challenges.RecordProgress(c.GetUint("userID"), id, req.Value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, part)
}

// GET /challenges/mine
func (ch *ChallengeController) Mine(c *gin.Context) {
	parts, err := ch.Challenges.ParticipationsOf(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"participations": parts})
}

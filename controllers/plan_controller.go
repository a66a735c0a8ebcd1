package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	Plans *services.PlanService
}

func NewPlanController(plans *services.PlanService) *PlanController {
	return &PlanController{Plans: plans}
}

func paramDay(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Día inválido"})
		return 0, false
	}
	return day, true
}

// GET /plan — full 22-day plan
func (p *PlanController) List(c *gin.Context) {
	days, err := p.Plans.ListDays(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GET /plan/:day
func (p *PlanController) GetDay(c *gin.Context) {
	day, ok := paramDay(c)
	if !ok {
		return
	}

	plan, err := p.Plans.GetDay(c.GetUint("userID"), day)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

// PUT /plan/:day — section contents
func (p *PlanController) UpsertContent(c *gin.Context) {
	day, ok := paramDay(c)
	if !ok {
		return
	}

	var input services.PlanContentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := p.Plans.UpsertContent(c.GetUint("userID"), day, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

type sectionReq struct {
	Section string `json:"section" binding:"required"`
	Done    *bool  `json:"done" binding:"required"`
}

// POST /plan/:day/section
func (p *PlanController) CompleteSection(c *gin.Context) {
	day, ok := paramDay(c)
	if !ok {
		return
	}

	var req sectionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := p.Plans.CompleteSection(c.GetUint("userID"), day, req.Section, *req.Done)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

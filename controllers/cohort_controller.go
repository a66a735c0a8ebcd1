package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type CohortController struct {
	Cohort *services.CohortService
}

func NewCohortController(cohort *services.CohortService) *CohortController {
	return &CohortController{Cohort: cohort}
}

// GET /coach/cohort/summary
func (co *CohortController) Summary(c *gin.Context) {
	summary, err := co.Cohort.Summary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GET /coach/cohort/members
func (co *CohortController) Members(c *gin.Context) {
	members, err := co.Cohort.Members()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

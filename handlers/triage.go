package handlers

import (
	"net/http"
	"time"

	"vitalguard/models"
	"vitalguard/services/triage"

	"github.com/gin-gonic/gin"
)

// TriageHandler handles POST /api/assistant/triage.
func (h *HandlerBundle) TriageHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.TriageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}
	if req.Symptoms == "" && req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symptoms or query is required"})
		return
	}

	entitled := h.BillingService.IsEntitled(userID, time.Now())
	result, err := h.TriageService.Evaluate(c.Request.Context(), userID, req, entitled)
	if err != nil {
		switch err {
		case triage.ErrUnentitled:
			c.JSON(http.StatusForbidden, gin.H{
				"error":   err.Error(),
				"upgrade": "/api/billing/checkout",
			})
		case triage.ErrProfileRequired:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListPlansHandler handles GET /api/plans.
func (h *HandlerBundle) ListPlansHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	plans, err := h.PlanRepo.GetByUserID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list plans, please try again"})
		return
	}
	c.JSON(http.StatusOK, plans)
}

package handlers

import (
	"net/http"

	"vitalguard/services/medication"

	"github.com/gin-gonic/gin"
)

// CreateMedicationHandler handles POST /api/medications.
func (h *HandlerBundle) CreateMedicationHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input medication.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	med, err := h.MedicationService.Create(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, med)
}

// ListMedicationsHandler handles GET /api/medications.
func (h *HandlerBundle) ListMedicationsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	meds, err := h.MedicationService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meds)
}

// UpdateMedicationHandler handles PUT /api/medications/:id.
func (h *HandlerBundle) UpdateMedicationHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input medication.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	med, err := h.MedicationService.Update(c.Param("id"), userID, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, med)
}

// DeleteMedicationHandler handles DELETE /api/medications/:id.
func (h *HandlerBundle) DeleteMedicationHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.MedicationService.Delete(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medication deleted"})
}

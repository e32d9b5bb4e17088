package handlers

import (
	"net/http"
	"time"

	"vitalguard/services/careteam"

	"github.com/gin-gonic/gin"
)

// AddCareTeamMemberHandler handles POST /api/care-team.
func (h *HandlerBundle) AddCareTeamMemberHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input careteam.AddMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	member, err := h.CareTeamService.AddMember(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, member)
}

// ListCareTeamHandler handles GET /api/care-team.
func (h *HandlerBundle) ListCareTeamHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	members, err := h.CareTeamService.ListMembers(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

// ListPatientsHandler handles GET /api/care-team/patients: the patients who
// have added the caller as a caregiver.
func (h *HandlerBundle) ListPatientsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	members, err := h.CareTeamService.ListPatients(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, members)
}

// ViewPatientHandler handles GET /api/care-team/patients/:patientId. It
// serves a patient's data bundle to caregivers the patient has added.
func (h *HandlerBundle) ViewPatientHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	patientID := c.Param("patientId")
	if !h.CareTeamService.CanView(userID, patientID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not on this patient's care team"})
		return
	}

	bundle, err := h.ProfileService.Export(patientID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bundle)
}

// RemoveCareTeamMemberHandler handles DELETE /api/care-team/:id.
func (h *HandlerBundle) RemoveCareTeamMemberHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.CareTeamService.RemoveMember(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}

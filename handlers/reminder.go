package handlers

import (
	"net/http"

	"vitalguard/services/reminder"

	"github.com/gin-gonic/gin"
)

// CreateReminderHandler handles POST /api/reminders.
func (h *HandlerBundle) CreateReminderHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var input reminder.CreateReminderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload"})
		return
	}

	rem, err := h.ReminderService.Create(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, rem)
}

// ListRemindersHandler handles GET /api/reminders.
func (h *HandlerBundle) ListRemindersHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	reminders, err := h.ReminderService.List(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reminders)
}

// DeleteReminderHandler handles DELETE /api/reminders/:id.
func (h *HandlerBundle) DeleteReminderHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.ReminderService.Delete(c.Param("id"), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
}

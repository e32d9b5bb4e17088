package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ExportDataHandler handles GET /api/export: the full JSON dump of the
// authenticated user's stored data.
func (h *HandlerBundle) ExportDataHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	bundle, err := h.ProfileService.Export(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="vitalguard-export.json"`)
	c.IndentedJSON(http.StatusOK, bundle)
}

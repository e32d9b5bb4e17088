package handlers

import (
	"net/http"

	planRepoPkg "vitalguard/database/repository/plan"
	userRepoPkg "vitalguard/database/repository/user"
	"vitalguard/services/billing"
	"vitalguard/services/careteam"
	"vitalguard/services/medication"
	"vitalguard/services/profile"
	"vitalguard/services/reminder"
	"vitalguard/services/triage"
	"vitalguard/services/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers and the services behind them.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository
	PlanRepo planRepoPkg.PlanRepository

	UserService       user.UserService
	ProfileService    profile.ProfileService
	ReminderService   reminder.ReminderService
	MedicationService medication.MedicationService
	CareTeamService   careteam.CareTeamService
	TriageService     triage.TriageService
	BillingService    billing.BillingService
}

// currentUserID returns the authenticated user's ID set by the auth
// middleware. The second return is false when the request is unauthenticated,
// in which case a response has already been written.
func currentUserID(c *gin.Context) (string, bool) {
	val, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return "", false
	}
	return id, true
}

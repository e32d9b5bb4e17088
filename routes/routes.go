package routes

import (
	"net/http"
	"time"

	"vitalguard/handlers"
	"vitalguard/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration/login endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
	}
}

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetMeHandler)
		api.PUT("/me", hb.UpdatePasswordHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
	}
}

// RegisterProfileRoutes registers health profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.GetProfileHandler)
		api.PUT("", hb.UpdateProfileHandler)
	}
}

// RegisterReminderRoutes registers reminder scheduling endpoints.
func RegisterReminderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reminders")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListRemindersHandler)
		api.POST("", hb.CreateReminderHandler)
		api.DELETE("/:id", hb.DeleteReminderHandler)
	}
}

// RegisterMedicationRoutes registers medication tracking endpoints.
func RegisterMedicationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/medications")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListMedicationsHandler)
		api.POST("", hb.CreateMedicationHandler)
		api.PUT("/:id", hb.UpdateMedicationHandler)
		api.DELETE("/:id", hb.DeleteMedicationHandler)
	}
}

// RegisterCareTeamRoutes registers care-team sharing endpoints.
func RegisterCareTeamRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/care-team")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListCareTeamHandler)
		api.POST("", hb.AddCareTeamMemberHandler)
		api.GET("/patients", hb.ListPatientsHandler)
		api.GET("/patients/:patientId", hb.ViewPatientHandler)
		api.DELETE("/:id", hb.RemoveCareTeamMemberHandler)
	}
}

// RegisterAssistantRoutes registers triage assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/assistant/triage", hb.TriageHandler)
		api.GET("/plans", hb.ListPlansHandler)
		api.GET("/export", hb.ExportDataHandler)
	}
}

// RegisterBillingRoutes registers billing endpoints. The Stripe webhook is
// deliberately outside the auth middleware; the event signature is the
// authentication.
func RegisterBillingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/billing")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/checkout", hb.CreateCheckoutSessionHandler)
		api.GET("/subscription", hb.GetSubscriptionHandler)
	}

	r.POST("/stripe/webhook", hb.StripeWebhookHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Vital Guard"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterReminderRoutes(r, hb)
	RegisterMedicationRoutes(r, hb)
	RegisterCareTeamRoutes(r, hb)
	RegisterAssistantRoutes(r, hb)
	RegisterBillingRoutes(r, hb)
	RegisterHealthRoute(r)
}

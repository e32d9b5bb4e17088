package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vitalguard/config"
	"vitalguard/cron"
	"vitalguard/database"
	careTeamRepoPkg "vitalguard/database/repository/careteam"
	medicationRepoPkg "vitalguard/database/repository/medication"
	planRepoPkg "vitalguard/database/repository/plan"
	profileRepoPkg "vitalguard/database/repository/profile"
	reminderRepoPkg "vitalguard/database/repository/reminder"
	subscriptionRepoPkg "vitalguard/database/repository/subscription"
	userRepoPkg "vitalguard/database/repository/user"
	"vitalguard/handlers"
	"vitalguard/middleware"
	"vitalguard/routes"
	"vitalguard/services/billing"
	"vitalguard/services/careteam"
	"vitalguard/services/medication"
	"vitalguard/services/notification"
	"vitalguard/services/profile"
	"vitalguard/services/reminder"
	"vitalguard/services/triage"
	"vitalguard/services/user"
	"vitalguard/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	reminderRepo := reminderRepoPkg.NewMongoReminderRepo()
	medicationRepo := medicationRepoPkg.NewMongoMedicationRepo()
	planRepo := planRepoPkg.NewMongoPlanRepo()
	subscriptionRepo := subscriptionRepoPkg.NewMongoSubscriptionRepo()
	careTeamRepo := careTeamRepoPkg.NewMongoCareTeamRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:             userRepo,
		ProfileRepo:      profileRepo,
		SubscriptionRepo: subscriptionRepo,
	}

	billingService := billing.NewDefaultBillingService(subscriptionRepo, userRepo)

	profileService := &profile.DefaultProfileService{
		Repo:           profileRepo,
		UserRepo:       userRepo,
		ReminderRepo:   reminderRepo,
		MedicationRepo: medicationRepo,
		PlanRepo:       planRepo,
		Billing:        billingService,
	}

	reminderService := &reminder.DefaultReminderService{
		Repo:        reminderRepo,
		ProfileRepo: profileRepo,
	}

	medicationService := &medication.DefaultMedicationService{
		Repo: medicationRepo,
	}

	careTeamService := &careteam.DefaultCareTeamService{
		Repo:     careTeamRepo,
		UserRepo: userRepo,
	}

	triageService := &triage.DefaultTriageService{
		ProfileRepo: profileRepo,
		PlanRepo:    planRepo,
		Classifier:  triage.NewExternalClassifier(config.AppConfig),
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,
		PlanRepo: planRepo,

		UserService:       userService,
		ProfileService:    profileService,
		ReminderService:   reminderService,
		MedicationService: medicationService,
		CareTeamService:   careTeamService,
		TriageService:     triageService,
		BillingService:    billingService,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the reminder dispatch loop.
	dispatcher := &reminder.Dispatcher{
		Repo:        reminderRepo,
		UserRepo:    userRepo,
		ProfileRepo: profileRepo,
		Notifier:    notification.NewDefaultNotificationService(),
		Clock:       reminder.SystemClock{},
	}
	dispatchLoop := cron.StartDispatchLoop(dispatcher)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	dispatchLoop.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

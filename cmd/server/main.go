package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"community-backend/internal/auth"
	"community-backend/internal/cache"
	"community-backend/internal/config"
	"community-backend/internal/database"
	"community-backend/internal/db"
	"community-backend/internal/email"
	"community-backend/internal/handlers"
	"community-backend/internal/health"
	h "community-backend/internal/http"
	"community-backend/internal/middleware"
	"community-backend/internal/monitoring"
	"community-backend/internal/repositories"
	"community-backend/internal/services"
	"community-backend/internal/sms"
	"community-backend/internal/ws"
	"community-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	migrate := flag.Bool("migrate", true, "Run database migrations on startup")
	flag.Parse()

	// The kulam copy rules are static; refuse to start on a bad rule set
	if err := services.ValidateKulamRules(); err != nil {
		log.Fatalf("Invalid kulam propagation rules: %v", err)
	}

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	if *migrate {
		migrator := database.NewMigrator(pool, migrations.FS)
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatalf("Migrations failed: %v", err)
		}
	}

	redisCache := cache.New(cfg)
	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	revokedTokenRepo := repositories.NewRevokedTokenRepository(pool)
	loginLogRepo := repositories.NewLoginLogRepository(pool)
	adminActionLogRepo := repositories.NewAdminActionLogRepository(pool)
	invitationRepo := repositories.NewInvitationRepository(pool)
	profileRepo := repositories.NewProfileRepository(pool)
	childRepo := repositories.NewChildRepository(pool)
	helpPostRepo := repositories.NewHelpPostRepository(pool)
	referenceRepo := repositories.NewReferenceRepository(pool)
	locationRepo := repositories.NewLocationRepository(pool)
	featureSwitchRepo := repositories.NewFeatureSwitchRepository(pool)

	// Delivery providers
	emailService, err := email.NewEmailService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize email service: %v", err)
	}

	var smsProvider sms.SMSProvider
	if cfg.SMS.Provider == "fast2sms" {
		smsProvider = sms.NewFast2SMSService(cfg.SMS.APIKey)
	} else {
		smsProvider = sms.NewMockSMSService()
	}

	// Expired blacklist rows are useless once the token itself is dead
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := revokedTokenRepo.CleanupExpired(context.Background()); err != nil {
				log.Printf("Revoked token cleanup failed: %v", err)
			}
		}
	}()

	// Websocket hub for help-post events
	hub := ws.NewHub()
	go hub.Run()

	// Services
	userService := services.NewUserService(userRepo, invitationRepo, loginLogRepo, revokedTokenRepo, jwtManager)
	introService := services.NewIntroService(userRepo)
	kulamService := services.NewKulamService(profileRepo, childRepo)
	profileService := services.NewProfileService(userRepo, profileRepo, childRepo, kulamService)
	invitationService := services.NewInvitationService(invitationRepo, emailService, smsProvider)
	helpPostService := services.NewHelpPostService(helpPostRepo, hub)
	referenceService := services.NewReferenceService(referenceRepo, redisCache)
	locationService := services.NewLocationService(locationRepo, redisCache)
	featureSwitchService := services.NewFeatureSwitchService(featureSwitchRepo, redisCache)

	// Monitoring
	monitoringService := monitoring.NewMonitoringService()
	healthChecker := health.NewHealthChecker(pool, redisCache)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo, revokedTokenRepo)
	maintenanceMiddleware := middleware.NewMaintenanceMiddleware(featureSwitchService)
	corsMiddleware := middleware.NewCORS(cfg)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, authMiddleware)
	accountHandler := handlers.NewAccountHandler()
	introHandler := handlers.NewIntroHandler(introService)
	profileHandler := handlers.NewProfileCompletionHandler(profileService, profileRepo, childRepo, userRepo)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	helpPostHandler := handlers.NewHelpPostHandler(helpPostService, helpPostRepo, adminActionLogRepo)
	referenceHandler := handlers.NewReferenceHandler(referenceService)
	locationHandler := handlers.NewLocationHandler(locationService)
	featureSwitchHandler := handlers.NewFeatureSwitchHandler(featureSwitchService, adminActionLogRepo)
	adminHandler := handlers.NewAdminHandler(userRepo, loginLogRepo, adminActionLogRepo)
	monitoringHandler := handlers.NewMonitoringHandler(healthChecker, monitoringService)
	wsHandler := handlers.NewWSHandler(hub)

	router := h.NewRouter(
		authHandler, accountHandler, introHandler, profileHandler, invitationHandler,
		helpPostHandler, referenceHandler, locationHandler, featureSwitchHandler,
		adminHandler, monitoringHandler, wsHandler,
		authMiddleware, maintenanceMiddleware,
	)

	handler := corsMiddleware(
		middleware.SecurityHeaders(
			middleware.GzipCompression(
				monitoringService.Middleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

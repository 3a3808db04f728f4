package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	gorillahandlers "github.com/gorilla/handlers"
	_ "github.com/lib/pq"

	httpapi "fatherhood-backend/internal/api/http"
	"fatherhood-backend/internal/config"
	"fatherhood-backend/internal/jobs"
	"fatherhood-backend/internal/logger"
	"fatherhood-backend/internal/repository"
	"fatherhood-backend/internal/repository/postgres"
	"fatherhood-backend/internal/scheduler"
	"fatherhood-backend/internal/security"
	"fatherhood-backend/internal/service"
)

const version = "1.0.0"

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Fatherhood Initiative Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Restricted connection, used by the public signup endpoint. Created once
	// at startup and injected; never re-created per request.
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Privileged connection, used by the admin endpoints. Optional: without
	// it the admin surface responds 503.
	var adminRepo repository.SignupRepository
	if cfg.HasAdminCredentials() {
		adminDB, err := sql.Open("postgres", cfg.GetAdminDatabaseConnectionString())
		if err != nil {
			log.Fatalf("Failed to connect to database as admin: %v", err)
		}
		defer adminDB.Close()

		if err := adminDB.Ping(); err != nil {
			log.Fatalf("Failed to ping database as admin: %v", err)
		}
		logger.Info("Admin database connection established", "user", cfg.Database.AdminUser)

		if cfg.Database.MigrationsDir != "" {
			if err := postgres.Migrate(adminDB, cfg.Database.MigrationsDir); err != nil {
				log.Fatalf("Failed to run migrations: %v", err)
			}
		}

		adminRepo = postgres.NewStore(adminDB).SignupRepository
	} else {
		logger.Warn("Admin database credentials not set - admin endpoints will respond 503")
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailSvc = service.NewSendGridEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		logger.Warn("SendGrid API key not set - confirmation emails disabled")
	}

	// Initialize Services
	signupSvc := service.NewSignupService(store.SignupRepository, emailSvc)
	adminSvc := service.NewAdminService(adminRepo)

	// Initialize admin token auth (optional)
	var tokens security.TokenManager
	if cfg.Admin.JWTSecret != "" {
		tokens = security.NewTokenManager(cfg.Admin.JWTSecret)
	} else {
		logger.Warn("Admin JWT secret not set - admin endpoints have no request auth")
	}

	// Initialize HTTP handlers and router
	signupHandler := httpapi.NewSignupHandler(signupSvc)
	adminHandler := httpapi.NewAdminHandler(adminSvc)
	healthHandler := httpapi.NewHealthHandler(version)

	limitSignups := httpapi.SignupRateLimit(
		cfg.RateLimit.SignupRequests,
		time.Duration(cfg.RateLimit.SignupWindowMinutes)*time.Minute,
	)
	router := httpapi.NewRouter(signupHandler, adminHandler, healthHandler, tokens, limitSignups)

	// Cross-cutting policies: CORS and panic recovery
	corsHandler := gorillahandlers.CORS(
		gorillahandlers.AllowedOrigins(cfg.Server.AllowedOrigins),
		gorillahandlers.AllowedMethods([]string{"GET", "POST", "PATCH", "OPTIONS"}),
		gorillahandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
		gorillahandlers.AllowCredentials(),
	)
	handler := gorillahandlers.RecoveryHandler()(corsHandler(router))

	// Start the weekly digest scheduler alongside the server
	jobRunner := jobs.NewJobRunner(adminSvc, emailSvc, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), handler); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}

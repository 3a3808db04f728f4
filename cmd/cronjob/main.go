package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"fatherhood-backend/internal/config"
	"fatherhood-backend/internal/jobs"
	"fatherhood-backend/internal/logger"
	"fatherhood-backend/internal/repository"
	"fatherhood-backend/internal/repository/postgres"
	"fatherhood-backend/internal/scheduler"
	"fatherhood-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'weekly-digest')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Fatherhood Cronjob Runner...", "log_level", cfg.Log.Level)

	// The digest reads stats through the admin service, which needs the
	// privileged connection.
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
		logger.Info("Admin database connection established")

		adminRepo = postgres.NewStore(adminDB).SignupRepository
	} else {
		logger.Warn("Admin database credentials not set - digest jobs will be skipped")
	}

	// Initialize Services
	var emailSvc service.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailSvc = service.NewSendGridEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	}
	adminSvc := service.NewAdminService(adminRepo)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(adminSvc, emailSvc, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "weekly-digest":
		jobRunner.WeeklyDigest()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - weekly-digest\n")
		os.Exit(1)
	}
}

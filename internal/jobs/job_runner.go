package jobs

import (
	"fatherhood-backend/internal/config"
	"fatherhood-backend/internal/logger"
	"fatherhood-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	adminSvc service.AdminService
	emailSvc service.EmailService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies. emailSvc may
// be nil when sending is not configured; jobs that need it log and skip.
func NewJobRunner(adminSvc service.AdminService, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		adminSvc: adminSvc,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

// Config returns the loaded application configuration.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

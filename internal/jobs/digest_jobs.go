package jobs

import (
	"context"
	"errors"

	"fatherhood-backend/internal/domain"
	"fatherhood-backend/internal/logger"
)

// WeeklyDigest emails the program coordinator the current signup statistics.
func (jr *JobRunner) WeeklyDigest() {
	jr.runWithRecovery("WeeklyDigest", func() {
		ctx := context.Background()

		coordinator := jr.config.SendGrid.CoordinatorEmail
		if jr.emailSvc == nil || coordinator == "" {
			logger.Warn("Weekly digest skipped: email sending not configured")
			return
		}

		stats, err := jr.adminSvc.GetStats(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrAdminUnavailable) {
				logger.Warn("Weekly digest skipped: privileged database credentials not configured")
				return
			}
			logger.Error("Failed to compute signup stats for digest", "error", err)
			return
		}

		if err := jr.emailSvc.SendWeeklyDigest(ctx, coordinator, stats); err != nil {
			logger.Error("Failed to send weekly digest", "to", coordinator, "error", err)
			return
		}

		logger.Info("Weekly digest sent", "to", coordinator, "total", stats.Total, "this_week", stats.ThisWeek)
	})
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AttemptCleanupJob periodically deletes delivery code attempt counters
// whose last attempt is older than the configured retention window.
type AttemptCleanupJob struct {
	handler   commands.CleanupAttemptsCommandHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewAttemptCleanupJob creates a cleanup job with the given retention
// window.
func NewAttemptCleanupJob(
	handler commands.CleanupAttemptsCommandHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *AttemptCleanupJob {
	return &AttemptCleanupJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "attempt_cleanup_job"),
	}
}

// Start schedules the cleanup to run at the top of every hour.
func (j *AttemptCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCleanupAttemptsCommand(j.olderThan)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Attempt cleanup job misconfigured", "error", cmdErr)
			return
		}

		deleted, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Attempt cleanup job failed", "error", handleErr)
			return
		}

		if deleted > 0 {
			j.logger.InfoContext(ctx, "Purged stale attempt counters", "deleted", deleted)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Attempt cleanup job started (running hourly)")
	return nil
}

// Stop stops the cleanup job.
func (j *AttemptCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Attempt cleanup job stopped")
}

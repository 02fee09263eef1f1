package commands

import (
	"context"
	"time"
)

// CleanupAttemptsCommandHandler purges stale verification attempt
// records. Attempt records are advisory once their task closed; the
// retention window only needs to outlive any in-flight verification.
type CleanupAttemptsCommandHandler struct {
	uowFactory AttemptUoWFactory
}

// NewCleanupAttemptsCommandHandler creates a handler for attempt cleanup.
func NewCleanupAttemptsCommandHandler(uowFactory AttemptUoWFactory) CleanupAttemptsCommandHandler {
	return CleanupAttemptsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes attempt records older than the retention window and
// returns how many were removed.
func (h CleanupAttemptsCommandHandler) Handle(ctx context.Context, cmd CleanupAttemptsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())
	deleted, err := uow.AttemptRepository().DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}

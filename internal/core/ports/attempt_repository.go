package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/attempt"
	"fulfillment/internal/core/domain/model/kernel"
)

// AttemptRepository defines the persistence contract for code
// verification attempt records.
type AttemptRepository interface {
	// GetByTaskAndCourier returns the attempt record for the pair, or
	// errs.ObjectNotFoundError when no verification has been tried yet.
	GetByTaskAndCourier(ctx context.Context, taskID kernel.UUID, courierID kernel.UUID) (*attempt.Attempt, error)

	// Upsert inserts the record or replaces the existing one for the
	// same (task, courier) pair.
	Upsert(ctx context.Context, a *attempt.Attempt) error

	// DeleteByTask removes all attempt records referencing the task.
	DeleteByTask(ctx context.Context, taskID kernel.UUID) error

	// DeleteOlderThan removes records whose last attempt happened before
	// the cutoff and returns how many were deleted.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

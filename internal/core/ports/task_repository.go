// Package ports defines the contracts between the fulfillment core and its
// adapters: repositories, the unit of work, and the best-effort audit and
// notification sinks.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
)

// TaskRepository defines the persistence contract for delivery tasks.
// The underlying order record may also be read and written by order
// management outside this core; implementations only touch the
// delivery-related fields.
type TaskRepository interface {
	// Add persists a new task aggregate.
	Add(ctx context.Context, aggregate *task.Task) error

	// Update persists changes to an existing task.
	Update(ctx context.Context, aggregate *task.Task) error

	// UpdateClaiming persists a freshly claimed task with a conditional
	// update keyed on "assigned courier is null or equals the claimant".
	// Concurrent claims serialize here: exactly one caller succeeds, the
	// others get a ConflictError.
	UpdateClaiming(ctx context.Context, aggregate *task.Task) error

	// Get retrieves a task by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*task.Task, error)

	// GetForUpdate retrieves a task with a row lock, serializing
	// concurrent delivery confirmations. Only meaningful inside a
	// unit-of-work transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*task.Task, error)
}

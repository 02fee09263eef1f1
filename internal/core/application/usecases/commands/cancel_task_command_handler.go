package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
)

// CancelTaskCommandHandler handles the business logic for releasing a
// claimed task. Cancellation returns the task to the available pool,
// discards any outstanding delivery code, and purges verification attempt
// records so a future claimant starts with a clean budget.
type CancelTaskCommandHandler struct {
	uowFactory TaskAttemptUoWFactory
	observer   ports.Observer
}

// NewCancelTaskCommandHandler creates a handler for cancel operations.
func NewCancelTaskCommandHandler(uowFactory TaskAttemptUoWFactory, observer ports.Observer) CancelTaskCommandHandler {
	return CancelTaskCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

// Handle processes the cancel command.
// Fails with Forbidden when the caller is not the assigned courier and
// with InvalidState while the task is part of an active route.
func (h CancelTaskCommandHandler) Handle(ctx context.Context, cmd CancelTaskCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	// The row lock serializes cancellation against a concurrent deliver:
	// once a delivery commits, this read observes the terminal state and
	// Cancel rejects it instead of overwriting a paid task.
	taskRepo := uow.TaskRepository()
	aggregate, err := taskRepo.GetForUpdate(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(cmd.CourierID()); err != nil {
		return err
	}

	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.AttemptRepository().DeleteByTask(ctx, cmd.TaskID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	taskID := cmd.TaskID()
	courierID := cmd.CourierID()
	if h.observer != nil {
		h.observer.Publish(ports.AuditEvent{
			Name:       "task.canceled",
			TaskID:     &taskID,
			CourierID:  &courierID,
			Detail:     cmd.Reason(),
			OccurredAt: time.Now().UTC(),
		})
	}

	return nil
}

package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"
)

// ClaimTaskCommandHandler handles the business logic for claiming a task.
// Loads the task, applies the claim, and persists it with a conditional
// update so concurrent claims for the same task serialize in storage:
// exactly one caller succeeds, the rest receive a ConflictError.
//
// Example:
//
//	handler := NewClaimTaskCommandHandler(uowFactory, observer)
//	cmd, _ := NewClaimTaskCommand(taskID, courierID)
//	err := handler.Handle(ctx, cmd)
//	var conflict *errs.ConflictError
//	if errors.As(err, &conflict) {
//	    log.Println("task already taken")
//	}
type ClaimTaskCommandHandler struct {
	uowFactory TaskCourierUoWFactory
	observer   ports.Observer
}

// NewClaimTaskCommandHandler creates a handler for task claim operations.
// Requires a TaskCourierUoWFactory for transactional persistence and an
// observer for audit events.
func NewClaimTaskCommandHandler(uowFactory TaskCourierUoWFactory, observer ports.Observer) ClaimTaskCommandHandler {
	return ClaimTaskCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

// Handle processes the claim command.
// Verifies the courier exists, applies the claim to the task, and persists
// it with the first-claim-wins conditional update. Publishes a
// "task.claimed" audit event after commit.
func (h ClaimTaskCommandHandler) Handle(ctx context.Context, cmd ClaimTaskCommand) error {
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

	if _, err := uow.CourierRepository().Get(ctx, cmd.CourierID()); err != nil {
		return err
	}

	taskRepo := uow.TaskRepository()
	aggregate, err := taskRepo.Get(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if err = aggregate.Accept(cmd.CourierID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = taskRepo.UpdateClaiming(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	taskID := cmd.TaskID()
	courierID := cmd.CourierID()
	if h.observer != nil {
		h.observer.Publish(ports.AuditEvent{
			Name:       "task.claimed",
			TaskID:     &taskID,
			CourierID:  &courierID,
			OccurredAt: time.Now().UTC(),
		})
	}

	return nil
}

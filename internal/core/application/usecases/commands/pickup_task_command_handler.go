package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/ports"
)

// PickupTaskCommandHandler handles the business logic for order pickup.
// Generates the four digit delivery code on first pickup and keeps the
// existing one on retries, so the code already sent to the customer stays
// valid.
type PickupTaskCommandHandler struct {
	uowFactory TaskUoWFactory
	observer   ports.Observer
}

// NewPickupTaskCommandHandler creates a handler for pickup operations.
func NewPickupTaskCommandHandler(uowFactory TaskUoWFactory, observer ports.Observer) PickupTaskCommandHandler {
	return PickupTaskCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

// Handle processes the pickup command.
// Marks the task picked up by its assigned courier, attaching a freshly
// generated delivery code when none is outstanding. The code is delivered
// to the customer through the notification sink after commit.
func (h PickupTaskCommandHandler) Handle(ctx context.Context, cmd PickupTaskCommand) error {
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

	// The row lock serializes pickup against a concurrent deliver or
	// cancel on the same task, so the full-row update cannot clobber a
	// transition committed in between.
	taskRepo := uow.TaskRepository()
	aggregate, err := taskRepo.GetForUpdate(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if err = aggregate.Pickup(cmd.CourierID(), task.GenerateDeliveryCode(), time.Now().UTC()); err != nil {
		return err
	}

	code := aggregate.Code()

	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	taskID := cmd.TaskID()
	courierID := cmd.CourierID()
	if h.observer != nil {
		event := ports.AuditEvent{
			Name:       "task.picked_up",
			TaskID:     &taskID,
			CourierID:  &courierID,
			OccurredAt: time.Now().UTC(),
		}
		if code != nil {
			event.Detail = "Your delivery code is " + code.Value()
			event.Phone = aggregate.CustomerPhone()
		}
		h.observer.Publish(event)
	}

	return nil
}

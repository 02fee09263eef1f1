package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreditDeliveryCommandHandler handles standalone payout credits for
// delivered tasks, e.g. retries after a payout failed out-of-band. The
// delivery confirmation flow applies the same credit through its own
// transaction, so replaying this command is always safe.
type CreditDeliveryCommandHandler struct {
	uowFactory LedgerUoWFactory
	observer   ports.Observer
}

// NewCreditDeliveryCommandHandler creates a handler for payout credits.
func NewCreditDeliveryCommandHandler(uowFactory LedgerUoWFactory, observer ports.Observer) CreditDeliveryCommandHandler {
	return CreditDeliveryCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

// Handle processes the payout credit.
// The task must be delivered by the courier being credited. A task that
// already has a payout entry fails with AlreadyProcessed and leaves the
// balance untouched.
func (h CreditDeliveryCommandHandler) Handle(ctx context.Context, cmd CreditDeliveryCommand) error {
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

	aggregate, err := uow.TaskRepository().GetForUpdate(ctx, cmd.TaskID())
	if err != nil {
		return err
	}

	if aggregate.Status() != task.Delivered {
		return errs.NewInvalidStateError("task", aggregate.Status().String(), "credit delivery")
	}
	if aggregate.Courier() == nil || !aggregate.Courier().IsEqual(cmd.CourierID()) {
		return errs.NewForbiddenError(cmd.CourierID().String(), "credit task "+cmd.TaskID().String())
	}

	courierRepo := uow.CourierRepository()
	courierAggregate, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = applyTaskCredit(
		ctx, uow.LedgerRepository(), courierAggregate,
		cmd.TaskID(), ledger.DeliveryPayout, cmd.Amount(), "delivery payout", now,
	); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	taskID := cmd.TaskID()
	courierID := cmd.CourierID()
	if h.observer != nil {
		h.observer.Publish(ports.AuditEvent{
			Name:       "ledger.delivery_credited",
			TaskID:     &taskID,
			CourierID:  &courierID,
			Amount:     cmd.Amount().Amount(),
			OccurredAt: now,
		})
	}

	return nil
}

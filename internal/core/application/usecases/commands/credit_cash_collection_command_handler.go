package commands

import (
	"context"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreditCashCollectionCommandHandler handles cash collection credits:
// reimbursing a courier the cash they took on a cash-on-delivery task and
// later handed over. At most one collection entry exists per task.
type CreditCashCollectionCommandHandler struct {
	uowFactory LedgerUoWFactory
	observer   ports.Observer
}

// NewCreditCashCollectionCommandHandler creates a handler for cash
// collection credits.
func NewCreditCashCollectionCommandHandler(
	uowFactory LedgerUoWFactory,
	observer ports.Observer,
) CreditCashCollectionCommandHandler {
	return CreditCashCollectionCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

// Handle processes the cash collection credit.
// Same preconditions and idempotency as the delivery payout, under the
// cash_collection kind. The entry reference records the handover
// destination and time.
func (h CreditCashCollectionCommandHandler) Handle(ctx context.Context, cmd CreditCashCollectionCommand) error {
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
		return errs.NewInvalidStateError("task", aggregate.Status().String(), "credit cash collection")
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
	reference := fmt.Sprintf("cash handed over to %s at %s", cmd.DestinationLabel(), now.Format(time.RFC3339))
	if err = applyTaskCredit(
		ctx, uow.LedgerRepository(), courierAggregate,
		cmd.TaskID(), ledger.CashCollection, cmd.Amount(), reference, now,
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
			Name:       "ledger.cash_collection_credited",
			TaskID:     &taskID,
			CourierID:  &courierID,
			Amount:     cmd.Amount().Amount(),
			Detail:     cmd.DestinationLabel(),
			OccurredAt: now,
		})
	}

	return nil
}

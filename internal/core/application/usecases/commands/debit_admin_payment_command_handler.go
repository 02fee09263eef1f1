package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// DebitAdminPaymentCommandHandler handles staff payouts of earned courier
// balance. The debit and the negative ledger entry commit together, and
// the balance can never go below zero: an oversized payment fails with
// InsufficientBalance and changes nothing.
type DebitAdminPaymentCommandHandler struct {
	uowFactory LedgerUoWFactory
	observer   ports.Observer
}

// NewDebitAdminPaymentCommandHandler creates a handler for admin payments.
func NewDebitAdminPaymentCommandHandler(
	uowFactory LedgerUoWFactory,
	observer ports.Observer,
) DebitAdminPaymentCommandHandler {
	return DebitAdminPaymentCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

// Handle processes the payment.
// Fails with Forbidden unless the actor holds a staff role. The courier
// row is locked so concurrent payments serialize against the balance.
func (h DebitAdminPaymentCommandHandler) Handle(ctx context.Context, cmd DebitAdminPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.ActorRole().IsStaff() {
		return errs.NewForbiddenError(string(cmd.ActorRole()), "debit courier "+cmd.CourierID().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	courierAggregate, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = courierAggregate.Debit(cmd.Amount()); err != nil {
		return err
	}

	now := time.Now().UTC()
	entry, err := ledger.NewEntry(
		kernel.NewUUID(), cmd.CourierID(), nil,
		ledger.AdminPayment, cmd.Amount().Negate(), cmd.Reference(), now,
	)
	if err != nil {
		return err
	}

	if err = uow.LedgerRepository().Add(ctx, entry); err != nil {
		return err
	}

	if err = courierRepo.Update(ctx, courierAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	courierID := cmd.CourierID()
	if h.observer != nil {
		h.observer.Publish(ports.AuditEvent{
			Name:       "ledger.admin_payment",
			CourierID:  &courierID,
			Amount:     cmd.Amount().Negate().Amount(),
			Detail:     cmd.Reference(),
			OccurredAt: now,
		})
	}

	return nil
}

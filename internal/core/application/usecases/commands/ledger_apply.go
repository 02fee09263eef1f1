package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// applyTaskCredit appends a credit entry for a task and raises the courier
// balance in memory. It is the single code path behind the at-most-one
// credit per (task, kind) guarantee, shared by the standalone credit
// handlers and the delivery confirmation flow, which call it with their
// own unit of work's repositories.
//
// The caller owns the transaction and the courier Update: the existence
// check, the insert, and the balance change must commit together, and the
// task row must already be locked FOR UPDATE so concurrent confirmations
// serialize before the check.
func applyTaskCredit(
	ctx context.Context,
	ledgerRepo ports.LedgerRepository,
	aggregate *courier.Courier,
	taskID kernel.UUID,
	kind ledger.Kind,
	amount kernel.Money,
	reference string,
	at time.Time,
) error {
	exists, err := ledgerRepo.ExistsByTaskAndKind(ctx, taskID, kind)
	if err != nil {
		return err
	}
	if exists {
		return errs.NewAlreadyProcessedError(taskID.String(), kind.String())
	}

	entry, err := ledger.NewEntry(kernel.NewUUID(), aggregate.ID(), &taskID, kind, amount, reference, at)
	if err != nil {
		return err
	}

	if err = aggregate.Credit(amount); err != nil {
		return err
	}

	return ledgerRepo.Add(ctx, entry)
}

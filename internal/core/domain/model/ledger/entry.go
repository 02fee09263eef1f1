package ledger

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrEntryIsNotConstructed is returned when an Entry instance was not
// created through NewEntry or RestoreEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

// Kind classifies a ledger entry. For a given task, at most one
// DeliveryPayout and at most one CashCollection entry may ever exist; that
// uniqueness is the idempotency guarantee preventing double payouts.
type Kind string

const (
	// DeliveryPayout credits the delivery fee after a confirmed handoff.
	DeliveryPayout Kind = "delivery_payout"
	// CashCollection credits cash the courier collected and handed over.
	CashCollection Kind = "cash_collection"
	// AdminPayment debits a payout registered by an administrator.
	AdminPayment Kind = "admin_payment"
)

// Validate checks that the Kind holds one of the defined values.
func (k Kind) Validate() error {
	switch k {
	case DeliveryPayout, CashCollection, AdminPayment:
		return nil
	default:
		return errs.NewValueIsInvalidError("ledger kind")
	}
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	return string(k)
}

// Entry is an immutable record of a single balance-affecting event. An
// entry is written in the same transaction as the balance mutation it
// describes and is never updated or deleted afterwards.
//
// Amounts are signed: credits are positive, the admin debit is negative.
type Entry struct {
	id        kernel.UUID
	courierID kernel.UUID
	taskID    *kernel.UUID
	kind      Kind
	amount    kernel.Money
	reference string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewEntry creates a ledger entry. Credits (DeliveryPayout, CashCollection)
// must reference a task and carry a positive amount; AdminPayment carries a
// negative amount and no task reference.
func NewEntry(
	id, courierID kernel.UUID,
	taskID *kernel.UUID,
	kind Kind,
	amount kernel.Money,
	reference string,
	createdAt time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		courierID.Validate(),
		kind.Validate(),
		amount.Validate(),
	); err != nil {
		return nil, err
	}

	switch kind {
	case DeliveryPayout, CashCollection:
		if taskID == nil {
			return nil, errs.NewValueIsRequiredError("taskId")
		}
		if err := taskID.Validate(); err != nil {
			return nil, err
		}
		if !amount.IsPositive() {
			return nil, errs.NewValueIsInvalidError("amount")
		}
	case AdminPayment:
		if !amount.IsNegative() {
			return nil, errs.NewValueIsInvalidError("amount")
		}
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Entry{
		id:        id,
		courierID: courierID,
		taskID:    taskID,
		kind:      kind,
		amount:    amount,
		reference: reference,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreEntry reconstructs an entry from persistence. Entries are
// immutable, so restore applies the same rules as NewEntry.
func RestoreEntry(
	id, courierID kernel.UUID,
	taskID *kernel.UUID,
	kind Kind,
	amount kernel.Money,
	reference string,
	createdAt time.Time,
) (*Entry, error) {
	return NewEntry(id, courierID, taskID, kind, amount, reference, createdAt)
}

// Validate ensures the Entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// CourierID returns the courier whose balance the entry affected.
func (e *Entry) CourierID() kernel.UUID { return e.courierID }

// TaskID returns the referenced task, or nil for admin payments.
func (e *Entry) TaskID() *kernel.UUID { return e.taskID }

// Kind returns the entry classification.
func (e *Entry) Kind() Kind { return e.kind }

// Amount returns the signed amount in minor units.
func (e *Entry) Amount() kernel.Money { return e.amount }

// Reference returns the free-text reference line.
func (e *Entry) Reference() string { return e.reference }

// CreatedAt returns the creation timestamp.
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

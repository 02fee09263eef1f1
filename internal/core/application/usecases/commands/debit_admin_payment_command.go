package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDebitAdminPaymentCommandIsNotConstructed is returned when a
// DebitAdminPaymentCommand was not created via its constructor.
var ErrDebitAdminPaymentCommandIsNotConstructed = errors.New(
	"DebitAdminPaymentCommand must be created via NewDebitAdminPaymentCommand constructor",
)

// DebitAdminPaymentCommand represents a staff-initiated payment of earned
// balance out to a courier. The amount is the positive sum being paid
// out; the ledger records it as a negative entry.
type DebitAdminPaymentCommand struct { //nolint:recvcheck //using for validation
	actorRole kernel.Role
	courierID kernel.UUID
	amount    kernel.Money
	reference string

	guard guard.ConstructorGuard
}

// NewDebitAdminPaymentCommand creates a command to pay out courier balance.
// The amount must be positive; the reference is free text for the ledger.
func NewDebitAdminPaymentCommand(
	actorRole kernel.Role,
	courierID kernel.UUID,
	amount kernel.Money,
	reference string,
) (DebitAdminPaymentCommand, error) {
	debitCommand := DebitAdminPaymentCommand{
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		debitCommand.setActorRole(actorRole),
		debitCommand.setCourierID(courierID),
		debitCommand.setAmount(amount),
	); err != nil {
		return DebitAdminPaymentCommand{}, err
	}

	return debitCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DebitAdminPaymentCommand) Validate() error {
	return c.guard.Validate(ErrDebitAdminPaymentCommandIsNotConstructed)
}

// ActorRole returns the role of the staff member initiating the payment.
func (c DebitAdminPaymentCommand) ActorRole() kernel.Role {
	return c.actorRole
}

// CourierID returns the identifier of the courier being paid.
func (c DebitAdminPaymentCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Amount returns the positive sum being paid out.
func (c DebitAdminPaymentCommand) Amount() kernel.Money {
	return c.amount
}

// Reference returns the free-text payment reference.
func (c DebitAdminPaymentCommand) Reference() string {
	return c.reference
}

func (c *DebitAdminPaymentCommand) setActorRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.actorRole = role
	return nil
}

func (c *DebitAdminPaymentCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *DebitAdminPaymentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCreditCashCollectionCommandIsNotConstructed is returned when a
// CreditCashCollectionCommand was not created via its constructor.
var ErrCreditCashCollectionCommandIsNotConstructed = errors.New(
	"CreditCashCollectionCommand must be created via NewCreditCashCollectionCommand constructor",
)

// CreditCashCollectionCommand represents a request to credit a courier
// the cash they collected on a delivered cash-on-delivery task. The
// destination label names where the cash was handed over and ends up in
// the ledger entry's reference.
type CreditCashCollectionCommand struct { //nolint:recvcheck //using for validation
	courierID        kernel.UUID
	taskID           kernel.UUID
	amount           kernel.Money
	destinationLabel string

	guard guard.ConstructorGuard
}

// NewCreditCashCollectionCommand creates a command to credit collected cash.
// The amount must be positive and the destination label is required.
func NewCreditCashCollectionCommand(
	courierID, taskID kernel.UUID,
	amount kernel.Money,
	destinationLabel string,
) (CreditCashCollectionCommand, error) {
	creditCommand := CreditCashCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		creditCommand.setCourierID(courierID),
		creditCommand.setTaskID(taskID),
		creditCommand.setAmount(amount),
		creditCommand.setDestinationLabel(destinationLabel),
	); err != nil {
		return CreditCashCollectionCommand{}, err
	}

	return creditCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreditCashCollectionCommand) Validate() error {
	return c.guard.Validate(ErrCreditCashCollectionCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier being credited.
func (c CreditCashCollectionCommand) CourierID() kernel.UUID {
	return c.courierID
}

// TaskID returns the delivered task the collection references.
func (c CreditCashCollectionCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Amount returns the collected cash amount.
func (c CreditCashCollectionCommand) Amount() kernel.Money {
	return c.amount
}

// DestinationLabel returns where the cash was handed over.
func (c CreditCashCollectionCommand) DestinationLabel() string {
	return c.destinationLabel
}

func (c *CreditCashCollectionCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreditCashCollectionCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *CreditCashCollectionCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *CreditCashCollectionCommand) setDestinationLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("destinationLabel")
	}

	c.destinationLabel = label
	return nil
}

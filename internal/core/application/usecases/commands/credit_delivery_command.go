package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCreditDeliveryCommandIsNotConstructed is returned when a
// CreditDeliveryCommand was not created via NewCreditDeliveryCommand.
var ErrCreditDeliveryCommandIsNotConstructed = errors.New(
	"CreditDeliveryCommand must be created via NewCreditDeliveryCommand constructor",
)

// CreditDeliveryCommand represents a request to credit a courier the
// payout for a delivered task. The credit is idempotent per task: replays
// are rejected with AlreadyProcessed.
type CreditDeliveryCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	taskID    kernel.UUID
	amount    kernel.Money

	guard guard.ConstructorGuard
}

// NewCreditDeliveryCommand creates a command to credit a delivery payout.
// The amount must be positive.
func NewCreditDeliveryCommand(courierID, taskID kernel.UUID, amount kernel.Money) (CreditDeliveryCommand, error) {
	creditCommand := CreditDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		creditCommand.setCourierID(courierID),
		creditCommand.setTaskID(taskID),
		creditCommand.setAmount(amount),
	); err != nil {
		return CreditDeliveryCommand{}, err
	}

	return creditCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreditDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreditDeliveryCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier being credited.
func (c CreditDeliveryCommand) CourierID() kernel.UUID {
	return c.courierID
}

// TaskID returns the delivered task the payout references.
func (c CreditDeliveryCommand) TaskID() kernel.UUID {
	return c.taskID
}

// Amount returns the payout amount.
func (c CreditDeliveryCommand) Amount() kernel.Money {
	return c.amount
}

func (c *CreditDeliveryCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *CreditDeliveryCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *CreditDeliveryCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrDeliverTaskCommandIsNotConstructed is returned when a
// DeliverTaskCommand was not created via NewDeliverTaskCommand.
var ErrDeliverTaskCommandIsNotConstructed = errors.New(
	"DeliverTaskCommand must be created via NewDeliverTaskCommand constructor",
)

// DeliverTaskCommand represents a courier's delivery confirmation: the
// task plus the code the customer read out. The code is kept as submitted;
// normalization and tolerant matching happen during verification.
type DeliverTaskCommand struct { //nolint:recvcheck //using for validation
	taskID    kernel.UUID
	courierID kernel.UUID
	code      string

	guard guard.ConstructorGuard
}

// NewDeliverTaskCommand creates a command to confirm a delivery.
// The submitted code must not be empty after normalization.
func NewDeliverTaskCommand(taskID, courierID kernel.UUID, code string) (DeliverTaskCommand, error) {
	deliverCommand := DeliverTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deliverCommand.setTaskID(taskID),
		deliverCommand.setCourierID(courierID),
		deliverCommand.setCode(code),
	); err != nil {
		return DeliverTaskCommand{}, err
	}

	return deliverCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeliverTaskCommand) Validate() error {
	return c.guard.Validate(ErrDeliverTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being confirmed.
func (c DeliverTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// CourierID returns the identifier of the confirming courier.
func (c DeliverTaskCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Code returns the delivery code as the courier submitted it.
func (c DeliverTaskCommand) Code() string {
	return c.code
}

func (c *DeliverTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *DeliverTaskCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *DeliverTaskCommand) setCode(code string) error {
	if task.NormalizeCode(code) == "" {
		return errs.NewValueIsRequiredError("code")
	}

	c.code = code
	return nil
}

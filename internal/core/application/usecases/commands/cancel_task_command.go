package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrCancelTaskCommandIsNotConstructed is returned when a CancelTaskCommand
// was not created via NewCancelTaskCommand.
var ErrCancelTaskCommandIsNotConstructed = errors.New(
	"CancelTaskCommand must be created via NewCancelTaskCommand constructor",
)

// CancelTaskCommand represents a courier's request to release a claimed
// task back to the available pool. The reason is free text kept for the
// audit trail only.
type CancelTaskCommand struct { //nolint:recvcheck //using for validation
	taskID    kernel.UUID
	courierID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewCancelTaskCommand creates a command to cancel a claimed task.
// The reason may be empty.
func NewCancelTaskCommand(taskID, courierID kernel.UUID, reason string) (CancelTaskCommand, error) {
	cancelCommand := CancelTaskCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setTaskID(taskID),
		cancelCommand.setCourierID(courierID),
	); err != nil {
		return CancelTaskCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelTaskCommand) Validate() error {
	return c.guard.Validate(ErrCancelTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being released.
func (c CancelTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// CourierID returns the identifier of the releasing courier.
func (c CancelTaskCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Reason returns the free-text cancellation reason.
func (c CancelTaskCommand) Reason() string {
	return c.reason
}

func (c *CancelTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *CancelTaskCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

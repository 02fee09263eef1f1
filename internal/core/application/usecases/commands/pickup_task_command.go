package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrPickupTaskCommandIsNotConstructed is returned when a PickupTaskCommand
// was not created via NewPickupTaskCommand.
var ErrPickupTaskCommandIsNotConstructed = errors.New(
	"PickupTaskCommand must be created via NewPickupTaskCommand constructor",
)

// PickupTaskCommand represents a courier's confirmation that the order
// has been collected from the store.
type PickupTaskCommand struct { //nolint:recvcheck //using for validation
	taskID    kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickupTaskCommand creates a command to mark a task as picked up.
func NewPickupTaskCommand(taskID, courierID kernel.UUID) (PickupTaskCommand, error) {
	pickupCommand := PickupTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pickupCommand.setTaskID(taskID),
		pickupCommand.setCourierID(courierID),
	); err != nil {
		return PickupTaskCommand{}, err
	}

	return pickupCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupTaskCommand) Validate() error {
	return c.guard.Validate(ErrPickupTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being picked up.
func (c PickupTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// CourierID returns the identifier of the collecting courier.
func (c PickupTaskCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *PickupTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *PickupTaskCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrClaimTaskCommandIsNotConstructed is returned when a ClaimTaskCommand
// was not created via NewClaimTaskCommand.
var ErrClaimTaskCommandIsNotConstructed = errors.New(
	"ClaimTaskCommand must be created via NewClaimTaskCommand constructor",
)

// ClaimTaskCommand represents a courier's request to claim an available
// task. Claiming is first-claim-wins: when several couriers race for the
// same task, exactly one succeeds and the rest receive a conflict.
//
// Example:
//
//	cmd, err := NewClaimTaskCommand(taskID, courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid claim request: %w", err)
//	}
//
//	handler := NewClaimTaskCommandHandler(uowFactory, observer)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("claim failed: %w", err)
//	}
type ClaimTaskCommand struct { //nolint:recvcheck //using for validation
	taskID    kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimTaskCommand creates a command to claim a task for a courier.
// Validates that both identifiers are valid UUIDs.
func NewClaimTaskCommand(taskID, courierID kernel.UUID) (ClaimTaskCommand, error) {
	claimCommand := ClaimTaskCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		claimCommand.setTaskID(taskID),
		claimCommand.setCourierID(courierID),
	); err != nil {
		return ClaimTaskCommand{}, err
	}

	return claimCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClaimTaskCommandIsNotConstructed if validation fails.
func (c ClaimTaskCommand) Validate() error {
	return c.guard.Validate(ErrClaimTaskCommandIsNotConstructed)
}

// TaskID returns the identifier of the task being claimed.
func (c ClaimTaskCommand) TaskID() kernel.UUID {
	return c.taskID
}

// CourierID returns the identifier of the claiming courier.
func (c ClaimTaskCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *ClaimTaskCommand) setTaskID(taskID kernel.UUID) error {
	if err := taskID.Validate(); err != nil {
		return err
	}

	c.taskID = taskID
	return nil
}

func (c *ClaimTaskCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

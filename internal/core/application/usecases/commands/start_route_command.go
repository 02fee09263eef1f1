package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrStartRouteCommandIsNotConstructed is returned when a StartRouteCommand
// was not created via NewStartRouteCommand.
var ErrStartRouteCommandIsNotConstructed = errors.New(
	"StartRouteCommand must be created via NewStartRouteCommand constructor",
)

// StartRouteCommand represents a courier's request to bundle several
// picked-up tasks into one multi-stop route. Stop order follows the
// submitted task order and is never re-sorted.
type StartRouteCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	taskIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartRouteCommand creates a command to start a multi-stop route.
// Requires at least one task; duplicate task IDs are rejected.
func NewStartRouteCommand(courierID kernel.UUID, taskIDs []kernel.UUID) (StartRouteCommand, error) {
	routeCommand := StartRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		routeCommand.setCourierID(courierID),
		routeCommand.setTaskIDs(taskIDs),
	); err != nil {
		return StartRouteCommand{}, err
	}

	return routeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c StartRouteCommand) Validate() error {
	return c.guard.Validate(ErrStartRouteCommandIsNotConstructed)
}

// CourierID returns the identifier of the courier starting the route.
func (c StartRouteCommand) CourierID() kernel.UUID {
	return c.courierID
}

// TaskIDs returns the stop tasks in submitted order.
func (c StartRouteCommand) TaskIDs() []kernel.UUID {
	result := make([]kernel.UUID, len(c.taskIDs))
	copy(result, c.taskIDs)
	return result
}

func (c *StartRouteCommand) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	c.courierID = courierID
	return nil
}

func (c *StartRouteCommand) setTaskIDs(taskIDs []kernel.UUID) error {
	if len(taskIDs) == 0 {
		return errs.NewValueIsRequiredError("taskIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(taskIDs))
	for _, id := range taskIDs {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidError("taskIds")
		}
		seen[id] = struct{}{}
	}

	c.taskIDs = make([]kernel.UUID, len(taskIDs))
	copy(c.taskIDs, taskIDs)
	return nil
}

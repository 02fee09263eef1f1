package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/task"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// StartRouteCommandHandler handles multi-stop route creation.
// Route start is all-or-nothing: every requested task must be the
// courier's and picked up, otherwise nothing changes and the caller
// learns how many of the requested tasks were eligible.
type StartRouteCommandHandler struct {
	uowFactory RouteUoWFactory
	observer   ports.Observer
}

// NewStartRouteCommandHandler creates a handler for route start operations.
func NewStartRouteCommandHandler(uowFactory RouteUoWFactory, observer ports.Observer) StartRouteCommandHandler {
	return StartRouteCommandHandler{
		uowFactory: uowFactory,
		observer:   observer,
	}
}

// Handle processes the route start command.
// Creates the route with stops in submitted order, marks the first stop
// delivering and the rest waiting, and sets the courier's active-route
// pointer. Fails with PartialAvailability when any requested task is
// ineligible and with InvalidState when the courier already runs a route.
func (h StartRouteCommandHandler) Handle(ctx context.Context, cmd StartRouteCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	courierAggregate, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return kernel.UUID{}, err
	}

	taskRepo := uow.TaskRepository()
	taskIDs := cmd.TaskIDs()

	stops := make([]*task.Task, 0, len(taskIDs))
	for _, id := range taskIDs {
		stop, err := taskRepo.GetForUpdate(ctx, id)
		if errors.Is(err, errs.ErrObjectNotFound) {
			continue
		}
		if err != nil {
			return kernel.UUID{}, err
		}
		if stop.Status() != task.PickedUp {
			continue
		}
		if stop.Courier() == nil || !stop.Courier().IsEqual(cmd.CourierID()) {
			continue
		}
		stops = append(stops, stop)
	}

	if len(stops) != len(taskIDs) {
		return kernel.UUID{}, errs.NewPartialAvailabilityError(len(taskIDs), len(stops))
	}

	newRoute, err := route.NewRoute(kernel.NewUUID(), cmd.CourierID(), taskIDs)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = courierAggregate.AssignActiveRoute(newRoute.ID()); err != nil {
		return kernel.UUID{}, err
	}

	for i, stop := range stops {
		if err = stop.JoinRoute(newRoute.ID(), i, cmd.CourierID()); err != nil {
			return kernel.UUID{}, err
		}
		if err = taskRepo.Update(ctx, stop); err != nil {
			return kernel.UUID{}, err
		}
	}

	if err = uow.RouteRepository().Add(ctx, newRoute); err != nil {
		return kernel.UUID{}, err
	}

	if err = courierRepo.Update(ctx, courierAggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	courierID := cmd.CourierID()
	if h.observer != nil {
		h.observer.Publish(ports.AuditEvent{
			Name:       "route.started",
			CourierID:  &courierID,
			OccurredAt: time.Now().UTC(),
		})
	}

	return newRoute.ID(), nil
}

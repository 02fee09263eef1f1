package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/attempt"
	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// DeliverTaskResult reports the outcome of a delivery confirmation.
// A wrong code is not an error: the attempt is consumed and the courier
// may retry while budget remains.
type DeliverTaskResult struct {
	// Delivered is true when the code matched and the payout was applied.
	Delivered bool

	// AttemptsRemaining is how many verification attempts the courier has
	// left for this task after this call. Zero on success.
	AttemptsRemaining int
}

// DeliverTaskCommandHandler handles the delivery confirmation flow: code
// verification under the attempt budget, then a single transaction covering
// the status transition, the idempotent payout credit, the courier's delivery
// counter, and the route advance when the task is a route stop.
//
// The task row is read FOR UPDATE, so two couriers (or a replayed request)
// confirming the same task serialize: the second sees the delivered state
// or the existing payout entry and cannot double-credit.
type DeliverTaskCommandHandler struct {
	uowFactory UoWFactory
	matcher    services.CodeMatcher
	observer   ports.Observer
}

// NewDeliverTaskCommandHandler creates a handler for delivery confirmations.
func NewDeliverTaskCommandHandler(uowFactory UoWFactory, observer ports.Observer) DeliverTaskCommandHandler {
	return DeliverTaskCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewCodeMatcher(),
		observer:   observer,
	}
}

// Handle processes a delivery confirmation.
//
// A mismatching code registers an attempt and returns a non-delivered
// result; the attempt still commits. The attempt that pushes the counter
// past the budget fails with TooManyAttempts regardless of the code.
// On a match the payout, counter bump, attempt purge, and route advance
// commit atomically with the status change.
func (h DeliverTaskCommandHandler) Handle(ctx context.Context, cmd DeliverTaskCommand) (DeliverTaskResult, error) {
	if err := cmd.Validate(); err != nil {
		return DeliverTaskResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DeliverTaskResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	taskRepo := uow.TaskRepository()
	aggregate, err := taskRepo.GetForUpdate(ctx, cmd.TaskID())
	if err != nil {
		return DeliverTaskResult{}, err
	}

	if aggregate.Courier() == nil || !aggregate.Courier().IsEqual(cmd.CourierID()) {
		return DeliverTaskResult{}, errs.NewForbiddenError(
			cmd.CourierID().String(), "deliver task "+cmd.TaskID().String(),
		)
	}

	if _, err = aggregate.Status().Deliver(); err != nil {
		return DeliverTaskResult{}, err
	}

	if aggregate.Code() == nil {
		return DeliverTaskResult{}, errs.NewInvalidStateError("task", aggregate.Status().String(), "deliver")
	}

	now := time.Now().UTC()

	attemptRepo := uow.AttemptRepository()
	record, err := attemptRepo.GetByTaskAndCourier(ctx, cmd.TaskID(), cmd.CourierID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		if record, err = attempt.NewAttempt(cmd.TaskID(), cmd.CourierID(), now); err != nil {
			return DeliverTaskResult{}, err
		}
	case err != nil:
		return DeliverTaskResult{}, err
	default:
		record.Register(now)
	}

	if record.Exceeded() {
		if err = attemptRepo.Upsert(ctx, record); err != nil {
			return DeliverTaskResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return DeliverTaskResult{}, err
		}
		return DeliverTaskResult{}, errs.NewTooManyAttemptsError(cmd.TaskID().String(), record.Count())
	}

	if !h.matcher.Match(cmd.Code(), *aggregate.Code()) {
		if err = attemptRepo.Upsert(ctx, record); err != nil {
			return DeliverTaskResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return DeliverTaskResult{}, err
		}
		return DeliverTaskResult{
			Delivered:         false,
			AttemptsRemaining: attempt.MaxAttempts - record.Count(),
		}, nil
	}

	if err = aggregate.Deliver(cmd.CourierID()); err != nil {
		return DeliverTaskResult{}, err
	}
	aggregate.ConsumeCode()

	courierRepo := uow.CourierRepository()
	courierAggregate, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return DeliverTaskResult{}, err
	}

	if err = applyTaskCredit(
		ctx, uow.LedgerRepository(), courierAggregate,
		cmd.TaskID(), ledger.DeliveryPayout, aggregate.Fee(), "delivery payout", now,
	); err != nil {
		return DeliverTaskResult{}, err
	}
	courierAggregate.RecordDelivery()

	routeCompleted := false
	if aggregate.InRoute() {
		routeCompleted, err = h.advanceRoute(ctx, uow, aggregate.RouteID(), courierAggregate, now)
		if err != nil {
			return DeliverTaskResult{}, err
		}
	}

	if err = attemptRepo.DeleteByTask(ctx, cmd.TaskID()); err != nil {
		return DeliverTaskResult{}, err
	}

	if err = taskRepo.Update(ctx, aggregate); err != nil {
		return DeliverTaskResult{}, err
	}

	if err = courierRepo.Update(ctx, courierAggregate); err != nil {
		return DeliverTaskResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return DeliverTaskResult{}, err
	}

	h.publishDelivered(cmd, aggregate.CustomerPhone(), aggregate.Fee().Amount(), routeCompleted)

	return DeliverTaskResult{Delivered: true}, nil
}

// advanceRoute moves the courier's route forward past the delivered stop.
// The next stop, if any, becomes the current delivery; a finished route
// releases the courier's active-route pointer.
func (h DeliverTaskCommandHandler) advanceRoute(
	ctx context.Context,
	uow UoW,
	routeID *kernel.UUID,
	courierAggregate *courier.Courier,
	now time.Time,
) (bool, error) {
	routeRepo := uow.RouteRepository()
	activeRoute, err := routeRepo.Get(ctx, *routeID)
	if err != nil {
		return false, err
	}

	nextStop, err := activeRoute.Advance(now)
	if err != nil {
		return false, err
	}

	if nextStop != nil {
		taskRepo := uow.TaskRepository()
		next, err := taskRepo.Get(ctx, *nextStop)
		if err != nil {
			return false, err
		}
		if err = next.BecomeCurrentStop(); err != nil {
			return false, err
		}
		if err = taskRepo.Update(ctx, next); err != nil {
			return false, err
		}
	} else {
		courierAggregate.ClearActiveRoute(activeRoute.ID())
	}

	if err = routeRepo.Update(ctx, activeRoute); err != nil {
		return false, err
	}

	return activeRoute.IsCompleted(), nil
}

func (h DeliverTaskCommandHandler) publishDelivered(cmd DeliverTaskCommand, phone string, amount int64, routeCompleted bool) {
	if h.observer == nil {
		return
	}

	taskID := cmd.TaskID()
	courierID := cmd.CourierID()
	h.observer.Publish(ports.AuditEvent{
		Name:       "task.delivered",
		TaskID:     &taskID,
		CourierID:  &courierID,
		Amount:     amount,
		Detail:     "Your order has been delivered. Thank you!",
		Phone:      phone,
		OccurredAt: time.Now().UTC(),
	})

	if routeCompleted {
		h.observer.Publish(ports.AuditEvent{
			Name:       "route.completed",
			CourierID:  &courierID,
			OccurredAt: time.Now().UTC(),
		})
	}
}

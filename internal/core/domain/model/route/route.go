package route

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not
// created through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute constructor")

// Status represents the lifecycle state of a route.
type Status int

const (
	// Unknown represents an invalid or undefined route status.
	Unknown Status = iota
	// Active means the route still has undelivered stops.
	Active
	// Completed means every stop was delivered. Terminal.
	Completed
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case Active:
		return "Active"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Validate checks that the Status holds one of the defined values.
func (s Status) Validate() error {
	if s != Active && s != Completed {
		return errs.NewValueIsInvalidError("route status")
	}
	return nil
}

// Route is an ordered batch of tasks a courier delivers in one continuous
// trip. The stop list is fixed at creation time and never re-sorted; only
// the counters and status change afterwards.
//
// Invariants:
//   - completed <= total at all times
//   - the route is Completed iff completed == total
//   - currentIndex points at the stop being delivered while Active
type Route struct {
	id             kernel.UUID
	courierID      kernel.UUID
	stopIDs        []kernel.UUID
	completedStops int
	currentIndex   int
	status         Status
	completedAt    *time.Time
	guard          guard.ConstructorGuard
}

// NewRoute creates an active route over the given task IDs in the given
// order, starting at stop zero. At least one stop is required.
func NewRoute(id, courierID kernel.UUID, stopIDs []kernel.UUID) (*Route, error) {
	if err := errors.Join(id.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}
	if len(stopIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("stopIDs")
	}
	for _, stopID := range stopIDs {
		if err := stopID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Route{
		id:        id,
		courierID: courierID,
		stopIDs:   append([]kernel.UUID(nil), stopIDs...),
		status:    Active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreRoute reconstructs a route from persistence.
func RestoreRoute(
	id, courierID kernel.UUID,
	stopIDs []kernel.UUID,
	completedStops, currentIndex int,
	status Status,
	completedAt *time.Time,
) (*Route, error) {
	if err := errors.Join(id.Validate(), courierID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if len(stopIDs) == 0 {
		return nil, errs.NewValueIsRequiredError("stopIDs")
	}
	if completedStops < 0 || completedStops > len(stopIDs) {
		return nil, errs.NewValueIsOutOfRangeError("completedStops", completedStops, 0, len(stopIDs))
	}
	if currentIndex < 0 || currentIndex >= len(stopIDs) {
		return nil, errs.NewValueIsOutOfRangeError("currentIndex", currentIndex, 0, len(stopIDs)-1)
	}

	return &Route{
		id:             id,
		courierID:      courierID,
		stopIDs:        append([]kernel.UUID(nil), stopIDs...),
		completedStops: completedStops,
		currentIndex:   currentIndex,
		status:         status,
		completedAt:    completedAt,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Route was created through a constructor.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route identifier.
func (r *Route) ID() kernel.UUID { return r.id }

// CourierID returns the owning courier's identifier.
func (r *Route) CourierID() kernel.UUID { return r.courierID }

// StopIDs returns the ordered task identifiers, as fixed at creation.
func (r *Route) StopIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), r.stopIDs...)
}

// TotalStops returns the number of stops.
func (r *Route) TotalStops() int { return len(r.stopIDs) }

// CompletedStops returns how many stops were delivered.
func (r *Route) CompletedStops() int { return r.completedStops }

// CurrentIndex returns the position of the stop being delivered.
func (r *Route) CurrentIndex() int { return r.currentIndex }

// Status returns Active or Completed.
func (r *Route) Status() Status { return r.status }

// CompletedAt returns the completion timestamp, or nil while active.
func (r *Route) CompletedAt() *time.Time { return r.completedAt }

// CurrentStop returns the task ID at the current index.
func (r *Route) CurrentStop() kernel.UUID {
	return r.stopIDs[r.currentIndex]
}

// IsCompleted reports whether every stop was delivered.
func (r *Route) IsCompleted() bool {
	return r.status == Completed
}

// Advance records the delivery of the current stop. When stops remain, it
// moves the index forward and returns the task ID of the next stop so the
// caller can promote it to Delivering. When the last stop completes, it
// closes the route, stamps the completion time, and returns nil.
func (r *Route) Advance(at time.Time) (*kernel.UUID, error) {
	if r.status != Active {
		return nil, errs.NewInvalidStateError("route", r.status.String(), "advance")
	}

	r.completedStops++
	if r.completedStops == len(r.stopIDs) {
		r.status = Completed
		r.completedAt = &at
		return nil, nil
	}

	r.currentIndex++
	next := r.stopIDs[r.currentIndex]
	return &next, nil
}

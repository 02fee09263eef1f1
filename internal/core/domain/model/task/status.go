package task

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery task.
// It implements a state machine with defined transitions:
//
//	Available ──> Accepted ──> PickedUp ──┬──> Delivering ──> Delivered
//	    ▲             │            │      └──> InMultiRoute ──> Delivering
//	    └─────────────┴────────────┘
//	              (cancel)
//
// Delivered is terminal. A task that is part of an active route
// (InMultiRoute or Delivering) cannot be cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Available means the task is ready for delivery and unclaimed.
	Available

	// Accepted means a courier has claimed the task.
	Accepted

	// PickedUp means the courier has collected the order from the store.
	PickedUp

	// InMultiRoute means the task is a later stop of an active route.
	InMultiRoute

	// Delivering means the task is the courier's current stop.
	Delivering

	// Delivered is the terminal state after the code was confirmed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:      "Unknown",
		Available:    "Available",
		Accepted:     "Accepted",
		PickedUp:     "PickedUp",
		InMultiRoute: "InMultiRoute",
		Delivering:   "Delivering",
		Delivered:    "Delivered",
	}
}

// Validate checks that the Status holds one of the defined lifecycle values.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidError("status")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsRouted reports whether the status means the task belongs to an active
// route stop sequence.
func (s Status) IsRouted() bool {
	return s == InMultiRoute || s == Delivering
}

// Accept transitions to Accepted. Valid from Available (initial claim) and
// Accepted (the same courier re-claiming is a no-op at the status level;
// ownership is checked by the aggregate).
func (s Status) Accept() (Status, error) {
	if s != Available && s != Accepted {
		return 0, errs.NewInvalidStateError("task", s.String(), "claim")
	}
	return Accepted, nil
}

// Pickup transitions to PickedUp. Valid only from Accepted.
func (s Status) Pickup() (Status, error) {
	if s != Accepted {
		return 0, errs.NewInvalidStateError("task", s.String(), "pickup")
	}
	return PickedUp, nil
}

// Cancel transitions back to Available. Valid from Available, Accepted, and
// PickedUp. Tasks inside an active route and delivered tasks cannot be
// cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Available && s != Accepted && s != PickedUp {
		return 0, errs.NewInvalidStateError("task", s.String(), "cancel")
	}
	return Available, nil
}

// EnterRoute transitions a picked-up task into a route: Delivering for the
// first stop, InMultiRoute for the rest. Valid only from PickedUp.
func (s Status) EnterRoute(first bool) (Status, error) {
	if s != PickedUp {
		return 0, errs.NewInvalidStateError("task", s.String(), "join route")
	}
	if first {
		return Delivering, nil
	}
	return InMultiRoute, nil
}

// BecomeCurrentStop transitions InMultiRoute to Delivering when the route
// advances to this stop.
func (s Status) BecomeCurrentStop() (Status, error) {
	if s != InMultiRoute {
		return 0, errs.NewInvalidStateError("task", s.String(), "become current stop")
	}
	return Delivering, nil
}

// Deliver transitions to Delivered. Valid from PickedUp (single delivery)
// and Delivering (current route stop). An InMultiRoute task must wait for
// its turn.
func (s Status) Deliver() (Status, error) {
	if s != PickedUp && s != Delivering {
		return 0, errs.NewInvalidStateError("task", s.String(), "deliver")
	}
	return Delivered, nil
}

package task

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrTaskIsNotConstructed is returned when a Task instance was not created
// through NewTask or RestoreTask.
var ErrTaskIsNotConstructed = errors.New("Task must be created via NewTask or RestoreTask constructor")

// Item is a display-only line of the order's contents, shown to the courier
// so they can check the bag at pickup. Items never affect fulfillment logic.
type Item struct {
	Name     string
	Quantity int
}

// Task represents a delivery task: the delivery-relevant view of an order
// that is ready for courier pickup. It is the aggregate root for the
// claim / pickup / cancel / deliver lifecycle.
//
// Invariants:
//   - At most one assigned courier at any time; reassignment only through
//     explicit cancel-then-claim
//   - The delivery fee is positive (zero-fee orders are store-handled and
//     never become tasks)
//   - The delivery code exists only between pickup and confirmation and is
//     cleared once consumed
//   - Route membership (route id + stop index) is set only by route
//     creation and never re-sorted
type Task struct {
	id            kernel.UUID
	status        Status
	courierID     *kernel.UUID
	fee           kernel.Money
	address       string
	location      kernel.Location
	customerPhone string
	items         []Item
	acceptedAt    *time.Time
	pickedUpAt    *time.Time
	code          *DeliveryCode
	routeID       *kernel.UUID
	routeIndex    *int
	guard         guard.ConstructorGuard
}

// NewTask creates an unclaimed delivery task in Available status.
// The fee must be positive; the address and customer phone are required.
func NewTask(
	id kernel.UUID,
	address string,
	location kernel.Location,
	customerPhone string,
	fee kernel.Money,
	items []Item,
) (*Task, error) {
	t := &Task{
		status: Available,
		items:  items,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setAddress(address),
		t.setLocation(location),
		t.setCustomerPhone(customerPhone),
		t.setFee(fee),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTask reconstructs a Task from persistence, preserving its full
// lifecycle state including assignment, timestamps, code, and route
// membership.
func RestoreTask(
	id kernel.UUID,
	status Status,
	courierID *kernel.UUID,
	address string,
	location kernel.Location,
	customerPhone string,
	fee kernel.Money,
	items []Item,
	acceptedAt *time.Time,
	pickedUpAt *time.Time,
	code *DeliveryCode,
	routeID *kernel.UUID,
	routeIndex *int,
) (*Task, error) {
	t := &Task{
		status:     status,
		items:      items,
		acceptedAt: acceptedAt,
		pickedUpAt: pickedUpAt,
		code:       code,
		routeID:    routeID,
		routeIndex: routeIndex,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		status.Validate(),
		t.setAddress(address),
		t.setLocation(location),
		t.setCustomerPhone(customerPhone),
		t.setFee(fee),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		t.courierID = courierID
	}

	return t, nil
}

// Validate ensures the Task was created through a constructor.
func (t *Task) Validate() error {
	if t == nil {
		return ErrTaskIsNotConstructed
	}
	return t.guard.Validate(ErrTaskIsNotConstructed)
}

// IsEqual compares two tasks by identifier.
func (t *Task) IsEqual(other *Task) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the task identifier.
func (t *Task) ID() kernel.UUID { return t.id }

// Status returns the current lifecycle status.
func (t *Task) Status() Status { return t.status }

// Courier returns the assigned courier's ID, or nil when unclaimed.
func (t *Task) Courier() *kernel.UUID { return t.courierID }

// Fee returns the delivery fee credited to the courier on confirmation.
func (t *Task) Fee() kernel.Money { return t.fee }

// Address returns the destination street address.
func (t *Task) Address() string { return t.address }

// Location returns the destination coordinates.
func (t *Task) Location() kernel.Location { return t.location }

// CustomerPhone returns the phone number notifications are sent to.
func (t *Task) CustomerPhone() string { return t.customerPhone }

// Items returns the display-only order contents.
func (t *Task) Items() []Item { return t.items }

// AcceptedAt returns the claim timestamp, or nil before the first claim.
func (t *Task) AcceptedAt() *time.Time { return t.acceptedAt }

// PickedUpAt returns the pickup timestamp, or nil before pickup.
func (t *Task) PickedUpAt() *time.Time { return t.pickedUpAt }

// Code returns the active delivery code, or nil when none is outstanding.
func (t *Task) Code() *DeliveryCode { return t.code }

// RouteID returns the owning route's ID when the task is part of one.
func (t *Task) RouteID() *kernel.UUID { return t.routeID }

// RouteIndex returns the task's stop position within its route.
func (t *Task) RouteIndex() *int { return t.routeIndex }

// InRoute reports whether the task has route membership.
func (t *Task) InRoute() bool { return t.routeID != nil }

// Accept claims the task for a courier and stamps the acceptance time.
//
// Returns a ConflictError when a different courier already holds the task:
// claiming is first-claim-wins, and the storage layer serializes concurrent
// claims with a conditional update so exactly one caller observes success.
func (t *Task) Accept(courierID kernel.UUID, at time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if t.courierID != nil && !t.courierID.IsEqual(courierID) {
		return errs.NewConflictError("task", t.id.String())
	}

	newStatus, err := t.status.Accept()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.courierID = &courierID
	t.acceptedAt = &at
	return nil
}

// Pickup marks the task as collected by its assigned courier and attaches
// the delivery code when none exists yet. A task keeps its existing code on
// repeated pickup attempts so the customer's copy stays valid.
func (t *Task) Pickup(courierID kernel.UUID, code DeliveryCode, at time.Time) error {
	if err := t.ensureAssignedTo(courierID, "pickup"); err != nil {
		return err
	}

	newStatus, err := t.status.Pickup()
	if err != nil {
		return err
	}

	if t.code == nil {
		if err = code.Validate(); err != nil {
			return err
		}
		t.code = &code
	}

	t.status = newStatus
	t.pickedUpAt = &at
	return nil
}

// Cancel releases the task back to the available pool: assignment,
// timestamps, and any outstanding code are cleared. Fails with
// InvalidState while the task is part of an active route.
func (t *Task) Cancel(courierID kernel.UUID) error {
	if err := t.ensureAssignedTo(courierID, "cancel"); err != nil {
		return err
	}

	newStatus, err := t.status.Cancel()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.courierID = nil
	t.acceptedAt = nil
	t.pickedUpAt = nil
	t.code = nil
	return nil
}

// JoinRoute records route membership for a picked-up task. The first stop
// becomes Delivering immediately; later stops wait in InMultiRoute.
func (t *Task) JoinRoute(routeID kernel.UUID, index int, courierID kernel.UUID) error {
	if err := t.ensureAssignedTo(courierID, "join route"); err != nil {
		return err
	}
	if err := routeID.Validate(); err != nil {
		return err
	}

	newStatus, err := t.status.EnterRoute(index == 0)
	if err != nil {
		return err
	}

	t.status = newStatus
	t.routeID = &routeID
	t.routeIndex = &index
	return nil
}

// BecomeCurrentStop promotes a waiting route stop to Delivering when the
// route advances to it.
func (t *Task) BecomeCurrentStop() error {
	newStatus, err := t.status.BecomeCurrentStop()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Deliver marks the task as delivered by its assigned courier. Code
// verification happens before this call; Deliver itself only guards the
// state transition.
func (t *Task) Deliver(courierID kernel.UUID) error {
	if err := t.ensureAssignedTo(courierID, "deliver"); err != nil {
		return err
	}

	newStatus, err := t.status.Deliver()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// ConsumeCode clears the delivery code after successful verification.
// A consumed code can never be presented again.
func (t *Task) ConsumeCode() {
	t.code = nil
}

func (t *Task) ensureAssignedTo(courierID kernel.UUID, action string) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if t.courierID == nil || !t.courierID.IsEqual(courierID) {
		return errs.NewForbiddenError(courierID.String(), action+" task "+t.id.String())
	}
	return nil
}

func (t *Task) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Task) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	t.address = address
	return nil
}

func (t *Task) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	t.location = location
	return nil
}

func (t *Task) setCustomerPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customerPhone")
	}
	t.customerPhone = phone
	return nil
}

func (t *Task) setFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	if !fee.IsPositive() {
		return errs.NewValueIsInvalidError("fee")
	}
	t.fee = fee
	return nil
}

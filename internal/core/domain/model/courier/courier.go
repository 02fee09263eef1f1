package courier

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when creating a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating a courier without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
)

// Courier represents a delivery courier. It is an aggregate root managing
// the courier's running balance, active-route pointer, and lifetime
// delivery counter.
//
// Invariants:
//   - The balance changes only through Credit and Debit, which are invoked
//     exclusively by ledger operations; there is no direct balance write path
//   - Debit never leaves the balance negative
//   - At most one active route at a time, tracked by a single pointer
type Courier struct {
	id                  kernel.UUID
	name                string
	phone               string
	balance             kernel.Money
	activeRouteID       *kernel.UUID
	completedDeliveries int
	guard               guard.ConstructorGuard
}

// NewCourier creates a courier with a zero balance, no active route, and no
// completed deliveries.
func NewCourier(id kernel.UUID, name, phone string) (*Courier, error) {
	c := &Courier{
		balance: kernel.NewMoney(0),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a courier from persistence with its balance,
// active-route pointer, and delivery counter.
func RestoreCourier(
	id kernel.UUID,
	name, phone string,
	balance kernel.Money,
	activeRouteID *kernel.UUID,
	completedDeliveries int,
) (*Courier, error) {
	c := &Courier{
		balance:             balance,
		activeRouteID:       activeRouteID,
		completedDeliveries: completedDeliveries,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
		balance.Validate(),
	); err != nil {
		return nil, err
	}

	if completedDeliveries < 0 {
		return nil, errs.NewValueIsInvalidError("completedDeliveries")
	}

	return c, nil
}

// Validate ensures the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identifier.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier identifier.
func (c *Courier) ID() kernel.UUID { return c.id }

// Name returns the courier's display name.
func (c *Courier) Name() string { return c.name }

// Phone returns the courier's phone number.
func (c *Courier) Phone() string { return c.phone }

// Balance returns the courier's running balance.
func (c *Courier) Balance() kernel.Money { return c.balance }

// ActiveRouteID returns the active route pointer, or nil when the courier
// has no route in progress.
func (c *Courier) ActiveRouteID() *kernel.UUID { return c.activeRouteID }

// CompletedDeliveries returns the lifetime delivery counter.
func (c *Courier) CompletedDeliveries() int { return c.completedDeliveries }

// Credit increases the balance. Only ledger operations call this, together
// with the matching entry, inside one transaction.
func (c *Courier) Credit(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.balance = c.balance.Add(amount)
	return nil
}

// Debit decreases the balance. Fails with InsufficientBalance when the
// result would be negative; the balance is left untouched in that case.
func (c *Courier) Debit(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	if c.balance.Sub(amount).IsNegative() {
		return errs.NewInsufficientBalanceError(c.id.String(), c.balance.Amount(), amount.Amount())
	}

	c.balance = c.balance.Sub(amount)
	return nil
}

// AssignActiveRoute points the courier at a newly started route. A courier
// runs at most one route at a time.
func (c *Courier) AssignActiveRoute(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	if c.activeRouteID != nil {
		return errs.NewInvalidStateError("courier", "on route", "start another route")
	}

	c.activeRouteID = &routeID
	return nil
}

// ClearActiveRoute drops the pointer once the given route completes.
// Clearing an already-cleared or different route is a no-op.
func (c *Courier) ClearActiveRoute(routeID kernel.UUID) {
	if c.activeRouteID != nil && c.activeRouteID.IsEqual(routeID) {
		c.activeRouteID = nil
	}
}

// RecordDelivery bumps the lifetime delivery counter.
func (c *Courier) RecordDelivery() {
	c.completedDeliveries++
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

package kernel

import "fulfillment/internal/pkg/errs"

// Role identifies the kind of actor invoking an operation. Authentication
// itself is out of scope; transports resolve the caller's role and the core
// only checks it.
type Role string

const (
	// RoleCourier is a courier acting on their own tasks and balance.
	RoleCourier Role = "courier"
	// RoleManager is back-office staff managing payouts.
	RoleManager Role = "manager"
	// RoleAdmin is a trusted administrator.
	RoleAdmin Role = "admin"
)

// Validate checks that the Role holds one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleCourier, RoleManager, RoleAdmin:
		return nil
	default:
		return errs.NewValueIsInvalidError("role")
	}
}

// IsStaff reports whether the role may act on other couriers' records,
// such as registering payouts or reading any balance history.
func (r Role) IsStaff() bool {
	return r == RoleManager || r == RoleAdmin
}

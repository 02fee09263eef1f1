package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney")

// Money is a signed currency amount in minor units (e.g. cents).
// It is the only representation of delivery fees, ledger amounts, and
// courier balances in the domain. Money is immutable; arithmetic methods
// return new values.
//
// Negative amounts are valid: ledger debit entries carry them, and a
// courier balance is signed by definition even though the ledger rules
// never let it go below zero.
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor units.
func NewMoney(amount int64) Money {
	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return NewMoney(m.amount + other.amount)
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return NewMoney(m.amount - other.amount)
}

// Negate returns the amount with its sign flipped.
func (m Money) Negate() Money {
	return NewMoney(-m.amount)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount in minor units, e.g. "3000".
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}

// Validate returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

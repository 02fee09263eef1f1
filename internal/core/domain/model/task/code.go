package task

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	codeMin = 1000
	codeMax = 9999
)

// ErrDeliveryCodeIsNotConstructed is returned when validating a zero-value
// DeliveryCode. Codes must be created via NewDeliveryCode or
// GenerateDeliveryCode.
var ErrDeliveryCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery code must be created via NewDeliveryCode or GenerateDeliveryCode")

// DeliveryCode is the short-lived, single-use shared secret confirming
// physical handoff to the customer: exactly four ASCII digits. It is not
// cryptographically sensitive, so generation uses math/rand.
type DeliveryCode struct {
	value string
	guard guard.ConstructorGuard
}

// GenerateDeliveryCode returns a uniformly random code in [1000, 9999].
func GenerateDeliveryCode() DeliveryCode {
	return DeliveryCode{
		value: fmt.Sprintf("%d", codeMin+rand.IntN(codeMax-codeMin+1)), //nolint:gosec //not a secret key
		guard: guard.NewConstructorGuard(),
	}
}

// NewDeliveryCode creates a DeliveryCode from its string form, typically
// when restoring a task from persistence. The value is normalized first and
// must be exactly four digits.
func NewDeliveryCode(value string) (DeliveryCode, error) {
	normalized := NormalizeCode(value)
	if len(normalized) != 4 {
		return DeliveryCode{}, errs.NewValueIsInvalidError("delivery code")
	}
	for _, r := range normalized {
		if r < '0' || r > '9' {
			return DeliveryCode{}, errs.NewValueIsInvalidError("delivery code")
		}
	}

	return DeliveryCode{
		value: normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NormalizeCode strips whitespace and hyphens and case-folds the input.
// Submitted and expected codes are both normalized before matching, so
// "48-21" and " 4821 " compare equal.
func NormalizeCode(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		switch r {
		case ' ', '\t', '\n', '\r', '-':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Value returns the normalized four-digit string.
func (c DeliveryCode) Value() string {
	return c.value
}

// IsEqual reports whether two codes have the same value.
func (c DeliveryCode) IsEqual(other DeliveryCode) bool {
	return c.value == other.value
}

// Validate returns ErrDeliveryCodeIsNotConstructed for zero-value instances.
func (c DeliveryCode) Validate() error {
	return c.guard.Validate(ErrDeliveryCodeIsNotConstructed)
}

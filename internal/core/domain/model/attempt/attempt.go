// Package attempt tracks delivery-code verification attempts per
// (task, courier) pair. The counter is the brute-force guard for the
// 4-digit code; records are purged when the code is consumed, when the task
// closes, and by a periodic cleanup job.
//
// Attempts are intentionally tracked per courier rather than per task, so a
// task reassigned to a new courier starts with a fresh budget.
package attempt

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// MaxAttempts is the verification budget per (task, courier) pair.
// The attempt that pushes the counter past this value fails with
// TooManyAttempts regardless of the submitted code.
const MaxAttempts = 5

// ErrAttemptIsNotConstructed is returned when an Attempt instance was not
// created through NewAttempt or RestoreAttempt.
var ErrAttemptIsNotConstructed = errors.New("Attempt must be created via NewAttempt or RestoreAttempt constructor")

// Attempt is the verification counter for one (task, courier) pair.
// It is created on the first verification attempt, incremented on every
// subsequent one, and deleted when the code is consumed or the task closes.
type Attempt struct {
	taskID        kernel.UUID
	courierID     kernel.UUID
	count         int
	lastAttemptAt time.Time
	guard         guard.ConstructorGuard
}

// NewAttempt creates the record for a pair's first verification attempt.
func NewAttempt(taskID, courierID kernel.UUID, at time.Time) (*Attempt, error) {
	if err := errors.Join(taskID.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}

	return &Attempt{
		taskID:        taskID,
		courierID:     courierID,
		count:         1,
		lastAttemptAt: at,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreAttempt reconstructs an attempt record from persistence.
func RestoreAttempt(taskID, courierID kernel.UUID, count int, lastAttemptAt time.Time) (*Attempt, error) {
	if err := errors.Join(taskID.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}
	if count < 1 {
		return nil, errs.NewValueIsInvalidError("count")
	}

	return &Attempt{
		taskID:        taskID,
		courierID:     courierID,
		count:         count,
		lastAttemptAt: lastAttemptAt,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Attempt was created through a constructor.
func (a *Attempt) Validate() error {
	if a == nil {
		return ErrAttemptIsNotConstructed
	}
	return a.guard.Validate(ErrAttemptIsNotConstructed)
}

// TaskID returns the task side of the pair.
func (a *Attempt) TaskID() kernel.UUID { return a.taskID }

// CourierID returns the courier side of the pair.
func (a *Attempt) CourierID() kernel.UUID { return a.courierID }

// Count returns the number of attempts registered so far.
func (a *Attempt) Count() int { return a.count }

// LastAttemptAt returns the time of the most recent attempt.
func (a *Attempt) LastAttemptAt() time.Time { return a.lastAttemptAt }

// Register records one more attempt.
func (a *Attempt) Register(at time.Time) {
	a.count++
	a.lastAttemptAt = at
}

// Exceeded reports whether the counter passed the budget.
func (a *Attempt) Exceeded() bool {
	return a.count > MaxAttempts
}

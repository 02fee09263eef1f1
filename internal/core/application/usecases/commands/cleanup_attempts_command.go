package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrCleanupAttemptsCommandIsNotConstructed is returned when a
// CleanupAttemptsCommand was not created via its constructor.
var ErrCleanupAttemptsCommandIsNotConstructed = errors.New(
	"CleanupAttemptsCommand must be created via NewCleanupAttemptsCommand constructor",
)

// CleanupAttemptsCommand represents a request to purge verification
// attempt records older than the retention window. Issued by the periodic
// cleanup job, never on a request path.
type CleanupAttemptsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCleanupAttemptsCommand creates a command to purge stale attempt
// records. The retention window must be positive.
func NewCleanupAttemptsCommand(olderThan time.Duration) (CleanupAttemptsCommand, error) {
	cleanupCommand := CleanupAttemptsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cleanupCommand.setOlderThan(olderThan); err != nil {
		return CleanupAttemptsCommand{}, err
	}

	return cleanupCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupAttemptsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupAttemptsCommandIsNotConstructed)
}

// OlderThan returns the retention window.
func (c CleanupAttemptsCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *CleanupAttemptsCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidError("olderThan")
	}

	c.olderThan = olderThan
	return nil
}

package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for the append-only
// balance ledger. Entries are inserted and never updated or deleted.
type LedgerRepository interface {
	// Add appends a new ledger entry.
	Add(ctx context.Context, entry *ledger.Entry) error

	// ExistsByTaskAndKind reports whether an entry of the given kind
	// already references the task. This is the idempotency check behind
	// the at-most-one-payout guarantee; call it inside the same
	// transaction that inserts the entry.
	ExistsByTaskAndKind(ctx context.Context, taskID kernel.UUID, kind ledger.Kind) (bool, error)
}

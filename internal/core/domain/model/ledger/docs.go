// Package ledger provides the append-only transaction log for courier
// balances. Every balance change is recorded as an immutable Entry written
// in the same transaction as the balance mutation; per (task, kind) pair at
// most one credit entry may ever exist.
package ledger

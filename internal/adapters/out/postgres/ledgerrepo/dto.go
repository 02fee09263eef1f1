// Package ledgerrepo persists balance ledger entries. Entries are
// append-only; the unique task/kind index backs idempotent payouts.
package ledgerrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/ledger"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting ledger entries.
type EntryDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CourierID uuid.UUID  `gorm:"type:uuid;index"`
	TaskID    *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_ledger_task_kind"`
	Kind      string     `gorm:"uniqueIndex:idx_ledger_task_kind"`
	Amount    int64
	Reference string
	CreatedAt time.Time
}

// TableName specifies the database table name for ledger entries.
func (EntryDTO) TableName() string {
	return "ledger_entries"
}

// fromDomain converts a ledger entry to its database representation.
func fromDomain(entry *ledger.Entry) EntryDTO {
	var taskID *uuid.UUID
	if entry.TaskID() != nil {
		id := entry.TaskID().Bytes()
		taskID = &id
	}

	return EntryDTO{
		ID:        entry.ID().Bytes(),
		CourierID: entry.CourierID().Bytes(),
		TaskID:    taskID,
		Kind:      entry.Kind().String(),
		Amount:    entry.Amount().Amount(),
		Reference: entry.Reference(),
		CreatedAt: entry.CreatedAt(),
	}
}

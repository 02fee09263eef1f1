package ledgerrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/ledger"

	"gorm.io/gorm"
)

// GormLedgerRepository implements LedgerRepository using GORM. Entries are
// append-only, so the repository never updates or deletes rows.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Add writes a new ledger entry.
func (r *GormLedgerRepository) Add(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// ExistsByTaskAndKind reports whether an entry of the given kind already
// references the task.
func (r *GormLedgerRepository) ExistsByTaskAndKind(
	ctx context.Context,
	taskID kernel.UUID,
	kind ledger.Kind,
) (bool, error) {
	if err := taskID.Validate(); err != nil {
		return false, err
	}
	if err := kind.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("task_id = ? AND kind = ?", taskID.Bytes(), kind.String()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

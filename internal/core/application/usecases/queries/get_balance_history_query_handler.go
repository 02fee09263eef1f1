package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// historyLimit caps a balance history page to the newest entries.
const historyLimit = 100

// GetBalanceHistoryQueryHandler reads a courier's ledger history.
// Access control happens here rather than in HTTP middleware so every
// transport gets the same rule: self or staff.
type GetBalanceHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetBalanceHistoryQueryHandler creates a handler for ledger history queries.
func NewGetBalanceHistoryQueryHandler(db *gorm.DB) GetBalanceHistoryQueryHandler {
	return GetBalanceHistoryQueryHandler{db: db}
}

// Handle executes the query.
// Returns at most the newest 100 entries, most recent first. Fails with
// Forbidden when a courier requests someone else's history.
func (h GetBalanceHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetBalanceHistoryQuery,
) ([]GetBalanceHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.RequesterRole().IsStaff() && !query.RequesterID().IsEqual(query.CourierID()) {
		return nil, errs.NewForbiddenError(
			query.RequesterID().String(),
			"read balance history of courier "+query.CourierID().String(),
		)
	}

	entries := make([]GetBalanceHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			task_id,
			kind,
			amount,
			reference,
			created_at
		FROM ledger_entries
		WHERE courier_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, query.CourierID().Bytes(), historyLimit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var taskIDRaw uuid.NullUUID
		var kind, reference string
		var amount int64
		var createdAt time.Time

		if err = rows.Scan(&id, &taskIDRaw, &kind, &amount, &reference, &createdAt); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		entry := GetBalanceHistoryQueryResponse{
			ID:        entryID,
			Kind:      kind,
			Amount:    amount,
			Reference: reference,
			CreatedAt: createdAt,
		}

		if taskIDRaw.Valid {
			taskID, tErr := kernel.UUIDFromBytes(taskIDRaw.UUID[:])
			if tErr != nil {
				return nil, tErr
			}
			entry.TaskID = &taskID
		}

		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

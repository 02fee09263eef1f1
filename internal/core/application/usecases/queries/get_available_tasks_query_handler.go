package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableTasksQueryHandler reads the claimable task pool from the
// database. Zero-fee orders never enter the pool.
type GetAvailableTasksQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableTasksQueryHandler creates a handler for available-task queries.
func NewGetAvailableTasksQueryHandler(db *gorm.DB) GetAvailableTasksQueryHandler {
	return GetAvailableTasksQueryHandler{db: db}
}

// Handle executes the query.
// Returns unassigned tasks with a positive fee, oldest first.
func (h GetAvailableTasksQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableTasksQuery,
) ([]GetAvailableTasksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tasks := make([]GetAvailableTasksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			address,
			latitude,
			longitude,
			fee
		FROM tasks
		WHERE status = ?
		  AND courier_id IS NULL
		  AND fee > 0
		ORDER BY created_at
	`, task.Available).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var address string
		var latitude, longitude float64
		var fee int64

		if err = rows.Scan(&id, &address, &latitude, &longitude, &fee); err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		location, locErr := kernel.NewLocation(latitude, longitude)
		if locErr != nil {
			return nil, locErr
		}

		tasks = append(tasks, GetAvailableTasksQueryResponse{
			ID:       taskID,
			Address:  address,
			Location: location,
			Fee:      fee,
		})
	}

	return tasks, rows.Err()
}

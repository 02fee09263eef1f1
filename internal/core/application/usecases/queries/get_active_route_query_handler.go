package queries

import (
	"context"
	"database/sql"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
	"fulfillment/internal/core/domain/model/task"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveRouteQueryHandler reads a courier's active route projection.
// Returns nil when the courier has no active route.
type GetActiveRouteQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveRouteQueryHandler creates a handler for active-route queries.
func NewGetActiveRouteQueryHandler(db *gorm.DB) GetActiveRouteQueryHandler {
	return GetActiveRouteQueryHandler{db: db}
}

// Handle executes the query.
// Follows the courier's active-route pointer and materializes the stops in
// stored order; the pointer is cleared on completion, so a non-nil result
// is always an in-progress route.
func (h GetActiveRouteQueryHandler) Handle(
	ctx context.Context,
	query GetActiveRouteQuery,
) (*GetActiveRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var routeIDRaw uuid.NullUUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT active_route_id FROM couriers WHERE id = ?
	`, query.CourierID().Bytes()).Row().Scan(&routeIDRaw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !routeIDRaw.Valid {
		return nil, nil
	}

	var completedStops, currentIndex int
	err = h.db.WithContext(ctx).Raw(`
		SELECT completed_stops, current_index
		FROM routes
		WHERE id = ? AND status = ?
	`, routeIDRaw.UUID, route.Active).Row().Scan(&completedStops, &currentIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(routeIDRaw.UUID[:])
	if err != nil {
		return nil, err
	}

	response := &GetActiveRouteQueryResponse{
		RouteID:        routeID,
		CompletedStops: completedStops,
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			rs.idx,
			rs.task_id,
			t.address,
			t.status
		FROM route_stops rs
		JOIN tasks t ON t.id = rs.task_id
		WHERE rs.route_id = ?
		ORDER BY rs.idx
	`, routeIDRaw.UUID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var idx, status int
		var taskIDRaw uuid.UUID
		var address string

		if err = rows.Scan(&idx, &taskIDRaw, &address, &status); err != nil {
			return nil, err
		}

		taskID, idErr := kernel.UUIDFromBytes(taskIDRaw[:])
		if idErr != nil {
			return nil, idErr
		}

		response.Stops = append(response.Stops, RouteStopResponse{
			TaskID:  taskID,
			Index:   idx,
			Address: address,
			Status:  task.Status(status).String(),
			Current: idx == currentIndex,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	response.TotalStops = len(response.Stops)
	return response, nil
}

// Package queries contains read-side operations of the CQRS split.
// Query handlers bypass the domain model and read projections straight
// from the database with raw SQL.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrGetAvailableTasksQueryIsNotConstructed is returned when a
// GetAvailableTasksQuery was not created via its constructor.
var ErrGetAvailableTasksQueryIsNotConstructed = errors.New(
	"GetAvailableTasksQuery must be created via NewGetAvailableTasksQuery constructor",
)

// GetAvailableTasksQuery retrieves the pool of claimable tasks: unassigned,
// carrying a positive fee, oldest first so the longest-waiting orders
// surface at the top of every courier's list.
//
// Example:
//
//	query := NewGetAvailableTasksQuery()
//	handler := NewGetAvailableTasksQueryHandler(db)
//
//	tasks, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get available tasks: %w", err)
//	}
//	fmt.Printf("%d tasks waiting for a courier\n", len(tasks))
type GetAvailableTasksQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableTasksQuery creates a query for the claimable task pool.
func NewGetAvailableTasksQuery() GetAvailableTasksQuery {
	return GetAvailableTasksQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableTasksQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableTasksQueryIsNotConstructed)
}

// GetAvailableTasksQueryResponse is one claimable task as shown to couriers.
type GetAvailableTasksQueryResponse struct {
	ID       kernel.UUID
	Address  string
	Location kernel.Location
	Fee      int64
}

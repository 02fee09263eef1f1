package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for route aggregates.
// Routes are created once and only their counters and status change.
type RouteRepository interface {
	// Add persists a new route aggregate.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists counter and status changes of an existing route.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
}

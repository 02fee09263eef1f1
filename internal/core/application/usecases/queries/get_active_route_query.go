package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

// ErrGetActiveRouteQueryIsNotConstructed is returned when a
// GetActiveRouteQuery was not created via its constructor.
var ErrGetActiveRouteQueryIsNotConstructed = errors.New(
	"GetActiveRouteQuery must be created via NewGetActiveRouteQuery constructor",
)

// GetActiveRouteQuery retrieves a courier's active multi-stop route, if
// any, with its stops in stored order.
type GetActiveRouteQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveRouteQuery creates a query for a courier's active route.
func NewGetActiveRouteQuery(courierID kernel.UUID) (GetActiveRouteQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetActiveRouteQuery{}, err
	}

	return GetActiveRouteQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveRouteQueryIsNotConstructed)
}

// CourierID returns the courier whose route is requested.
func (q GetActiveRouteQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetActiveRouteQueryResponse is a courier's active route with its stops.
type GetActiveRouteQueryResponse struct {
	RouteID        kernel.UUID
	CompletedStops int
	TotalStops     int
	Stops          []RouteStopResponse
}

// RouteStopResponse is one stop of an active route in visiting order.
type RouteStopResponse struct {
	TaskID  kernel.UUID
	Index   int
	Address string
	Status  string
	Current bool
}

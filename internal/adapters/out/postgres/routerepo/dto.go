// Package routerepo provides data transfer objects and mapping functions
// for route persistence. Stops live in their own table keyed by position,
// preserving the submitted visiting order.
package routerepo

import (
	"sort"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID      uuid.UUID `gorm:"type:uuid;index"`
	CompletedStops int
	CurrentIndex   int
	Status         int
	CompletedAt    *time.Time
	Stops          []RouteStopDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time      `gorm:"<-:create"`
	UpdatedAt      time.Time
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// RouteStopDTO represents one stop of a route at its fixed position.
type RouteStopDTO struct {
	RouteID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Idx     int       `gorm:"primaryKey"`
	TaskID  uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for route stops.
func (RouteStopDTO) TableName() string {
	return "route_stops"
}

// fromDomain converts a route domain aggregate to its database representation.
func fromDomain(aggregate *route.Route) RouteDTO {
	routeID := aggregate.ID().Bytes()
	stopIDs := aggregate.StopIDs()

	stops := make([]RouteStopDTO, 0, len(stopIDs))
	for i, stopID := range stopIDs {
		stops = append(stops, RouteStopDTO{
			RouteID: routeID,
			Idx:     i,
			TaskID:  stopID.Bytes(),
		})
	}

	return RouteDTO{
		ID:             routeID,
		CourierID:      aggregate.CourierID().Bytes(),
		CompletedStops: aggregate.CompletedStops(),
		CurrentIndex:   aggregate.CurrentIndex(),
		Status:         int(aggregate.Status()),
		CompletedAt:    aggregate.CompletedAt(),
		Stops:          stops,
	}
}

// toDomain converts a database DTO to a route domain aggregate.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Stops, func(i, j int) bool {
		return dto.Stops[i].Idx < dto.Stops[j].Idx
	})

	stopIDs := make([]kernel.UUID, 0, len(dto.Stops))
	for _, stop := range dto.Stops {
		stopID, sErr := kernel.UUIDFromBytes(stop.TaskID[:])
		if sErr != nil {
			return nil, sErr
		}
		stopIDs = append(stopIDs, stopID)
	}

	return route.RestoreRoute(
		id,
		courierID,
		stopIDs,
		dto.CompletedStops,
		dto.CurrentIndex,
		route.Status(dto.Status),
		dto.CompletedAt,
	)
}

// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. The couriers table carries the earned balance,
// the active-route pointer, and the lifetime delivery counter.
package courierrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/courier"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
type CourierDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string
	Phone               string
	Balance             int64
	ActiveRouteID       *uuid.UUID `gorm:"type:uuid"`
	CompletedDeliveries int
	CreatedAt           time.Time `gorm:"<-:create"`
	UpdatedAt           time.Time
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	var activeRouteID *uuid.UUID
	if id := aggregate.ActiveRouteID(); id != nil {
		raw := id.Bytes()
		activeRouteID = &raw
	}

	return CourierDTO{
		ID:                  aggregate.ID().Bytes(),
		Name:                aggregate.Name(),
		Phone:               aggregate.Phone(),
		Balance:             aggregate.Balance().Amount(),
		ActiveRouteID:       activeRouteID,
		CompletedDeliveries: aggregate.CompletedDeliveries(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var activeRouteID *kernel.UUID
	if dto.ActiveRouteID != nil {
		rID, rErr := kernel.UUIDFromBytes((*dto.ActiveRouteID)[:])
		if rErr != nil {
			return nil, rErr
		}
		activeRouteID = &rID
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		dto.Phone,
		kernel.NewMoney(dto.Balance),
		activeRouteID,
		dto.CompletedDeliveries,
	)
}

// Package taskrepo provides data transfer objects and mapping functions
// for task persistence. The tasks table carries the full delivery
// lifecycle state: assignment, timestamps, the outstanding code, and
// route membership.
package taskrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/task"

	"github.com/google/uuid"
)

// TaskDTO represents the database structure for persisting task aggregates.
type TaskDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Status        int        `gorm:"index"`
	CourierID     *uuid.UUID `gorm:"type:uuid;index"`
	Fee           int64
	Address       string
	Latitude      float64
	Longitude     float64
	CustomerPhone string
	AcceptedAt    *time.Time
	PickedUpAt    *time.Time
	Code          *string
	RouteID       *uuid.UUID `gorm:"type:uuid;index"`
	RouteIndex    *int
	Items         []TaskItemDTO `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time     `gorm:"<-:create"`
	UpdatedAt     time.Time
}

// TableName specifies the database table name for task entities.
func (TaskDTO) TableName() string {
	return "tasks"
}

// TaskItemDTO represents one display-only line of a task's contents.
type TaskItemDTO struct {
	TaskID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Idx      int       `gorm:"primaryKey"`
	Name     string
	Quantity int
}

// TableName specifies the database table name for task item lines.
func (TaskItemDTO) TableName() string {
	return "task_items"
}

// fromDomain converts a task domain aggregate to its database representation.
func fromDomain(aggregate *task.Task) TaskDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var routeID *uuid.UUID
	if id := aggregate.RouteID(); id != nil {
		raw := id.Bytes()
		routeID = &raw
	}

	var code *string
	if c := aggregate.Code(); c != nil {
		value := c.Value()
		code = &value
	}

	taskID := aggregate.ID().Bytes()
	items := make([]TaskItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, TaskItemDTO{
			TaskID:   taskID,
			Idx:      i,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	return TaskDTO{
		ID:            taskID,
		Status:        int(aggregate.Status()),
		CourierID:     courierID,
		Fee:           aggregate.Fee().Amount(),
		Address:       aggregate.Address(),
		Latitude:      aggregate.Location().Latitude(),
		Longitude:     aggregate.Location().Longitude(),
		CustomerPhone: aggregate.CustomerPhone(),
		AcceptedAt:    aggregate.AcceptedAt(),
		PickedUpAt:    aggregate.PickedUpAt(),
		Code:          code,
		RouteID:       routeID,
		RouteIndex:    aggregate.RouteIndex(),
		Items:         items,
	}
}

// toDomain converts a database DTO to a task domain aggregate.
func toDomain(dto TaskDTO) (*task.Task, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewLocation(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if cErr != nil {
			return nil, cErr
		}
		courierID = &cID
	}

	var routeID *kernel.UUID
	if dto.RouteID != nil {
		rID, rErr := kernel.UUIDFromBytes((*dto.RouteID)[:])
		if rErr != nil {
			return nil, rErr
		}
		routeID = &rID
	}

	var code *task.DeliveryCode
	if dto.Code != nil {
		c, cErr := task.NewDeliveryCode(*dto.Code)
		if cErr != nil {
			return nil, cErr
		}
		code = &c
	}

	items := make([]task.Item, len(dto.Items))
	for _, item := range dto.Items {
		items[item.Idx] = task.Item{Name: item.Name, Quantity: item.Quantity}
	}

	return task.RestoreTask(
		id,
		task.Status(dto.Status),
		courierID,
		dto.Address,
		location,
		dto.CustomerPhone,
		kernel.NewMoney(dto.Fee),
		items,
		dto.AcceptedAt,
		dto.PickedUpAt,
		code,
		routeID,
		dto.RouteIndex,
	)
}

// Package attemptrepo persists delivery code attempt counters. One row
// exists per task/courier pair and is upserted on every verification.
package attemptrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/attempt"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AttemptDTO represents the database structure for attempt counters.
type AttemptDTO struct {
	TaskID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Count         int
	LastAttemptAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for attempt counters.
func (AttemptDTO) TableName() string {
	return "code_attempts"
}

// fromDomain converts an attempt counter to its database representation.
func fromDomain(aggregate *attempt.Attempt) AttemptDTO {
	return AttemptDTO{
		TaskID:        aggregate.TaskID().Bytes(),
		CourierID:     aggregate.CourierID().Bytes(),
		Count:         aggregate.Count(),
		LastAttemptAt: aggregate.LastAttemptAt(),
	}
}

// toDomain converts a database DTO to an attempt counter.
func toDomain(dto AttemptDTO) (*attempt.Attempt, error) {
	taskID, err := kernel.UUIDFromBytes(dto.TaskID[:])
	if err != nil {
		return nil, err
	}

	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	return attempt.RestoreAttempt(taskID, courierID, dto.Count, dto.LastAttemptAt)
}

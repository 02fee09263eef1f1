// Package audit persists audit events to the database. The audit trail is
// a side channel: writes happen outside business transactions and a failed
// write never fails the operation that produced the event.
package audit

import (
	"context"
	"time"

	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventDTO represents the database structure for persisting audit events.
type EventDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"index"`
	TaskID     *uuid.UUID `gorm:"type:uuid;index"`
	CourierID  *uuid.UUID `gorm:"type:uuid;index"`
	Amount     int64
	Detail     string
	OccurredAt time.Time `gorm:"index"`
	CreatedAt  time.Time
}

// TableName specifies the database table name for audit events.
func (EventDTO) TableName() string {
	return "audit_events"
}

// GormAuditSink writes audit events to the audit_events table.
type GormAuditSink struct {
	db *gorm.DB
}

// NewGormAuditSink creates a database-backed audit sink.
func NewGormAuditSink(db *gorm.DB) *GormAuditSink {
	return &GormAuditSink{db: db}
}

// Record writes a single audit event.
func (s *GormAuditSink) Record(ctx context.Context, event ports.AuditEvent) error {
	dto := EventDTO{
		ID:         uuid.New(),
		Name:       event.Name,
		Amount:     event.Amount,
		Detail:     event.Detail,
		OccurredAt: event.OccurredAt,
	}

	if event.TaskID != nil {
		id := event.TaskID.Bytes()
		dto.TaskID = &id
	}
	if event.CourierID != nil {
		id := event.CourierID.Bytes()
		dto.CourierID = &id
	}

	return s.db.WithContext(ctx).Create(&dto).Error
}

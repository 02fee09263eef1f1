package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// AuditEvent is an immutable record of a state transition that the
// engine wants remembered. Events are best-effort side channel data and
// never participate in business transactions.
type AuditEvent struct {
	// Name identifies the transition, e.g. "task.claimed" or "ledger.credited".
	Name string

	// TaskID references the affected task when the event concerns one.
	TaskID *kernel.UUID

	// CourierID references the acting or affected courier when known.
	CourierID *kernel.UUID

	// Amount carries the money movement for ledger events, zero otherwise.
	Amount int64

	// Detail carries event-specific payload, e.g. the delivery code for
	// pickup notifications or a cancel reason.
	Detail string

	// Phone is the customer phone to notify, with Detail as the message.
	// Events without a phone are audit-only and never reach the
	// notification sink.
	Phone string

	// OccurredAt is when the transition happened.
	OccurredAt time.Time
}

// AuditSink records audit events durably. Implementations must tolerate
// being called concurrently.
type AuditSink interface {
	Record(ctx context.Context, event AuditEvent) error
}

// NotificationSink delivers a human-facing notification about an event.
// Delivery is best effort.
type NotificationSink interface {
	Notify(ctx context.Context, event AuditEvent) error
}

// Observer accepts events from command handlers and fans them out to the
// configured sinks asynchronously. Publish never blocks the caller and
// never returns an error: a full queue drops the event.
type Observer interface {
	Publish(event AuditEvent)
}

// Package observer fans out audit events to the configured sinks on a
// background goroutine so command handlers never wait on side channels.
package observer

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fulfillment/internal/core/ports"
)

// sinkTimeout bounds a single sink call so one slow sink cannot stall the
// dispatch loop indefinitely.
const sinkTimeout = 10 * time.Second

// Dispatcher queues events and delivers them in order of arrival: every
// event reaches the audit sink, and events carrying a customer phone also
// reach the notification sink. A full queue drops the newest event rather
// than blocking the publishing command handler.
type Dispatcher struct {
	queue         chan ports.AuditEvent
	audit         ports.AuditSink
	notifications ports.NotificationSink
	logger        *slog.Logger

	mu      sync.RWMutex
	stopped bool
	done    chan struct{}
}

// NewDispatcher creates a dispatcher with the given queue capacity and
// starts its delivery goroutine. Either sink may be nil to disable it.
func NewDispatcher(
	queueSize int,
	auditSink ports.AuditSink,
	notificationSink ports.NotificationSink,
	logger *slog.Logger,
) *Dispatcher {
	d := &Dispatcher{
		queue:         make(chan ports.AuditEvent, queueSize),
		audit:         auditSink,
		notifications: notificationSink,
		logger:        logger.With("component", "event_dispatcher"),
		done:          make(chan struct{}),
	}

	go d.run()
	return d
}

// Publish enqueues an event for delivery. Never blocks: when the queue is
// full the event is dropped and logged.
func (d *Dispatcher) Publish(event ports.AuditEvent) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		return
	}

	select {
	case d.queue <- event:
	default:
		d.logger.Warn("Event queue full, dropping event",
			"event", event.Name)
	}
}

// Stop drains the queue and waits for the delivery goroutine to finish.
// Events published after Stop are dropped.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for event := range d.queue {
		d.deliver(event)
	}
}

func (d *Dispatcher) deliver(event ports.AuditEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
	defer cancel()

	if d.audit != nil {
		if err := d.audit.Record(ctx, event); err != nil {
			d.logger.ErrorContext(ctx, "Failed to record audit event",
				"event", event.Name, "error", err)
		}
	}

	if d.notifications != nil && event.Phone != "" {
		if err := d.notifications.Notify(ctx, event); err != nil {
			d.logger.ErrorContext(ctx, "Failed to deliver notification",
				"event", event.Name, "error", err)
		}
	}
}

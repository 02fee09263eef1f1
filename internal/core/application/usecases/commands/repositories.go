// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence, with audit events published after commit.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TaskRepoFactory provides access to the task repository within a transaction.
	TaskRepoFactory interface {
		TaskRepository() ports.TaskRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// AttemptRepoFactory provides access to the attempt repository within a transaction.
	AttemptRepoFactory interface {
		AttemptRepository() ports.AttemptRepository
	}

	// TaskUoW manages transactions for task-only operations.
	TaskUoW interface {
		TxManager
		TaskRepoFactory
	}

	// TaskUoWFactory creates new task unit of work instances.
	TaskUoWFactory interface {
		Create() TaskUoW
	}

	// TaskCourierUoW manages transactions spanning task and courier aggregates.
	TaskCourierUoW interface {
		TxManager
		TaskRepoFactory
		CourierRepoFactory
	}

	// TaskCourierUoWFactory creates new task+courier unit of work instances.
	TaskCourierUoWFactory interface {
		Create() TaskCourierUoW
	}

	// TaskAttemptUoW manages transactions spanning tasks and their
	// verification attempt records.
	TaskAttemptUoW interface {
		TxManager
		TaskRepoFactory
		AttemptRepoFactory
	}

	// TaskAttemptUoWFactory creates new task+attempt unit of work instances.
	TaskAttemptUoWFactory interface {
		Create() TaskAttemptUoW
	}

	// RouteUoW manages transactions for route creation, which touches
	// the route, its stop tasks, and the owning courier.
	RouteUoW interface {
		TxManager
		TaskRepoFactory
		CourierRepoFactory
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// LedgerUoW manages transactions for balance movements: the ledger
	// entry and the courier balance change commit or roll back together.
	LedgerUoW interface {
		TxManager
		TaskRepoFactory
		CourierRepoFactory
		LedgerRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// AttemptUoW manages transactions for attempt-record maintenance.
	AttemptUoW interface {
		TxManager
		AttemptRepoFactory
	}

	// AttemptUoWFactory creates new attempt unit of work instances.
	AttemptUoWFactory interface {
		Create() AttemptUoW
	}

	// UoW manages transactions across every aggregate the delivery
	// confirmation flow touches: task, courier, route, ledger, attempts.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   taskRepo := uow.TaskRepository()
	//   ledgerRepo := uow.LedgerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		TaskRepoFactory
		CourierRepoFactory
		RouteRepoFactory
		LedgerRepoFactory
		AttemptRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

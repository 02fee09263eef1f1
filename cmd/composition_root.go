package cmd

import (
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	observer   ports.Observer
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, observer ports.Observer) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		observer:   observer,
	}
}

func (c *CompositionRoot) CreateClaimTaskCommandHandler() commands.ClaimTaskCommandHandler {
	var f commands.TaskCourierUoWFactory = FuncTaskCourierUoWFactory(func() commands.TaskCourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimTaskCommandHandler(f, c.observer)
}

func (c *CompositionRoot) CreatePickupTaskCommandHandler() commands.PickupTaskCommandHandler {
	var f commands.TaskUoWFactory = FuncTaskUoWFactory(func() commands.TaskUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickupTaskCommandHandler(f, c.observer)
}

func (c *CompositionRoot) CreateCancelTaskCommandHandler() commands.CancelTaskCommandHandler {
	var f commands.TaskAttemptUoWFactory = FuncTaskAttemptUoWFactory(func() commands.TaskAttemptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelTaskCommandHandler(f, c.observer)
}

func (c *CompositionRoot) CreateDeliverTaskCommandHandler() commands.DeliverTaskCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeliverTaskCommandHandler(f, c.observer)
}

func (c *CompositionRoot) CreateStartRouteCommandHandler() commands.StartRouteCommandHandler {
	var f commands.RouteUoWFactory = FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartRouteCommandHandler(f, c.observer)
}

func (c *CompositionRoot) CreateCreditDeliveryCommandHandler() commands.CreditDeliveryCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreditDeliveryCommandHandler(f, c.observer)
}

func (c *CompositionRoot) CreateCreditCashCollectionCommandHandler() commands.CreditCashCollectionCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreditCashCollectionCommandHandler(f, c.observer)
}

func (c *CompositionRoot) CreateDebitAdminPaymentCommandHandler() commands.DebitAdminPaymentCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDebitAdminPaymentCommandHandler(f, c.observer)
}

func (c *CompositionRoot) CreateCleanupAttemptsCommandHandler() commands.CleanupAttemptsCommandHandler {
	var f commands.AttemptUoWFactory = FuncAttemptUoWFactory(func() commands.AttemptUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCleanupAttemptsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAvailableTasksQueryHandler() queries.GetAvailableTasksQueryHandler {
	return queries.NewGetAvailableTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveRouteQueryHandler() queries.GetActiveRouteQueryHandler {
	return queries.NewGetActiveRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBalanceHistoryQueryHandler() queries.GetBalanceHistoryQueryHandler {
	return queries.NewGetBalanceHistoryQueryHandler(c.gormDB)
}

type FuncTaskUoWFactory func() commands.TaskUoW

func (f FuncTaskUoWFactory) Create() commands.TaskUoW {
	return f()
}

type FuncTaskCourierUoWFactory func() commands.TaskCourierUoW

func (f FuncTaskCourierUoWFactory) Create() commands.TaskCourierUoW {
	return f()
}

type FuncTaskAttemptUoWFactory func() commands.TaskAttemptUoW

func (f FuncTaskAttemptUoWFactory) Create() commands.TaskAttemptUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncAttemptUoWFactory func() commands.AttemptUoW

func (f FuncAttemptUoWFactory) Create() commands.AttemptUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

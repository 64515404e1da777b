package cmd

import (
	"refillstation/internal/adapters/out/postgres"
	"refillstation/internal/core/application/usecases/commands"
	"refillstation/internal/core/application/usecases/queries"
	"refillstation/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      clock.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystem(),
	}
}

func (c *CompositionRoot) Clock() clock.Clock {
	return c.clock
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateCreateWalkInOrderCommandHandler() commands.CreateWalkInOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateWalkInOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateSetWebsiteStatusCommandHandler() commands.SetWebsiteStatusCommandHandler {
	var f commands.GateUoWFactory = FuncGateUoWFactory(func() commands.GateUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetWebsiteStatusCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMonthlySalesQueryHandler() queries.GetMonthlySalesQueryHandler {
	return queries.NewGetMonthlySalesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTopCustomersQueryHandler() queries.GetTopCustomersQueryHandler {
	return queries.NewGetTopCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWebsiteStatusQueryHandler() queries.GetWebsiteStatusQueryHandler {
	return queries.NewGetWebsiteStatusQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncGateUoWFactory func() commands.GateUoW

func (f FuncGateUoWFactory) Create() commands.GateUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

package cmd

import (
	"log/slog"

	"posdelivery/internal/adapters/out/notify"
	"posdelivery/internal/adapters/out/postgres"
	"posdelivery/internal/core/application/usecases/commands"
	"posdelivery/internal/core/application/usecases/queries"
	"posdelivery/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sequence   *postgres.GormSequenceGenerator
	notifier   ports.Notifier
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sequence:   postgres.NewGormSequenceGenerator(gormDB),
		notifier:   notify.NewSlogNotifier(logger),
	}
}

func (c *CompositionRoot) CreateCreateDeliveryOrderCommandHandler() commands.CreateDeliveryOrderCommandHandler {
	var f commands.CreateOrderUoWFactory = FuncCreateOrderUoWFactory(func() commands.CreateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryOrderCommandHandler(f, c.sequence)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateUpdateDeliveryOrderCommandHandler() commands.UpdateDeliveryOrderCommandHandler {
	var f commands.UpdateOrderUoWFactory = FuncUpdateOrderUoWFactory(func() commands.UpdateOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateRateDeliveryCommandHandler() commands.RateDeliveryCommandHandler {
	return commands.NewRateDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateLocationCommandHandler() commands.UpdateLocationCommandHandler {
	return commands.NewUpdateLocationCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartTransitCommandHandler() commands.StartTransitCommandHandler {
	return commands.NewStartTransitCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.CompleteUoWFactory = FuncCompleteUoWFactory(func() commands.CompleteUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreateFailDeliveryCommandHandler() commands.FailDeliveryCommandHandler {
	return commands.NewFailDeliveryCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateResetDeliveryCommandHandler() commands.ResetDeliveryCommandHandler {
	return commands.NewResetDeliveryCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateAddCommentCommandHandler() commands.AddCommentCommandHandler {
	return commands.NewAddCommentCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.courierSessionUoWFactory())
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateValidateTokenCommandHandler() commands.ValidateTokenCommandHandler {
	return commands.NewValidateTokenCommandHandler(c.courierSessionUoWFactory())
}

func (c *CompositionRoot) CreateCleanupSessionsCommandHandler() commands.CleanupSessionsCommandHandler {
	return commands.NewCleanupSessionsCommandHandler(c.sessionUoWFactory())
}

func (c *CompositionRoot) CreateGetCourierOrdersQueryHandler() queries.GetCourierOrdersQueryHandler {
	return queries.NewGetCourierOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailQueryHandler() queries.GetOrderDetailQueryHandler {
	return queries.NewGetOrderDetailQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSettlementReportQueryHandler() queries.SettlementReportQueryHandler {
	return queries.NewSettlementReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierSessionUoWFactory() commands.CourierSessionUoWFactory {
	return FuncCourierSessionUoWFactory(func() commands.CourierSessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCreateOrderUoWFactory func() commands.CreateOrderUoW

func (f FuncCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	return f()
}

type FuncUpdateOrderUoWFactory func() commands.UpdateOrderUoW

func (f FuncUpdateOrderUoWFactory) Create() commands.UpdateOrderUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncCompleteUoWFactory func() commands.CompleteUoW

func (f FuncCompleteUoWFactory) Create() commands.CompleteUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncCourierSessionUoWFactory func() commands.CourierSessionUoW

func (f FuncCourierSessionUoWFactory) Create() commands.CourierSessionUoW {
	return f()
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

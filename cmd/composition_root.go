package cmd

import (
	"log/slog"
	"os"

	adapterhttp "foodorder/internal/adapters/in/http"
	"foodorder/internal/adapters/out/postgres"
	"foodorder/internal/adapters/out/serviceclients"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters to use cases. All dependency decisions of
// the application live here.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	paymentClient      *serviceclients.HTTPPaymentClient
	inventoryClient    *serviceclients.HTTPInventoryClient
	notificationClient *serviceclients.HTTPNotificationClient
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,

		paymentClient:      serviceclients.NewHTTPPaymentClient(configs.PaymentServiceURL, logger),
		inventoryClient:    serviceclients.NewHTTPInventoryClient(configs.InventoryServiceURL, logger),
		notificationClient: serviceclients.NewHTTPNotificationClient(configs.NotificationServiceURL, logger),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(), c.paymentClient, c.inventoryClient, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(
		c.orderUoWFactory(), c.notificationClient, c.logger)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.CreateUpdateOrderStatusCommandHandler())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerQueryHandler() queries.GetOrdersByCustomerQueryHandler {
	return queries.NewGetOrdersByCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByMerchantQueryHandler() queries.GetOrdersByMerchantQueryHandler {
	return queries.NewGetOrdersByMerchantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailyOrderCountQueryHandler() queries.GetDailyOrderCountQueryHandler {
	return queries.NewGetDailyOrderCountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetOrdersByCustomerQueryHandler(),
		c.CreateGetOrdersByMerchantQueryHandler(),
		c.CreateGetDailyOrderCountQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateDailyStatsJob() *jobs.DailyStatsJob {
	return jobs.NewDailyStatsJob(c.CreateGetDailyOrderCountQueryHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

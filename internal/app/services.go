package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/erp-backend/internal/data/aggregates"
	"github.com/yungbote/erp-backend/internal/observability"
	"github.com/yungbote/erp-backend/internal/platform/logger"
	"github.com/yungbote/erp-backend/internal/services"
)

type Services struct {
	Events               services.ChangePublisher
	Customer             services.CustomerService
	Product              services.ProductService
	Order                services.OrderService
	FinancialTransaction services.FinancialTransactionService
}

func wireServices(db *gorm.DB, log *logger.Logger, repoSet Repos, clients Clients, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")

	events := services.NewChangePublisher(clients.Events, log, metrics)
	orderAggregate := aggregates.NewOrderAggregate(aggregates.OrderAggregateDeps{
		Base: aggregates.BaseDeps{
			DB:    db,
			Log:   log,
			Hooks: aggregates.NewObservabilityHooks(metrics),
		},
		Orders:    repoSet.Order,
		LineItems: repoSet.OrderProduct,
	})

	return Services{
		Events:               events,
		Customer:             services.NewCustomerService(db, log, repoSet.Customer, events),
		Product:              services.NewProductService(db, log, repoSet.Product, events),
		Order:                services.NewOrderService(log, repoSet.Order, orderAggregate, events),
		FinancialTransaction: services.NewFinancialTransactionService(db, log, repoSet.FinancialTransaction, events),
	}
}

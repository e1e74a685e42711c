package app

import (
	"github.com/yungbote/erp-backend/internal/data/db"
	"github.com/yungbote/erp-backend/internal/http"
	httpH "github.com/yungbote/erp-backend/internal/http/handlers"
	"github.com/yungbote/erp-backend/internal/observability"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

type Handlers struct {
	Health               *httpH.HealthHandler
	Customer             *httpH.CustomerHandler
	Product              *httpH.ProductHandler
	Order                *httpH.OrderHandler
	FinancialTransaction *httpH.FinancialTransactionHandler
}

func wireHandlers(log *logger.Logger, store *db.PostgresService, serviceSet Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:               httpH.NewHealthHandler(store),
		Customer:             httpH.NewCustomerHandler(serviceSet.Customer),
		Product:              httpH.NewProductHandler(serviceSet.Product),
		Order:                httpH.NewOrderHandler(serviceSet.Order),
		FinancialTransaction: httpH.NewFinancialTransactionHandler(serviceSet.FinancialTransaction),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *http.Server {
	tracing := ""
	if cfg.OTel.Enabled {
		tracing = cfg.OTel.ServiceName
	}
	return http.NewServer(http.RouterConfig{
		Log:                         log,
		Metrics:                     metrics,
		TracingService:              tracing,
		CORSOrigins:                 cfg.CORSOrigins,
		CustomerHandler:             handlers.Customer,
		ProductHandler:              handlers.Product,
		OrderHandler:                handlers.Order,
		FinancialTransactionHandler: handlers.FinancialTransaction,
		HealthHandler:               handlers.Health,
	})
}

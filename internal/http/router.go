package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/erp-backend/internal/http/handlers"
	httpMW "github.com/yungbote/erp-backend/internal/http/middleware"
	"github.com/yungbote/erp-backend/internal/observability"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log     *logger.Logger
	Metrics *observability.Metrics

	// TracingService names the otelgin middleware; empty disables it.
	TracingService string
	CORSOrigins    []string

	CustomerHandler             *httpH.CustomerHandler
	ProductHandler              *httpH.ProductHandler
	OrderHandler                *httpH.OrderHandler
	FinancialTransactionHandler *httpH.FinancialTransactionHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Customers
		if cfg.CustomerHandler != nil {
			api.GET("/customers", cfg.CustomerHandler.List)
			api.POST("/customers", cfg.CustomerHandler.Create)
			api.GET("/customers/:id", cfg.CustomerHandler.Get)
			api.PUT("/customers/:id", cfg.CustomerHandler.Update)
			api.DELETE("/customers/:id", cfg.CustomerHandler.Delete)
		}

		// Products
		if cfg.ProductHandler != nil {
			api.GET("/products", cfg.ProductHandler.List)
			api.POST("/products", cfg.ProductHandler.Create)
			api.GET("/products/:id", cfg.ProductHandler.Get)
			api.PUT("/products/:id", cfg.ProductHandler.Update)
			api.DELETE("/products/:id", cfg.ProductHandler.Delete)
		}

		// Orders
		if cfg.OrderHandler != nil {
			api.GET("/orders", cfg.OrderHandler.List)
			api.POST("/orders", cfg.OrderHandler.Create)
			api.GET("/orders/:id", cfg.OrderHandler.Get)
			api.PUT("/orders/:id", cfg.OrderHandler.Update)
			api.DELETE("/orders/:id", cfg.OrderHandler.Delete)
		}

		// Financial transactions
		if cfg.FinancialTransactionHandler != nil {
			api.GET("/financial-transactions", cfg.FinancialTransactionHandler.List)
			api.POST("/financial-transactions", cfg.FinancialTransactionHandler.Create)
			api.GET("/financial-transactions/:id", cfg.FinancialTransactionHandler.Get)
			api.PUT("/financial-transactions/:id", cfg.FinancialTransactionHandler.Update)
			api.DELETE("/financial-transactions/:id", cfg.FinancialTransactionHandler.Delete)
		}
	}

	return r
}

package services

import (
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/erp-backend/internal/data/aggregates"
	"github.com/yungbote/erp-backend/internal/data/repos"
	"github.com/yungbote/erp-backend/internal/data/repos/testutil"
	"github.com/yungbote/erp-backend/internal/observability"
	"github.com/yungbote/erp-backend/internal/realtime/bus"
)

type storeFixture struct {
	db        *gorm.DB
	bus       *bus.MemoryBus
	metrics   *observability.Metrics
	customers CustomerService
	products  ProductService
	orders    OrderService
	txns      FinancialTransactionService
}

// newStoreFixture wires every service against one rolled-back transaction.
func newStoreFixture(t *testing.T) storeFixture {
	t.Helper()
	tx := testutil.Tx(t, testutil.DB(t))
	log := testutil.Logger(t)
	memBus := bus.NewMemoryBus()
	metrics := observability.New()
	events := NewChangePublisher(memBus, log, metrics)

	orderRepo := repos.NewOrderRepo(tx, log)
	agg := aggregates.NewOrderAggregate(aggregates.OrderAggregateDeps{
		Base:      aggregates.BaseDeps{DB: tx, Log: log, Hooks: aggregates.NewObservabilityHooks(metrics)},
		Orders:    orderRepo,
		LineItems: repos.NewOrderProductRepo(tx, log),
	})

	return storeFixture{
		db:        tx,
		bus:       memBus,
		metrics:   metrics,
		customers: NewCustomerService(tx, log, repos.NewCustomerRepo(tx, log), events),
		products:  NewProductService(tx, log, repos.NewProductRepo(tx, log), events),
		orders:    NewOrderService(log, orderRepo, agg, events),
		txns:      NewFinancialTransactionService(tx, log, repos.NewFinancialTransactionRepo(tx, log), events),
	}
}

func (f storeFixture) count(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

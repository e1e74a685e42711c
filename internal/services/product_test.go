package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainagg "github.com/yungbote/erp-backend/internal/domain/aggregates"
	"github.com/yungbote/erp-backend/internal/dto"
)

func TestProductServiceCRUD(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	created, err := f.products.Create(ctx, dto.Product{
		Name:          "Widget",
		Description:   "blue",
		Price:         decimal.RequireFromString("9.99"),
		StockQuantity: 10,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ProductID)

	created.Price = decimal.RequireFromString("12.00")
	ok, err := f.products.Update(ctx, *created)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.products.Get(ctx, created.ProductID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("12")))
	assert.Equal(t, 10, got.StockQuantity)

	ok, err = f.products.Update(ctx, dto.Product{ProductID: created.ProductID + 100})
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.products.Delete(ctx, created.ProductID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.products.Delete(ctx, created.ProductID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProductServiceDeleteReferencedIsConflict(t *testing.T) {
	f := newStoreFixture(t)
	ctx := context.Background()

	p, err := f.products.Create(ctx, dto.Product{Name: "Gear", Price: decimal.RequireFromString("1.00")})
	require.NoError(t, err)
	_, err = f.orders.Create(ctx, dto.Order{
		CustomerID: 1,
		OrderDate:  time.Now().UTC(),
		Products:   []dto.OrderLine{{ProductID: p.ProductID, Price: p.Price, Quantity: 1}},
	})
	require.NoError(t, err)

	// stays last: Postgres aborts the surrounding transaction on the violation
	ok, err := f.products.Delete(ctx, p.ProductID)
	assert.False(t, ok)
	assert.True(t, domainagg.IsCode(err, domainagg.CodePersistenceConflict), "err=%v", err)
}

package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/erp-backend/internal/domain"
	"github.com/yungbote/erp-backend/internal/domain/sales"
)

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *types.Customer {
	tb.Helper()
	c := &types.Customer{
		Name:        name,
		Email:       name + "@example.com",
		Address:     "1 Main St",
		PhoneNumber: "555-0100",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name, price string) *types.Product {
	tb.Helper()
	p := &types.Product{
		Name:          name,
		Description:   name + " description",
		Price:         decimal.RequireFromString(price),
		StockQuantity: 100,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

// SeedOrder writes the header and line items directly, bypassing total computation.
func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, customerID int64, lines []types.PricedLine) *types.Order {
	tb.Helper()
	o := &types.Order{
		CustomerID:  customerID,
		OrderDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount: sales.TotalAmount(lines),
	}
	if err := tx.WithContext(ctx).Omit(clause.Associations).Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	items := sales.BuildLineItems(o.ID, lines)
	if len(items) > 0 {
		if err := tx.WithContext(ctx).Omit(clause.Associations).Create(&items).Error; err != nil {
			tb.Fatalf("seed order lines: %v", err)
		}
	}
	o.LineItems = items
	return o
}

func SeedFinancialTransaction(tb testing.TB, ctx context.Context, tx *gorm.DB, orderID int64, kind, amount string) *types.FinancialTransaction {
	tb.Helper()
	ft := &types.FinancialTransaction{
		OrderID:         orderID,
		TransactionDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		TransactionType: kind,
		Amount:          decimal.RequireFromString(amount),
	}
	if err := tx.WithContext(ctx).Create(ft).Error; err != nil {
		tb.Fatalf("seed financial transaction: %v", err)
	}
	return ft
}

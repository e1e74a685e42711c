package domain

import (
	"github.com/yungbote/erp-backend/internal/domain/finance"
	"github.com/yungbote/erp-backend/internal/domain/sales"
)

type Customer = sales.Customer
type Product = sales.Product
type Order = sales.Order
type OrderProduct = sales.OrderProduct
type PricedLine = sales.PricedLine

type FinancialTransaction = finance.FinancialTransaction

// Models lists every persisted model in migration order.
func Models() []interface{} {
	return []interface{}{
		&Customer{},
		&Product{},
		&Order{},
		&OrderProduct{},
		&FinancialTransaction{},
	}
}

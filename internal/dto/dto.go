// Package dto holds the request/response shapes of the public API.
// Money fields are decimal strings on output and accept strings or numbers on input.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	CustomerID  int64  `json:"customer_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}

type Product struct {
	ProductID     int64           `json:"product_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
}

// OrderLine is one product inside an order. On writes only ProductID,
// Price and Quantity are read; Name and Description are filled on reads.
type OrderLine struct {
	ProductID   int64           `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Order.TotalAmount is computed by the server; any value sent in is ignored.
type Order struct {
	OrderID     int64           `json:"order_id"`
	CustomerID  int64           `json:"customer_id"`
	OrderDate   time.Time       `json:"order_date"`
	Products    []OrderLine     `json:"products"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type FinancialTransaction struct {
	TransactionID   int64           `json:"transaction_id"`
	OrderID         int64           `json:"order_id"`
	TransactionDate time.Time       `json:"transaction_date"`
	TransactionType string          `json:"transaction_type"`
	Amount          decimal.Decimal `json:"amount"`
}

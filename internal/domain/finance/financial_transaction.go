package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialTransaction references an order by id only; there is no foreign key
// and no referential action when the order goes away.
type FinancialTransaction struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         int64           `gorm:"column:order_id;not null;index" json:"order_id"`
	TransactionDate time.Time       `gorm:"column:transaction_date;not null" json:"transaction_date"`
	TransactionType string          `gorm:"column:transaction_type" json:"transaction_type"`
	Amount          decimal.Decimal `gorm:"column:amount;type:numeric(18,2);not null;default:0" json:"amount"`
	CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

func (FinancialTransaction) TableName() string { return "financial_transactions" }

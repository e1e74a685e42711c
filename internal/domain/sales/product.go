package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item. StockQuantity is informational only; orders never touch it.
type Product struct {
	ID            int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string          `gorm:"column:name" json:"name"`
	Description   string          `gorm:"column:description" json:"description"`
	Price         decimal.Decimal `gorm:"column:price;type:numeric(18,2);not null;default:0" json:"price"`
	StockQuantity int             `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string { return "products" }

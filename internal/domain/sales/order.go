package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the aggregate root. TotalAmount is derived from the line items at
// write time and is never taken from caller input.
type Order struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID  int64           `gorm:"column:customer_id;not null;index" json:"customer_id"`
	OrderDate   time.Time       `gorm:"column:order_date;not null" json:"order_date"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(18,2);not null;default:0" json:"total_amount"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	LineItems []*OrderProduct `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"line_items,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OrderProduct links an order to a product. Rows only exist as children of
// exactly one order and are replaced wholesale on every order update.
type OrderProduct struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"column:order_id;not null;index:idx_order_line_items_order_position,priority:1" json:"order_id"`
	ProductID int64 `gorm:"column:product_id;not null;index" json:"product_id"`
	Quantity  int   `gorm:"column:quantity;not null" json:"quantity"`
	Position  int   `gorm:"column:position;not null;index:idx_order_line_items_order_position,priority:2" json:"position"`

	Product *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"product,omitempty"`
}

func (OrderProduct) TableName() string { return "order_line_items" }

package sales

import "github.com/shopspring/decimal"

// PricedLine is a line item as submitted: the unit price is the one the caller
// quoted at submission time, not the product's current price.
type PricedLine struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// LineTotal is quantity × unit price.
func (l PricedLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// TotalAmount sums quantity × unit price over lines. An empty set totals zero.
func TotalAmount(lines []PricedLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// BuildLineItems turns submitted lines into rows for orderID, keeping the
// submitted order in Position.
func BuildLineItems(orderID int64, lines []PricedLine) []*OrderProduct {
	out := make([]*OrderProduct, 0, len(lines))
	for i, l := range lines {
		out = append(out, &OrderProduct{
			OrderID:   orderID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Position:  i,
		})
	}
	return out
}

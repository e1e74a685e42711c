package aggregates

import (
	"context"
	"time"

	"github.com/yungbote/erp-backend/internal/domain/sales"
)

var OrderAggregateContract = Contract{
	Name:             "Sales.OrderAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	Notes:            "Owns the order header, its line items and the derived total as one atomic unit.",
}

// OrderAggregate owns the total-amount invariant and the line-item set of an order.
//
// Write failures are *Error values with CodeNotFound, CodePersistenceConflict,
// CodeStorageUnavailable or CodeInternal.
type OrderAggregate interface {
	Aggregate

	// Place inserts a new order header and all of its line items, computing the total.
	Place(ctx context.Context, in OrderDraft) (*sales.Order, error)

	// Replace overwrites the header of an existing order and swaps its line items
	// for in.Lines. A missing order yields CodeNotFound and no writes.
	Replace(ctx context.Context, orderID int64, in OrderDraft) (*sales.Order, error)

	// Remove deletes the line items and then the header. A missing order yields CodeNotFound.
	Remove(ctx context.Context, orderID int64) error
}

type OrderDraft struct {
	CustomerID int64
	OrderDate  time.Time
	Lines      []sales.PricedLine
}

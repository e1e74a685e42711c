package aggregates

import (
	"context"
	"fmt"

	"github.com/yungbote/erp-backend/internal/data/repos"
	domainagg "github.com/yungbote/erp-backend/internal/domain/aggregates"
	"github.com/yungbote/erp-backend/internal/domain/sales"
	"github.com/yungbote/erp-backend/internal/platform/dbctx"
)

type OrderAggregateDeps struct {
	Base      BaseDeps
	Orders    repos.OrderRepo
	LineItems repos.OrderProductRepo
}

type orderAggregate struct {
	deps OrderAggregateDeps
}

func NewOrderAggregate(deps OrderAggregateDeps) domainagg.OrderAggregate {
	if deps.Base.Log != nil {
		deps.Base.Log = deps.Base.Log.With("aggregate", "OrderAggregate")
	}
	return &orderAggregate{deps: deps}
}

func (a *orderAggregate) Contract() domainagg.Contract {
	return domainagg.OrderAggregateContract
}

func (a *orderAggregate) Place(ctx context.Context, in domainagg.OrderDraft) (*sales.Order, error) {
	const op = "order.place"
	var out *sales.Order
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		order := &sales.Order{
			CustomerID:  in.CustomerID,
			OrderDate:   in.OrderDate,
			TotalAmount: sales.TotalAmount(in.Lines),
		}
		if err := a.deps.Orders.Create(dbc, order); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		items, err := a.deps.LineItems.Create(dbc, sales.BuildLineItems(order.ID, in.Lines))
		if err != nil {
			return fmt.Errorf("insert line items: %w", err)
		}
		order.LineItems = items
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *orderAggregate) Replace(ctx context.Context, orderID int64, in domainagg.OrderDraft) (*sales.Order, error) {
	const op = "order.replace"
	var out *sales.Order
	err := executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		order, err := a.deps.Orders.GetHeaderByID(dbc, orderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if order == nil {
			return domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("order %d not found", orderID), nil)
		}

		order.CustomerID = in.CustomerID
		order.OrderDate = in.OrderDate
		order.TotalAmount = sales.TotalAmount(in.Lines)

		if _, err := a.deps.LineItems.DeleteByOrderID(dbc, orderID); err != nil {
			return fmt.Errorf("delete line items: %w", err)
		}
		items, err := a.deps.LineItems.Create(dbc, sales.BuildLineItems(orderID, in.Lines))
		if err != nil {
			return fmt.Errorf("insert line items: %w", err)
		}
		if err := a.deps.Orders.UpdateHeader(dbc, order); err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		order.LineItems = items
		out = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (a *orderAggregate) Remove(ctx context.Context, orderID int64) error {
	const op = "order.remove"
	return executeWrite(ctx, a.deps.Base, op, func(dbc dbctx.Context) error {
		order, err := a.deps.Orders.GetHeaderByID(dbc, orderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}
		if order == nil {
			return domainagg.NewError(domainagg.CodeNotFound, op, fmt.Sprintf("order %d not found", orderID), nil)
		}
		if _, err := a.deps.LineItems.DeleteByOrderID(dbc, orderID); err != nil {
			return fmt.Errorf("delete line items: %w", err)
		}
		if _, err := a.deps.Orders.DeleteByID(dbc, orderID); err != nil {
			return fmt.Errorf("delete order: %w", err)
		}
		return nil
	})
}

package services

import (
	"context"

	"github.com/yungbote/erp-backend/internal/data/repos"
	domainagg "github.com/yungbote/erp-backend/internal/domain/aggregates"
	"github.com/yungbote/erp-backend/internal/dto"
	"github.com/yungbote/erp-backend/internal/platform/ctxutil"
	"github.com/yungbote/erp-backend/internal/platform/dbctx"
	"github.com/yungbote/erp-backend/internal/platform/logger"
	"github.com/yungbote/erp-backend/internal/realtime"
)

// OrderService exposes orders with their line items. Writes go through the
// order aggregate so the header, the line items and the total change together.
// The caller-supplied line price is what the total is computed from.
type OrderService interface {
	List(ctx context.Context) ([]dto.Order, error)
	Get(ctx context.Context, id int64) (*dto.Order, error)
	// Create ignores OrderID and TotalAmount on input.
	Create(ctx context.Context, in dto.Order) (*dto.Order, error)
	// Update replaces the header and the full line-item set of in.OrderID.
	Update(ctx context.Context, in dto.Order) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type orderService struct {
	log       *logger.Logger
	orders    repos.OrderRepo
	aggregate domainagg.OrderAggregate
	events    ChangePublisher
}

func NewOrderService(log *logger.Logger, orders repos.OrderRepo, aggregate domainagg.OrderAggregate, events ChangePublisher) OrderService {
	serviceLog := log.With("service", "OrderService")
	return &orderService{log: serviceLog, orders: orders, aggregate: aggregate, events: events}
}

func (s *orderService) List(ctx context.Context) ([]dto.Order, error) {
	rows, err := s.orders.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, storeFailure(ctx, s.log, "orders.list", err)
	}
	out := make([]dto.Order, 0, len(rows))
	for _, o := range rows {
		out = append(out, orderToDTO(o))
	}
	return out, nil
}

func (s *orderService) Get(ctx context.Context, id int64) (*dto.Order, error) {
	o, err := s.orders.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, storeFailure(ctx, s.log, "orders.get", err)
	}
	if o == nil {
		return nil, nil
	}
	out := orderToDTO(o)
	return &out, nil
}

func (s *orderService) Create(ctx context.Context, in dto.Order) (*dto.Order, error) {
	placed, err := s.aggregate.Place(ctx, orderDraftFromDTO(in))
	if err != nil {
		return nil, storeFailure(ctx, s.log, "orders.create", err)
	}
	s.events.Publish(ctx, realtime.EntityOrder, realtime.ActionCreated, placed.ID)

	// Committed; re-read for the joined product view. A failed re-read falls
	// back to echoing the submitted lines.
	stored, err := s.orders.GetByID(dbctx.Context{Ctx: ctx}, placed.ID)
	if err == nil && stored != nil {
		out := orderToDTO(stored)
		return &out, nil
	}
	s.log.Warn("order re-read after create failed", append(ctxutil.LogFields(ctx), "order_id", placed.ID, "error", err)...)
	out := in
	out.OrderID = placed.ID
	out.TotalAmount = placed.TotalAmount
	if out.Products == nil {
		out.Products = []dto.OrderLine{}
	}
	return &out, nil
}

func (s *orderService) Update(ctx context.Context, in dto.Order) (bool, error) {
	_, err := s.aggregate.Replace(ctx, in.OrderID, orderDraftFromDTO(in))
	if domainagg.IsCode(err, domainagg.CodeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, storeFailure(ctx, s.log, "orders.update", err)
	}
	s.events.Publish(ctx, realtime.EntityOrder, realtime.ActionUpdated, in.OrderID)
	return true, nil
}

func (s *orderService) Delete(ctx context.Context, id int64) (bool, error) {
	err := s.aggregate.Remove(ctx, id)
	if domainagg.IsCode(err, domainagg.CodeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, storeFailure(ctx, s.log, "orders.delete", err)
	}
	s.events.Publish(ctx, realtime.EntityOrder, realtime.ActionDeleted, id)
	return true, nil
}

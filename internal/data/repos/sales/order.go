package sales

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/erp-backend/internal/domain"
	"github.com/yungbote/erp-backend/internal/platform/dbctx"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

type OrderRepo interface {
	Create(dbc dbctx.Context, order *types.Order) error
	List(dbc dbctx.Context) ([]*types.Order, error)
	// GetByID loads the header with line items (by position) and their products.
	GetByID(dbc dbctx.Context, id int64) (*types.Order, error)
	// GetHeaderByID loads only the header row.
	GetHeaderByID(dbc dbctx.Context, id int64) (*types.Order, error)
	UpdateHeader(dbc dbctx.Context, order *types.Order) error
	DeleteByID(dbc dbctx.Context, id int64) (int64, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

func withLineItems(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("LineItems", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Preload("LineItems.Product")
}

// Create inserts the header only; line items go through OrderProductRepo.
func (r *orderRepo) Create(dbc dbctx.Context, order *types.Order) error {
	return dbc.DB(r.db).Omit(clause.Associations).Create(order).Error
}

func (r *orderRepo) List(dbc dbctx.Context) ([]*types.Order, error) {
	var results []*types.Order
	if err := withLineItems(dbc.DB(r.db)).Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *orderRepo) GetByID(dbc dbctx.Context, id int64) (*types.Order, error) {
	var out types.Order
	err := withLineItems(dbc.DB(r.db)).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *orderRepo) GetHeaderByID(dbc dbctx.Context, id int64) (*types.Order, error) {
	var out types.Order
	err := dbc.DB(r.db).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *orderRepo) UpdateHeader(dbc dbctx.Context, order *types.Order) error {
	now := time.Now().UTC()
	if err := dbc.DB(r.db).
		Model(&types.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"customer_id":  order.CustomerID,
			"order_date":   order.OrderDate,
			"total_amount": order.TotalAmount,
			"updated_at":   now,
		}).Error; err != nil {
		return err
	}
	order.UpdatedAt = now
	return nil
}

// DeleteByID removes the header only. Line items must be gone first.
func (r *orderRepo) DeleteByID(dbc dbctx.Context, id int64) (int64, error) {
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.Order{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

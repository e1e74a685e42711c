package sales

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/erp-backend/internal/domain"
	"github.com/yungbote/erp-backend/internal/platform/dbctx"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

type OrderProductRepo interface {
	Create(dbc dbctx.Context, items []*types.OrderProduct) ([]*types.OrderProduct, error)
	GetByOrderIDs(dbc dbctx.Context, orderIDs []int64) ([]*types.OrderProduct, error)
	DeleteByOrderID(dbc dbctx.Context, orderID int64) (int64, error)
}

type orderProductRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderProductRepo(db *gorm.DB, baseLog *logger.Logger) OrderProductRepo {
	repoLog := baseLog.With("repo", "OrderProductRepo")
	return &orderProductRepo{db: db, log: repoLog}
}

func (r *orderProductRepo) Create(dbc dbctx.Context, items []*types.OrderProduct) ([]*types.OrderProduct, error) {
	if len(items) == 0 {
		return []*types.OrderProduct{}, nil
	}
	if err := dbc.DB(r.db).Omit(clause.Associations).Create(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderProductRepo) GetByOrderIDs(dbc dbctx.Context, orderIDs []int64) ([]*types.OrderProduct, error) {
	var results []*types.OrderProduct
	if len(orderIDs) == 0 {
		return results, nil
	}
	if err := dbc.DB(r.db).
		Where("order_id IN ?", orderIDs).
		Order("order_id, position ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *orderProductRepo) DeleteByOrderID(dbc dbctx.Context, orderID int64) (int64, error) {
	res := dbc.DB(r.db).Where("order_id = ?", orderID).Delete(&types.OrderProduct{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

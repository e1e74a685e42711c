package sales

import (
	"errors"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/erp-backend/internal/domain"
	"github.com/yungbote/erp-backend/internal/platform/dbctx"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

type ProductRepo interface {
	Create(dbc dbctx.Context, products []*types.Product) ([]*types.Product, error)
	List(dbc dbctx.Context) ([]*types.Product, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Product, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Product, error)
	Save(dbc dbctx.Context, product *types.Product) error
	DeleteByID(dbc dbctx.Context, id int64) (int64, error)
}

type productRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	repoLog := baseLog.With("repo", "ProductRepo")
	return &productRepo{db: db, log: repoLog}
}

func (r *productRepo) Create(dbc dbctx.Context, products []*types.Product) ([]*types.Product, error) {
	if len(products) == 0 {
		return []*types.Product{}, nil
	}
	if err := dbc.DB(r.db).Create(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepo) List(dbc dbctx.Context) ([]*types.Product, error) {
	var results []*types.Product
	if err := dbc.DB(r.db).Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *productRepo) GetByID(dbc dbctx.Context, id int64) (*types.Product, error) {
	var out types.Product
	err := dbc.DB(r.db).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *productRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Product, error) {
	var results []*types.Product
	if len(ids) == 0 {
		return results, nil
	}
	if err := dbc.DB(r.db).Where("id IN ?", ids).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *productRepo) Save(dbc dbctx.Context, product *types.Product) error {
	now := time.Now().UTC()
	if err := dbc.DB(r.db).
		Model(&types.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":           product.Name,
			"description":    product.Description,
			"price":          product.Price,
			"stock_quantity": product.StockQuantity,
			"updated_at":     now,
		}).Error; err != nil {
		return err
	}
	product.UpdatedAt = now
	return nil
}

// DeleteByID fails with a foreign key violation while line items still reference the product.
func (r *productRepo) DeleteByID(dbc dbctx.Context, id int64) (int64, error) {
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.Product{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

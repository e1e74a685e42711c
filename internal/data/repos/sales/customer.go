package sales

import (
	"errors"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/erp-backend/internal/domain"
	"github.com/yungbote/erp-backend/internal/platform/dbctx"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

type CustomerRepo interface {
	Create(dbc dbctx.Context, customers []*types.Customer) ([]*types.Customer, error)
	List(dbc dbctx.Context) ([]*types.Customer, error)
	GetByID(dbc dbctx.Context, id int64) (*types.Customer, error)
	Save(dbc dbctx.Context, customer *types.Customer) error
	DeleteByID(dbc dbctx.Context, id int64) (int64, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	repoLog := baseLog.With("repo", "CustomerRepo")
	return &customerRepo{db: db, log: repoLog}
}

func (r *customerRepo) Create(dbc dbctx.Context, customers []*types.Customer) ([]*types.Customer, error) {
	if len(customers) == 0 {
		return []*types.Customer{}, nil
	}
	if err := dbc.DB(r.db).Create(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepo) List(dbc dbctx.Context) ([]*types.Customer, error) {
	var results []*types.Customer
	if err := dbc.DB(r.db).Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetByID returns nil, nil when the customer does not exist.
func (r *customerRepo) GetByID(dbc dbctx.Context, id int64) (*types.Customer, error) {
	var out types.Customer
	err := dbc.DB(r.db).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Save overwrites every mutable column, empty values included.
func (r *customerRepo) Save(dbc dbctx.Context, customer *types.Customer) error {
	now := time.Now().UTC()
	if err := dbc.DB(r.db).
		Model(&types.Customer{}).
		Where("id = ?", customer.ID).
		Updates(map[string]any{
			"name":         customer.Name,
			"email":        customer.Email,
			"address":      customer.Address,
			"phone_number": customer.PhoneNumber,
			"updated_at":   now,
		}).Error; err != nil {
		return err
	}
	customer.UpdatedAt = now
	return nil
}

func (r *customerRepo) DeleteByID(dbc dbctx.Context, id int64) (int64, error) {
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.Customer{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

package finance

import (
	"errors"
	"time"

	"gorm.io/gorm"

	types "github.com/yungbote/erp-backend/internal/domain"
	"github.com/yungbote/erp-backend/internal/platform/dbctx"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

type FinancialTransactionRepo interface {
	Create(dbc dbctx.Context, txns []*types.FinancialTransaction) ([]*types.FinancialTransaction, error)
	List(dbc dbctx.Context) ([]*types.FinancialTransaction, error)
	GetByID(dbc dbctx.Context, id int64) (*types.FinancialTransaction, error)
	Save(dbc dbctx.Context, txn *types.FinancialTransaction) error
	DeleteByID(dbc dbctx.Context, id int64) (int64, error)
}

type financialTransactionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewFinancialTransactionRepo(db *gorm.DB, baseLog *logger.Logger) FinancialTransactionRepo {
	repoLog := baseLog.With("repo", "FinancialTransactionRepo")
	return &financialTransactionRepo{db: db, log: repoLog}
}

func (r *financialTransactionRepo) Create(dbc dbctx.Context, txns []*types.FinancialTransaction) ([]*types.FinancialTransaction, error) {
	if len(txns) == 0 {
		return []*types.FinancialTransaction{}, nil
	}
	if err := dbc.DB(r.db).Create(&txns).Error; err != nil {
		return nil, err
	}
	return txns, nil
}

func (r *financialTransactionRepo) List(dbc dbctx.Context) ([]*types.FinancialTransaction, error) {
	var results []*types.FinancialTransaction
	if err := dbc.DB(r.db).Order("id ASC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *financialTransactionRepo) GetByID(dbc dbctx.Context, id int64) (*types.FinancialTransaction, error) {
	var out types.FinancialTransaction
	err := dbc.DB(r.db).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *financialTransactionRepo) Save(dbc dbctx.Context, txn *types.FinancialTransaction) error {
	now := time.Now().UTC()
	if err := dbc.DB(r.db).
		Model(&types.FinancialTransaction{}).
		Where("id = ?", txn.ID).
		Updates(map[string]any{
			"order_id":         txn.OrderID,
			"transaction_date": txn.TransactionDate,
			"transaction_type": txn.TransactionType,
			"amount":           txn.Amount,
			"updated_at":       now,
		}).Error; err != nil {
		return err
	}
	txn.UpdatedAt = now
	return nil
}

func (r *financialTransactionRepo) DeleteByID(dbc dbctx.Context, id int64) (int64, error) {
	res := dbc.DB(r.db).Where("id = ?", id).Delete(&types.FinancialTransaction{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

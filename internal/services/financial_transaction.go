package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/erp-backend/internal/data/repos"
	types "github.com/yungbote/erp-backend/internal/domain"
	"github.com/yungbote/erp-backend/internal/dto"
	"github.com/yungbote/erp-backend/internal/platform/dbctx"
	"github.com/yungbote/erp-backend/internal/platform/logger"
	"github.com/yungbote/erp-backend/internal/realtime"
)

// FinancialTransactionService stores payments, refunds and similar records.
// OrderID is a plain reference and is not checked against existing orders.
type FinancialTransactionService interface {
	List(ctx context.Context) ([]dto.FinancialTransaction, error)
	Get(ctx context.Context, id int64) (*dto.FinancialTransaction, error)
	Create(ctx context.Context, in dto.FinancialTransaction) (*dto.FinancialTransaction, error)
	Update(ctx context.Context, in dto.FinancialTransaction) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type financialTransactionService struct {
	db     *gorm.DB
	log    *logger.Logger
	repo   repos.FinancialTransactionRepo
	events ChangePublisher
}

func NewFinancialTransactionService(db *gorm.DB, log *logger.Logger, repo repos.FinancialTransactionRepo, events ChangePublisher) FinancialTransactionService {
	serviceLog := log.With("service", "FinancialTransactionService")
	return &financialTransactionService{db: db, log: serviceLog, repo: repo, events: events}
}

func (s *financialTransactionService) List(ctx context.Context) ([]dto.FinancialTransaction, error) {
	rows, err := s.repo.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, storeFailure(ctx, s.log, "financial_transactions.list", err)
	}
	out := make([]dto.FinancialTransaction, 0, len(rows))
	for _, ft := range rows {
		out = append(out, financialTransactionToDTO(ft))
	}
	return out, nil
}

func (s *financialTransactionService) Get(ctx context.Context, id int64) (*dto.FinancialTransaction, error) {
	ft, err := s.repo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, storeFailure(ctx, s.log, "financial_transactions.get", err)
	}
	if ft == nil {
		return nil, nil
	}
	out := financialTransactionToDTO(ft)
	return &out, nil
}

func (s *financialTransactionService) Create(ctx context.Context, in dto.FinancialTransaction) (*dto.FinancialTransaction, error) {
	row := financialTransactionFromDTO(in)
	row.ID = 0
	created, err := s.repo.Create(dbctx.Context{Ctx: ctx}, []*types.FinancialTransaction{row})
	if err != nil {
		return nil, storeFailure(ctx, s.log, "financial_transactions.create", err)
	}
	out := financialTransactionToDTO(created[0])
	s.events.Publish(ctx, realtime.EntityFinancialTransaction, realtime.ActionCreated, out.TransactionID)
	return &out, nil
}

func (s *financialTransactionService) Update(ctx context.Context, in dto.FinancialTransaction) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inner := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := s.repo.GetByID(inner, in.TransactionID)
		if err != nil || existing == nil {
			return err
		}
		found = true
		return s.repo.Save(inner, financialTransactionFromDTO(in))
	})
	if err != nil {
		return false, storeFailure(ctx, s.log, "financial_transactions.update", err)
	}
	if found {
		s.events.Publish(ctx, realtime.EntityFinancialTransaction, realtime.ActionUpdated, in.TransactionID)
	}
	return found, nil
}

func (s *financialTransactionService) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := s.repo.DeleteByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return false, storeFailure(ctx, s.log, "financial_transactions.delete", err)
	}
	if n == 0 {
		return false, nil
	}
	s.events.Publish(ctx, realtime.EntityFinancialTransaction, realtime.ActionDeleted, id)
	return true, nil
}

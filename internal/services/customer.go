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

// CustomerService is the customer half of the entity store: plain CRUD, no validation.
// Get returns nil for an absent id; Update and Delete report absence as false.
type CustomerService interface {
	List(ctx context.Context) ([]dto.Customer, error)
	Get(ctx context.Context, id int64) (*dto.Customer, error)
	Create(ctx context.Context, in dto.Customer) (*dto.Customer, error)
	Update(ctx context.Context, in dto.Customer) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type customerService struct {
	db     *gorm.DB
	log    *logger.Logger
	repo   repos.CustomerRepo
	events ChangePublisher
}

func NewCustomerService(db *gorm.DB, log *logger.Logger, repo repos.CustomerRepo, events ChangePublisher) CustomerService {
	serviceLog := log.With("service", "CustomerService")
	return &customerService{db: db, log: serviceLog, repo: repo, events: events}
}

func (s *customerService) List(ctx context.Context) ([]dto.Customer, error) {
	rows, err := s.repo.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, storeFailure(ctx, s.log, "customers.list", err)
	}
	out := make([]dto.Customer, 0, len(rows))
	for _, c := range rows {
		out = append(out, customerToDTO(c))
	}
	return out, nil
}

func (s *customerService) Get(ctx context.Context, id int64) (*dto.Customer, error) {
	c, err := s.repo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, storeFailure(ctx, s.log, "customers.get", err)
	}
	if c == nil {
		return nil, nil
	}
	out := customerToDTO(c)
	return &out, nil
}

func (s *customerService) Create(ctx context.Context, in dto.Customer) (*dto.Customer, error) {
	row := customerFromDTO(in)
	row.ID = 0
	created, err := s.repo.Create(dbctx.Context{Ctx: ctx}, []*types.Customer{row})
	if err != nil {
		return nil, storeFailure(ctx, s.log, "customers.create", err)
	}
	out := customerToDTO(created[0])
	s.events.Publish(ctx, realtime.EntityCustomer, realtime.ActionCreated, out.CustomerID)
	return &out, nil
}

func (s *customerService) Update(ctx context.Context, in dto.Customer) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inner := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := s.repo.GetByID(inner, in.CustomerID)
		if err != nil || existing == nil {
			return err
		}
		found = true
		return s.repo.Save(inner, customerFromDTO(in))
	})
	if err != nil {
		return false, storeFailure(ctx, s.log, "customers.update", err)
	}
	if found {
		s.events.Publish(ctx, realtime.EntityCustomer, realtime.ActionUpdated, in.CustomerID)
	}
	return found, nil
}

func (s *customerService) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := s.repo.DeleteByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return false, storeFailure(ctx, s.log, "customers.delete", err)
	}
	if n == 0 {
		return false, nil
	}
	s.events.Publish(ctx, realtime.EntityCustomer, realtime.ActionDeleted, id)
	return true, nil
}

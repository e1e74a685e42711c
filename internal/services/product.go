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

// ProductService manages the catalog. Deleting a product that order lines
// still reference fails with a persistence conflict.
type ProductService interface {
	List(ctx context.Context) ([]dto.Product, error)
	Get(ctx context.Context, id int64) (*dto.Product, error)
	Create(ctx context.Context, in dto.Product) (*dto.Product, error)
	Update(ctx context.Context, in dto.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type productService struct {
	db     *gorm.DB
	log    *logger.Logger
	repo   repos.ProductRepo
	events ChangePublisher
}

func NewProductService(db *gorm.DB, log *logger.Logger, repo repos.ProductRepo, events ChangePublisher) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{db: db, log: serviceLog, repo: repo, events: events}
}

func (s *productService) List(ctx context.Context) ([]dto.Product, error) {
	rows, err := s.repo.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, storeFailure(ctx, s.log, "products.list", err)
	}
	out := make([]dto.Product, 0, len(rows))
	for _, p := range rows {
		out = append(out, productToDTO(p))
	}
	return out, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*dto.Product, error) {
	p, err := s.repo.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, storeFailure(ctx, s.log, "products.get", err)
	}
	if p == nil {
		return nil, nil
	}
	out := productToDTO(p)
	return &out, nil
}

func (s *productService) Create(ctx context.Context, in dto.Product) (*dto.Product, error) {
	row := productFromDTO(in)
	row.ID = 0
	created, err := s.repo.Create(dbctx.Context{Ctx: ctx}, []*types.Product{row})
	if err != nil {
		return nil, storeFailure(ctx, s.log, "products.create", err)
	}
	out := productToDTO(created[0])
	s.events.Publish(ctx, realtime.EntityProduct, realtime.ActionCreated, out.ProductID)
	return &out, nil
}

func (s *productService) Update(ctx context.Context, in dto.Product) (bool, error) {
	found := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inner := dbctx.Context{Ctx: ctx, Tx: tx}
		existing, err := s.repo.GetByID(inner, in.ProductID)
		if err != nil || existing == nil {
			return err
		}
		found = true
		return s.repo.Save(inner, productFromDTO(in))
	})
	if err != nil {
		return false, storeFailure(ctx, s.log, "products.update", err)
	}
	if found {
		s.events.Publish(ctx, realtime.EntityProduct, realtime.ActionUpdated, in.ProductID)
	}
	return found, nil
}

func (s *productService) Delete(ctx context.Context, id int64) (bool, error) {
	n, err := s.repo.DeleteByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return false, storeFailure(ctx, s.log, "products.delete", err)
	}
	if n == 0 {
		return false, nil
	}
	s.events.Publish(ctx, realtime.EntityProduct, realtime.ActionDeleted, id)
	return true, nil
}

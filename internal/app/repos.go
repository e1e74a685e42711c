package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/erp-backend/internal/data/repos"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

type Repos struct {
	Customer             repos.CustomerRepo
	Product              repos.ProductRepo
	Order                repos.OrderRepo
	OrderProduct         repos.OrderProductRepo
	FinancialTransaction repos.FinancialTransactionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Customer:             repos.NewCustomerRepo(db, log),
		Product:              repos.NewProductRepo(db, log),
		Order:                repos.NewOrderRepo(db, log),
		OrderProduct:         repos.NewOrderProductRepo(db, log),
		FinancialTransaction: repos.NewFinancialTransactionRepo(db, log),
	}
}

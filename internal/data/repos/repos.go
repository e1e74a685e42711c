package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/erp-backend/internal/data/repos/finance"
	"github.com/yungbote/erp-backend/internal/data/repos/sales"
	"github.com/yungbote/erp-backend/internal/platform/logger"
)

type CustomerRepo = sales.CustomerRepo
type ProductRepo = sales.ProductRepo
type OrderRepo = sales.OrderRepo
type OrderProductRepo = sales.OrderProductRepo

type FinancialTransactionRepo = finance.FinancialTransactionRepo

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return sales.NewCustomerRepo(db, baseLog)
}
func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return sales.NewProductRepo(db, baseLog)
}
func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return sales.NewOrderRepo(db, baseLog)
}
func NewOrderProductRepo(db *gorm.DB, baseLog *logger.Logger) OrderProductRepo {
	return sales.NewOrderProductRepo(db, baseLog)
}

func NewFinancialTransactionRepo(db *gorm.DB, baseLog *logger.Logger) FinancialTransactionRepo {
	return finance.NewFinancialTransactionRepo(db, baseLog)
}

package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/erp-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(types.Models()...)
}

// EnsureIndexes creates indexes gorm tags cannot express portably.
func EnsureIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_financial_transactions_order_date
		ON financial_transactions (order_id, transaction_date);
	`).Error; err != nil {
		return fmt.Errorf("create idx_financial_transactions_order_date: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_orders_customer_date
		ON orders (customer_id, order_date);
	`).Error; err != nil {
		return fmt.Errorf("create idx_orders_customer_date: %w", err)
	}
	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating store tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureIndexes(s.db); err != nil {
		s.log.Error("Index migration failed", "error", err)
		return err
	}
	return nil
}

// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/domain/affiliate"
	"github.com/your-org/storefront-backend/internal/domain/restock"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
)

// Migration handles database migrations. The storefront owns only its own
// thin state; catalog, carts, and orders live in the commerce backend and
// are never persisted here.
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	models := []interface{}{
		&wishlist.Item{},
		&restock.Subscription{},
		&affiliate.Click{},
	}

	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_wishlist_customer_product_variant ON wishlist_items(customer_id, product_handle, variant_id) WHERE deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_wishlist_added_at ON wishlist_items(customer_id, added_at DESC)",

		"CREATE INDEX IF NOT EXISTS idx_restock_pending ON restock_subscriptions(variant_id) WHERE notified_at IS NULL AND deleted_at IS NULL",
		"CREATE INDEX IF NOT EXISTS idx_restock_email_variant ON restock_subscriptions(email, variant_id)",

		"CREATE INDEX IF NOT EXISTS idx_affiliate_clicks_code_created ON affiliate_clicks(code, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_affiliate_clicks_visitor ON affiliate_clicks(visitor_id)",
	}

	for _, index := range indexes {
		if err := m.db.Exec(index).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	log.Println("✅ Database indexes created successfully")
	return nil
}

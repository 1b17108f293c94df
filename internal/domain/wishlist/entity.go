// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"

	"gorm.io/gorm"
)

// Item represents a saved wishlist entry. Only the references are persisted;
// availability and current price are recomputed from fresh commerce data on
// every read.
type Item struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CustomerID    string         `gorm:"not null;index;size:64" json:"customer_id"`
	ProductHandle string         `gorm:"not null;size:255" json:"product_handle"`
	VariantID     string         `gorm:"size:64" json:"variant_id,omitempty"`
	AddedAt       time.Time      `json:"added_at"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Item) TableName() string {
	return "wishlist_items"
}

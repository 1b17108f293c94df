// internal/domain/restock/entity.go
package restock

import (
	"time"

	"gorm.io/gorm"
)

// Subscription represents a "notify me when back in stock" signup
type Subscription struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Email         string         `gorm:"not null;index;size:255" json:"email"`
	ProductHandle string         `gorm:"not null;size:255" json:"product_handle"`
	VariantID     string         `gorm:"not null;index;size:64" json:"variant_id"`
	NotifiedAt    *time.Time     `json:"notified_at,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Subscription) TableName() string {
	return "restock_subscriptions"
}

// Pending reports whether the subscriber still awaits a notification
func (s *Subscription) Pending() bool {
	return s.NotifiedAt == nil
}

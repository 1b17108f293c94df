// internal/domain/affiliate/entity.go
package affiliate

import (
	"time"

	"gorm.io/gorm"
)

// Click represents a recorded affiliate referral click
type Click struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Code        string         `gorm:"not null;index;size:64" json:"code"`
	VisitorID   string         `gorm:"not null;index;size:64" json:"visitor_id"`
	LandingPath string         `gorm:"size:500" json:"landing_path"`
	Referer     string         `gorm:"size:500" json:"referer,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (Click) TableName() string {
	return "affiliate_clicks"
}

// internal/domain/restock/service.go
package restock

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// Service handles restock subscription business logic
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	client      *commerce.Client
	config      *config.Config
}

// NewService creates a new restock service
func NewService(db *gorm.DB, redisClient *redis.Client, client *commerce.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		client:      client,
		config:      cfg,
	}
}

// SubscribeRequest represents a restock notification signup
type SubscribeRequest struct {
	Email         string `json:"email" binding:"required,email"`
	ProductHandle string `json:"product_handle" binding:"required"`
	VariantID     string `json:"variant_id" binding:"required"`
}

// Subscribe registers an email for a restock notification. Signups are only
// accepted while the variant is actually out of stock, and a per-email
// cooldown in Redis absorbs repeat submissions.
func (s *Service) Subscribe(ctx context.Context, req *SubscribeRequest) (*Subscription, error) {
	product, err := s.client.GetProductByHandle(ctx, req.ProductHandle)
	if err != nil {
		// Wrapped so callers can still match the upstream 404
		if commerce.IsNotFound(err) {
			return nil, fmt.Errorf("product not found: %w", err)
		}
		return nil, fmt.Errorf("failed to validate product: %w", err)
	}

	variant := catalog.FindVariantByID(product.Variants, req.VariantID)
	if variant == nil {
		return nil, fmt.Errorf("variant not found on product")
	}

	if catalog.VariantPurchasable(variant) {
		return nil, fmt.Errorf("variant is in stock")
	}

	cooldownKey := fmt.Sprintf("restock:cooldown:%s:%s", req.Email, req.VariantID)
	active, err := s.redisClient.Exists(ctx, cooldownKey).Result()
	if err == nil && active > 0 {
		return nil, fmt.Errorf("already subscribed recently")
	}
	// A Redis failure only disables the cooldown; the signup still goes through

	var existing Subscription
	result := s.db.Where("email = ? AND variant_id = ? AND notified_at IS NULL",
		req.Email, req.VariantID).First(&existing)
	if result.Error == nil {
		return &existing, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check subscriptions: %w", result.Error)
	}

	sub := Subscription{
		Email:         req.Email,
		ProductHandle: req.ProductHandle,
		VariantID:     req.VariantID,
	}
	if err := s.db.Create(&sub).Error; err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	// Armed only once the row is durable, so a failed insert cannot lock
	// the subscriber out for the whole cooldown window
	s.redisClient.Set(ctx, cooldownKey, 1, s.config.Storefront.RestockCooldown)

	return &sub, nil
}

// PendingVariants returns the distinct variants that still have waiting
// subscribers, for the notifier poll loop.
func (s *Service) PendingVariants() ([]Subscription, error) {
	var subs []Subscription
	err := s.db.
		Select("DISTINCT product_handle, variant_id").
		Where("notified_at IS NULL").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load pending subscriptions: %w", err)
	}
	return subs, nil
}

// SubscribersFor returns the pending subscriptions for one variant
func (s *Service) SubscribersFor(variantID string) ([]Subscription, error) {
	var subs []Subscription
	err := s.db.Where("variant_id = ? AND notified_at IS NULL", variantID).Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load subscribers: %w", err)
	}
	return subs, nil
}

// MarkNotified stamps a subscription after its notification was sent
func (s *Service) MarkNotified(subscriptionID uint) error {
	now := time.Now().UTC()
	return s.db.Model(&Subscription{}).
		Where("id = ?", subscriptionID).
		Update("notified_at", now).Error
}

// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/money"
)

// Service handles wishlist business logic. Persistence holds only the
// product/variant references; everything price- or inventory-bearing is
// fetched fresh from the commerce API per request.
type Service struct {
	db     *gorm.DB
	client *commerce.Client
	config *config.Config
}

// NewService creates a new wishlist service
func NewService(db *gorm.DB, client *commerce.Client, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		client: client,
		config: cfg,
	}
}

// ItemResponse represents a wishlist item with fresh product state
type ItemResponse struct {
	ID            uint              `json:"id"`
	ProductHandle string            `json:"product_handle"`
	VariantID     string            `json:"variant_id,omitempty"`
	Product       *commerce.Product `json:"product,omitempty"`
	Variant       *commerce.Variant `json:"variant,omitempty"`
	Purchasable   bool              `json:"purchasable"`
	CurrentPrice  *money.Amount     `json:"current_price,omitempty"`
	AddedAt       time.Time         `json:"added_at"`
}

// AddRequest represents an add-to-wishlist request
type AddRequest struct {
	ProductHandle string `json:"product_handle" binding:"required"`
	VariantID     string `json:"variant_id"`
}

// List returns the customer's wishlist decorated with fresh availability
func (s *Service) List(ctx context.Context, customerID string) ([]ItemResponse, error) {
	var items []Item
	if err := s.db.Where("customer_id = ?", customerID).Order("added_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve wishlist: %w", err)
	}

	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		resp := ItemResponse{
			ID:            item.ID,
			ProductHandle: item.ProductHandle,
			VariantID:     item.VariantID,
			AddedAt:       item.AddedAt,
		}

		product, err := s.client.GetProductByHandle(ctx, item.ProductHandle)
		if err != nil {
			// Product gone upstream: keep the row but render it unavailable
			responses = append(responses, resp)
			continue
		}
		resp.Product = product

		if variant := catalog.FindVariantByID(product.Variants, item.VariantID); variant != nil {
			resp.Variant = variant
			resp.Purchasable = catalog.VariantPurchasable(variant)
			if variant.CalculatedPrice != nil {
				price := *variant.CalculatedPrice
				resp.CurrentPrice = &price
			}
		} else {
			resp.Purchasable = catalog.ProductPurchasable(product)
			if min := catalog.MinVariantPrice(product); min != math.MaxInt64 {
				resp.CurrentPrice = &min
			}
		}

		responses = append(responses, resp)
	}

	return responses, nil
}

// Add saves a product (optionally a specific variant) to the wishlist
func (s *Service) Add(ctx context.Context, customerID string, req *AddRequest) (*Item, error) {
	// Validate the product exists upstream before persisting a reference
	product, err := s.client.GetProductByHandle(ctx, req.ProductHandle)
	if err != nil {
		// Wrapped so callers can still match the upstream 404
		if commerce.IsNotFound(err) {
			return nil, fmt.Errorf("product not found: %w", err)
		}
		return nil, fmt.Errorf("failed to validate product: %w", err)
	}

	if req.VariantID != "" && catalog.FindVariantByID(product.Variants, req.VariantID) == nil {
		return nil, fmt.Errorf("variant not found on product")
	}

	var existing Item
	result := s.db.Where("customer_id = ? AND product_handle = ? AND variant_id = ?",
		customerID, req.ProductHandle, req.VariantID).First(&existing)
	if result.Error == nil {
		return &existing, nil
	}
	if result.Error != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to check wishlist: %w", result.Error)
	}

	item := Item{
		CustomerID:    customerID,
		ProductHandle: req.ProductHandle,
		VariantID:     req.VariantID,
		AddedAt:       time.Now().UTC(),
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}

	return &item, nil
}

// Remove deletes a wishlist item belonging to the customer
func (s *Service) Remove(customerID string, itemID uint) error {
	result := s.db.Where("id = ? AND customer_id = ?", itemID, customerID).Delete(&Item{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove wishlist item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("wishlist item not found")
	}
	return nil
}

// Clear empties the customer's wishlist, used on logout teardown
func (s *Service) Clear(customerID string) error {
	return s.db.Where("customer_id = ?", customerID).Delete(&Item{}).Error
}

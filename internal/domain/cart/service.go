// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
	"github.com/your-org/storefront-backend/internal/pkg/money"
)

// Service proxies cart operations to the commerce API and decorates line
// items with display-only pricing. The backend totals stay authoritative;
// this layer never computes an amount charged.
type Service struct {
	client     *commerce.Client
	calculator *pricing.Calculator
	config     *config.Config
}

// NewService creates a new cart service
func NewService(client *commerce.Client, calculator *pricing.Calculator, cfg *config.Config) *Service {
	return &Service{
		client:     client,
		calculator: calculator,
		config:     cfg,
	}
}

// ItemView represents a cart line item with its derived display pricing
type ItemView struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	Thumbnail     string                  `json:"thumbnail"`
	Quantity      int                     `json:"quantity"`
	VariantID     string                  `json:"variant_id"`
	Variant       *commerce.Variant       `json:"variant,omitempty"`
	CustomOptions []pricing.CustomOption  `json:"custom_options,omitempty"`
	Display       pricing.LineItemDisplay `json:"display"`
}

// CartView represents a shopping cart decorated for rendering
type CartView struct {
	ID        string       `json:"id"`
	Email     string       `json:"email,omitempty"`
	Items     []ItemView   `json:"items"`
	Subtotal  money.Amount `json:"subtotal"`
	TaxTotal  money.Amount `json:"tax_total"`
	Total     money.Amount `json:"total"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// AddItemRequest represents an add-to-cart request. Metadata passes through
// to the backend untouched; this is where add-on selections ride along.
type AddItemRequest struct {
	VariantID string            `json:"variant_id" binding:"required"`
	Quantity  int               `json:"quantity" binding:"required,min=1"`
	Metadata  commerce.Metadata `json:"metadata"`
}

// UpdateItemRequest represents a line item quantity update
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=0"`
}

// GetCart retrieves a cart and decorates it for display. An empty cart ID
// creates a fresh cart so first-visit requests always get one back.
func (s *Service) GetCart(ctx context.Context, cartID string) (*CartView, error) {
	if cartID == "" {
		created, err := s.client.CreateCart(ctx)
		if err != nil {
			return nil, err
		}
		return s.decorate(created), nil
	}

	fetched, err := s.client.GetCart(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.decorate(fetched), nil
}

// AddItem adds a variant to the cart, creating the cart first if needed
func (s *Service) AddItem(ctx context.Context, cartID string, req *AddItemRequest) (*CartView, error) {
	if cartID == "" {
		created, err := s.client.CreateCart(ctx)
		if err != nil {
			return nil, err
		}
		cartID = created.ID
	}

	updated, err := s.client.AddLineItem(ctx, cartID, &commerce.AddLineItemRequest{
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
		Metadata:  req.Metadata,
	})
	if err != nil {
		return nil, err
	}
	return s.decorate(updated), nil
}

// UpdateItem updates a line item quantity; zero removes the line
func (s *Service) UpdateItem(ctx context.Context, cartID, lineItemID string, req *UpdateItemRequest) (*CartView, error) {
	if cartID == "" {
		return nil, fmt.Errorf("cart ID required")
	}

	if req.Quantity == 0 {
		return s.RemoveItem(ctx, cartID, lineItemID)
	}

	updated, err := s.client.UpdateLineItem(ctx, cartID, lineItemID, &commerce.UpdateLineItemRequest{
		Quantity: req.Quantity,
	})
	if err != nil {
		return nil, err
	}
	return s.decorate(updated), nil
}

// RemoveItem removes a line item from the cart
func (s *Service) RemoveItem(ctx context.Context, cartID, lineItemID string) (*CartView, error) {
	if cartID == "" {
		return nil, fmt.Errorf("cart ID required")
	}

	updated, err := s.client.DeleteLineItem(ctx, cartID, lineItemID)
	if err != nil {
		return nil, err
	}
	return s.decorate(updated), nil
}

// ItemCount returns the total quantity across the cart's line items
func (s *Service) ItemCount(ctx context.Context, cartID string) (int, error) {
	if cartID == "" {
		return 0, nil
	}

	fetched, err := s.client.GetCart(ctx, cartID)
	if err != nil {
		if commerce.IsNotFound(err) {
			return 0, nil
		}
		return 0, err
	}

	count := 0
	for _, item := range fetched.Items {
		count += item.Quantity
	}
	return count, nil
}

// decorate maps a backend cart onto its display view
func (s *Service) decorate(c *commerce.Cart) *CartView {
	items := make([]ItemView, len(c.Items))
	for i := range c.Items {
		item := &c.Items[i]
		items[i] = ItemView{
			ID:            item.ID,
			Title:         item.Title,
			Thumbnail:     item.Thumbnail,
			Quantity:      item.Quantity,
			VariantID:     item.VariantID,
			Variant:       item.Variant,
			CustomOptions: pricing.CustomOptionsFromMetadata(item.Metadata),
			Display:       s.calculator.ForLineItem(item),
		}
	}

	return &CartView{
		ID:        c.ID,
		Email:     c.Email,
		Items:     items,
		Subtotal:  c.Subtotal,
		TaxTotal:  c.TaxTotal,
		Total:     c.Total,
		UpdatedAt: c.UpdatedAt,
	}
}

// internal/commerce/cart.go
package commerce

import (
	"context"
	"fmt"
	"net/http"
)

type cartResponse struct {
	Cart Cart `json:"cart"`
}

// AddLineItemRequest represents an add-to-cart request proxied to the backend
type AddLineItemRequest struct {
	VariantID string   `json:"variant_id"`
	Quantity  int      `json:"quantity"`
	Metadata  Metadata `json:"metadata,omitempty"`
}

// UpdateLineItemRequest represents a line item quantity update
type UpdateLineItemRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart retrieves a cart by ID
func (c *Client) GetCart(ctx context.Context, cartID string) (*Cart, error) {
	var resp cartResponse
	if err := c.do(ctx, http.MethodGet, "/store/carts/"+cartID, nil, "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Cart, nil
}

// CreateCart creates a new cart for the configured region
func (c *Client) CreateCart(ctx context.Context) (*Cart, error) {
	body := map[string]string{"region": c.region}

	var resp cartResponse
	if err := c.do(ctx, http.MethodPost, "/store/carts", nil, "", body, &resp); err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return &resp.Cart, nil
}

// AddLineItem adds a variant to the cart
func (c *Client) AddLineItem(ctx context.Context, cartID string, req *AddLineItemRequest) (*Cart, error) {
	var resp cartResponse
	if err := c.do(ctx, http.MethodPost, "/store/carts/"+cartID+"/line-items", nil, "", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Cart, nil
}

// UpdateLineItem updates a cart line item quantity
func (c *Client) UpdateLineItem(ctx context.Context, cartID, lineItemID string, req *UpdateLineItemRequest) (*Cart, error) {
	var resp cartResponse
	if err := c.do(ctx, http.MethodPost, "/store/carts/"+cartID+"/line-items/"+lineItemID, nil, "", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Cart, nil
}

// DeleteLineItem removes a line item from the cart
func (c *Client) DeleteLineItem(ctx context.Context, cartID, lineItemID string) (*Cart, error) {
	var resp cartResponse
	if err := c.do(ctx, http.MethodDelete, "/store/carts/"+cartID+"/line-items/"+lineItemID, nil, "", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Cart, nil
}

// CompleteCart finishes checkout for a cart. The backend runs payment and
// inventory reservation and either returns the resulting order or rejects
// the completion, in which case the cart stays open.
func (c *Client) CompleteCart(ctx context.Context, cartID, bearerToken string) (*Order, error) {
	var resp struct {
		Order Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodPost, "/store/carts/"+cartID+"/complete", nil, bearerToken, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

// ListShippingOptions retrieves the shipping options available for a cart
func (c *Client) ListShippingOptions(ctx context.Context, cartID string) ([]ShippingOption, error) {
	var resp struct {
		ShippingOptions []ShippingOption `json:"shipping_options"`
	}
	if err := c.do(ctx, http.MethodGet, "/store/shipping-options/"+cartID, nil, "", nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list shipping options: %w", err)
	}
	return resp.ShippingOptions, nil
}

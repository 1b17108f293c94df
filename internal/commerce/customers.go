// internal/commerce/customers.go
package commerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetCustomer retrieves the customer associated with a bearer token
func (c *Client) GetCustomer(ctx context.Context, token string) (*Customer, error) {
	var resp struct {
		Customer Customer `json:"customer"`
	}
	if err := c.do(ctx, http.MethodGet, "/store/customers/me", nil, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Customer, nil
}

// GetLoyaltyAccount retrieves the customer's loyalty balance. Callers treat
// a failure here as "no loyalty data", not as a page-level error.
func (c *Client) GetLoyaltyAccount(ctx context.Context, token string) (*LoyaltyAccount, error) {
	var resp struct {
		Account LoyaltyAccount `json:"account"`
	}
	if err := c.do(ctx, http.MethodGet, "/store/loyalty/account", nil, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Account, nil
}

// ListOrders retrieves the customer's order history
func (c *Client) ListOrders(ctx context.Context, token string, limit, offset int) ([]Order, int, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var resp struct {
		Orders []Order `json:"orders"`
		Count  int     `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/store/orders", query, token, nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Orders, resp.Count, nil
}

// GetOrder retrieves a single order belonging to the customer
func (c *Client) GetOrder(ctx context.Context, token, orderID string) (*Order, error) {
	var resp struct {
		Order Order `json:"order"`
	}
	if err := c.do(ctx, http.MethodGet, "/store/orders/"+orderID, nil, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Order, nil
}

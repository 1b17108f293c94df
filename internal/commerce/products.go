// internal/commerce/products.go
package commerce

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListProductsParams represents product listing query parameters
type ListProductsParams struct {
	Limit        int
	Offset       int
	Search       string
	CollectionID string
}

type productListResponse struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

type productResponse struct {
	Product Product `json:"product"`
}

// ListProducts retrieves a page of products for the configured region
func (c *Client) ListProducts(ctx context.Context, params ListProductsParams) ([]Product, int, error) {
	query := url.Values{}
	query.Set("region", c.region)
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		query.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.Search != "" {
		query.Set("q", params.Search)
	}
	if params.CollectionID != "" {
		query.Set("collection_id", params.CollectionID)
	}

	var resp productListResponse
	if err := c.do(ctx, http.MethodGet, "/store/products", query, "", nil, &resp); err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	return resp.Products, resp.Count, nil
}

// GetProductByHandle retrieves a single product by its URL handle
func (c *Client) GetProductByHandle(ctx context.Context, handle string) (*Product, error) {
	query := url.Values{}
	query.Set("region", c.region)

	var resp productResponse
	if err := c.do(ctx, http.MethodGet, "/store/products/"+url.PathEscape(handle), query, "", nil, &resp); err != nil {
		return nil, err
	}

	return &resp.Product, nil
}

// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"math"

	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/pkg/money"
)

// Service handles catalog business logic
type Service struct {
	client *commerce.Client
	config *config.Config
}

// NewService creates a new catalog service
func NewService(client *commerce.Client, cfg *config.Config) *Service {
	return &Service{
		client: client,
		config: cfg,
	}
}

// ListRequest represents product listing query parameters
type ListRequest struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
	Search string `form:"search"`
	SortBy string `form:"sort_by"`
}

// ListResponse represents an ordered product listing page
type ListResponse struct {
	Products []ProductSummary `json:"products"`
	Count    int              `json:"count"`
	Page     int              `json:"page"`
	Limit    int              `json:"limit"`
	SortBy   SortKey          `json:"sort_by"`
}

// ProductSummary is the listing-page view of a product
type ProductSummary struct {
	ID          string       `json:"id"`
	Handle      string       `json:"handle"`
	Title       string       `json:"title"`
	Thumbnail   string       `json:"thumbnail"`
	Purchasable bool         `json:"purchasable"`
	MinPrice    money.Amount `json:"min_price"`
}

// ProductDetail represents a product page payload with the resolved variant
type ProductDetail struct {
	Product         *commerce.Product `json:"product"`
	SelectedVariant *commerce.Variant `json:"selected_variant"`
	Purchasable     bool              `json:"purchasable"`
}

// ListProducts fetches products from the commerce API and orders them:
// available first, then by the requested sort key.
func (s *Service) ListProducts(ctx context.Context, req *ListRequest) (*ListResponse, error) {
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = s.config.Storefront.DefaultSort
	}
	key := ParseSortKey(sortBy)

	products, count, err := s.client.ListProducts(ctx, commerce.ListProductsParams{
		Limit:  req.Limit,
		Offset: (req.Page - 1) * req.Limit,
		Search: req.Search,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	ordered := SortProducts(products, key)

	summaries := make([]ProductSummary, len(ordered))
	for i := range ordered {
		summaries[i] = ProductSummary{
			ID:          ordered[i].ID,
			Handle:      ordered[i].Handle,
			Title:       ordered[i].Title,
			Thumbnail:   ordered[i].Thumbnail,
			Purchasable: ProductPurchasable(&ordered[i]),
		}
		// The sort sentinel for unpriced products must not leak into
		// the response
		if min := MinVariantPrice(&ordered[i]); min != math.MaxInt64 {
			summaries[i].MinPrice = min
		}
	}

	return &ListResponse{
		Products: summaries,
		Count:    count,
		Page:     req.Page,
		Limit:    req.Limit,
		SortBy:   key,
	}, nil
}

// GetProduct fetches a product by handle and resolves the active variant.
// Precedence: an explicit variant ID (the v_id URL parameter) wins; otherwise
// the option selection is matched against the variant list. A nil selected
// variant with purchasable=false is the "selection incomplete" outcome, not
// an error.
func (s *Service) GetProduct(ctx context.Context, handle, variantID string, selection OptionSelection) (*ProductDetail, error) {
	product, err := s.client.GetProductByHandle(ctx, handle)
	if err != nil {
		return nil, err
	}

	selected := FindVariantByID(product.Variants, variantID)
	if selected == nil {
		selected = MatchVariant(product.Variants, selection)
	}

	purchasable := false
	if selected != nil {
		purchasable = VariantPurchasable(selected)
	}

	return &ProductDetail{
		Product:         product,
		SelectedVariant: selected,
		Purchasable:     purchasable,
	}, nil
}

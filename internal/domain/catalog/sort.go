// internal/domain/catalog/sort.go
package catalog

import (
	"math"
	"sort"

	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/pkg/money"
)

// SortKey identifies a product listing sort order
type SortKey string

const (
	SortCreatedAt   SortKey = "created_at"
	SortPublishedAt SortKey = "published_at"
	SortPriceAsc    SortKey = "price_asc"
	SortPriceDesc   SortKey = "price_desc"
)

// metadata key carrying the publish timestamp, set ad hoc by the CMS
const publishedAtKey = "published_at"

// ParseSortKey maps a query parameter to a SortKey, falling back to
// creation recency for unknown values.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortCreatedAt, SortPublishedAt, SortPriceAsc, SortPriceDesc:
		return SortKey(raw)
	default:
		return SortCreatedAt
	}
}

// MinVariantPrice returns the cheapest variant unit price of a product. A
// product with no priced variants reports the maximum amount so it sorts
// last in ascending order.
func MinVariantPrice(product *commerce.Product) money.Amount {
	min := money.Amount(math.MaxInt64)
	for i := range product.Variants {
		price := product.Variants[i].CalculatedPrice
		if price != nil && *price < min {
			min = *price
		}
	}
	return min
}

// SortProducts orders products for listing pages: available products always
// sort before unavailable ones, and within each partition a stable sort
// applies the requested key. Products with equal keys keep their relative
// input order, so re-sorting sorted output changes nothing.
func SortProducts(products []commerce.Product, key SortKey) []commerce.Product {
	sorted := make([]commerce.Product, len(products))
	copy(sorted, products)

	// Availability and minimum price are computed once per product to avoid
	// rescanning variants inside the comparator.
	available := make(map[string]bool, len(sorted))
	minPrice := make(map[string]money.Amount, len(sorted))
	for i := range sorted {
		available[sorted[i].ID] = ProductPurchasable(&sorted[i])
		minPrice[sorted[i].ID] = MinVariantPrice(&sorted[i])
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := &sorted[i], &sorted[j]

		if available[a.ID] != available[b.ID] {
			return available[a.ID]
		}

		switch key {
		case SortPriceAsc:
			return minPrice[a.ID] < minPrice[b.ID]
		case SortPriceDesc:
			return minPrice[a.ID] > minPrice[b.ID]
		case SortPublishedAt:
			// Absent publish timestamps read as the zero time, i.e. oldest
			return a.Metadata.Time(publishedAtKey).After(b.Metadata.Time(publishedAtKey))
		default:
			return a.CreatedAt.After(b.CreatedAt)
		}
	})

	return sorted
}

// internal/domain/catalog/stock.go
package catalog

import (
	"github.com/your-org/storefront-backend/internal/commerce"
)

// VariantPurchasable determines whether a single variant can be bought
// right now. Precedence, first match wins:
//  1. unmanaged inventory is always available
//  2. backorder permission overrides the recorded count
//  3. otherwise the recorded count decides; a nil count is zero, not unknown
func VariantPurchasable(variant *commerce.Variant) bool {
	if !variant.ManageInventory {
		return true
	}
	if variant.AllowBackorder {
		return true
	}
	if variant.InventoryQuantity == nil {
		return false
	}
	return *variant.InventoryQuantity > 0
}

// ProductPurchasable reports whether any variant of the product is
// purchasable. A product with no variant data is purchasable by default.
func ProductPurchasable(product *commerce.Product) bool {
	if len(product.Variants) == 0 {
		return true
	}
	for i := range product.Variants {
		if VariantPurchasable(&product.Variants[i]) {
			return true
		}
	}
	return false
}

// internal/domain/pricing/custom_options.go
package pricing

import (
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/pkg/money"
)

// metadata key carrying the add-on choices selected for a line item
const customOptionsKey = "custom_options"

// CustomOption is a merchant-defined add-on selected on a line item, e.g.
// gift wrap or an engraving. The adjustment is display-only; the backend
// already folded it into the line total.
type CustomOption struct {
	Title           string       `json:"title"`
	Value           string       `json:"value,omitempty"`
	PriceAdjustment money.Amount `json:"price_adjustment"`
}

// CustomOptionsFromMetadata reads the selected add-ons out of a line item's
// metadata bag. Entries that are not objects are skipped; a missing or
// malformed price_adjustment reads as zero, never as an error. Wire
// adjustments are major units, converted here like every backend price.
func CustomOptionsFromMetadata(m commerce.Metadata) []CustomOption {
	if m == nil {
		return nil
	}

	raw, ok := m[customOptionsKey].([]any)
	if !ok {
		return nil
	}

	options := make([]CustomOption, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		option := CustomOption{
			Title: stringField(fields, "title"),
			Value: stringField(fields, "value"),
		}
		if adj, ok := fields["price_adjustment"].(float64); ok {
			option.PriceAdjustment = money.FromMajorUnits(adj)
		}

		options = append(options, option)
	}

	if len(options) == 0 {
		return nil
	}
	return options
}

func stringField(fields map[string]any, key string) string {
	v, _ := fields[key].(string)
	return v
}

// internal/domain/pricing/calculator.go
package pricing

import (
	"math"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/pkg/money"
)

// metadata key carrying a per-unit compare-at price in minor units
const compareAtPriceKey = "compare_at_price"

// LineItemDisplay carries the display-only pricing for a cart or order line:
// the current total, an optional strike-through original, and the discount
// percentage for the badge. The backend's total stays authoritative; nothing
// here is ever used to compute an amount charged.
type LineItemDisplay struct {
	Total           money.Amount  `json:"total"`
	UnitPrice       money.Amount  `json:"unit_price"`
	OriginalTotal   *money.Amount `json:"original_total,omitempty"`
	DiscountPercent int           `json:"discount_percent,omitempty"`
	DiscountExact   float64       `json:"-"`
}

// Calculator derives display pricing for line items
type Calculator struct {
	logger *logrus.Logger
}

// NewCalculator creates a new display price calculator
func NewCalculator(logger *logrus.Logger) *Calculator {
	return &Calculator{logger: logger}
}

// ForLineItem decides what price to display for a line item. Decision order:
//  1. a backend original_total above total is a promotional discount
//  2. a variant metadata compare_at_price (minor units, per unit) above the
//     current total, scaled by quantity, is a compare-at discount
//  3. otherwise the total alone, no strike-through
//
// A missing or malformed compare_at_price is "no override", never zero and
// never an error.
func (c *Calculator) ForLineItem(item *commerce.LineItem) LineItemDisplay {
	c.checkUnitTotal(item)

	display := LineItemDisplay{
		Total:     item.Total,
		UnitPrice: item.UnitPrice,
	}

	if item.OriginalTotal > item.Total {
		original := item.OriginalTotal
		display.OriginalTotal = &original
		display.DiscountPercent, display.DiscountExact = discountPercent(original, item.Total)
		return display
	}

	if item.Variant != nil {
		if perUnit, ok := item.Variant.Metadata.MinorAmount(compareAtPriceKey); ok {
			compareAt := perUnit * money.Amount(item.Quantity)
			if compareAt > item.Total {
				display.OriginalTotal = &compareAt
				display.DiscountPercent, display.DiscountExact = discountPercent(compareAt, item.Total)
			}
		}
	}

	return display
}

// discountPercent computes (original-current)/original as a percentage,
// rounded to the nearest whole percent. The exact value is returned too for
// call sites that format their own precision.
func discountPercent(original, current money.Amount) (int, float64) {
	if original <= 0 {
		return 0, 0
	}
	exact := float64(original-current) / float64(original) * 100
	return int(math.Round(exact)), exact
}

// checkUnitTotal flags a line whose unit price times quantity disagrees with
// the backend total beyond rounding. Purely diagnostic: the discrepancy is
// logged, never corrected, and displayed totals are untouched.
func (c *Calculator) checkUnitTotal(item *commerce.LineItem) {
	if c.logger == nil || item.Quantity <= 0 {
		return
	}

	expected := item.UnitPrice * money.Amount(item.Quantity)
	diff := expected - item.Total
	if diff < 0 {
		diff = -diff
	}
	// One minor unit per line of rounding slack
	if diff > money.Amount(item.Quantity) {
		c.logger.WithFields(logrus.Fields{
			"line_item_id": item.ID,
			"unit_price":   item.UnitPrice,
			"quantity":     item.Quantity,
			"total":        item.Total,
		}).Warn("Line item total disagrees with unit price times quantity")
	}
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/commerce"
	"github.com/your-org/storefront-backend/internal/pkg/money"
)

func TestCustomOptionsFromMetadata(t *testing.T) {
	m := commerce.Metadata{
		"custom_options": []any{
			map[string]any{
				"title":            "Gift wrap",
				"price_adjustment": float64(2.50),
			},
			map[string]any{
				"title":            "Engraving",
				"value":            "Happy Birthday",
				"price_adjustment": float64(10),
			},
		},
	}

	options := CustomOptionsFromMetadata(m)

	require.Len(t, options, 2)
	assert.Equal(t, "Gift wrap", options[0].Title)
	assert.Equal(t, money.Amount(250), options[0].PriceAdjustment)
	assert.Equal(t, "Engraving", options[1].Title)
	assert.Equal(t, "Happy Birthday", options[1].Value)
	assert.Equal(t, money.Amount(1000), options[1].PriceAdjustment)
}

func TestCustomOptionsMalformedAdjustmentIsZero(t *testing.T) {
	m := commerce.Metadata{
		"custom_options": []any{
			map[string]any{
				"title":            "Gift wrap",
				"price_adjustment": "two dollars",
			},
			map[string]any{
				"title": "Plain add-on",
			},
		},
	}

	options := CustomOptionsFromMetadata(m)

	require.Len(t, options, 2)
	assert.Zero(t, options[0].PriceAdjustment)
	assert.Zero(t, options[1].PriceAdjustment)
}

func TestCustomOptionsAbsentOrMalformed(t *testing.T) {
	assert.Nil(t, CustomOptionsFromMetadata(nil))
	assert.Nil(t, CustomOptionsFromMetadata(commerce.Metadata{}))
	assert.Nil(t, CustomOptionsFromMetadata(commerce.Metadata{"custom_options": "gift wrap"}))
	// Non-object entries are skipped, not errors
	assert.Nil(t, CustomOptionsFromMetadata(commerce.Metadata{"custom_options": []any{"gift wrap", 7}}))
}

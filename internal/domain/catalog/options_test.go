package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/commerce"
)

func variantWith(id string, options ...commerce.OptionValue) commerce.Variant {
	return commerce.Variant{ID: id, Options: options}
}

func TestBuildOptionKeyMap(t *testing.T) {
	variant := variantWith("v1",
		commerce.OptionValue{OptionID: "opt_color", Value: "red"},
		commerce.OptionValue{OptionID: "opt_size", Value: "M"},
	)

	keyMap := BuildOptionKeyMap(&variant)

	assert.Equal(t, OptionSelection{"opt_color": "red", "opt_size": "M"}, keyMap)
}

func TestBuildOptionKeyMap_Empty(t *testing.T) {
	variant := commerce.Variant{ID: "v1"}

	keyMap := BuildOptionKeyMap(&variant)

	assert.NotNil(t, keyMap)
	assert.Empty(t, keyMap)
}

func TestBuildOptionKeyMap_OrderIrrelevant(t *testing.T) {
	a := variantWith("v1",
		commerce.OptionValue{OptionID: "opt_color", Value: "red"},
		commerce.OptionValue{OptionID: "opt_size", Value: "M"},
	)
	b := variantWith("v1",
		commerce.OptionValue{OptionID: "opt_size", Value: "M"},
		commerce.OptionValue{OptionID: "opt_color", Value: "red"},
	)

	assert.Equal(t, BuildOptionKeyMap(&a), BuildOptionKeyMap(&b))
}

func TestMatchVariant_RoundTripIdentity(t *testing.T) {
	variants := []commerce.Variant{
		variantWith("v1",
			commerce.OptionValue{OptionID: "opt_color", Value: "red"},
			commerce.OptionValue{OptionID: "opt_size", Value: "S"},
		),
		variantWith("v2",
			commerce.OptionValue{OptionID: "opt_color", Value: "red"},
			commerce.OptionValue{OptionID: "opt_size", Value: "M"},
		),
		variantWith("v3",
			commerce.OptionValue{OptionID: "opt_color", Value: "blue"},
			commerce.OptionValue{OptionID: "opt_size", Value: "M"},
		),
	}

	// Every variant's own key-map must resolve back to that variant
	for i := range variants {
		matched := MatchVariant(variants, BuildOptionKeyMap(&variants[i]))
		require.NotNil(t, matched)
		assert.Equal(t, variants[i].ID, matched.ID)
	}
}

func TestMatchVariant_RejectsPartialSelection(t *testing.T) {
	variants := []commerce.Variant{
		variantWith("v1",
			commerce.OptionValue{OptionID: "opt_color", Value: "red"},
			commerce.OptionValue{OptionID: "opt_size", Value: "S"},
		),
		variantWith("v2",
			commerce.OptionValue{OptionID: "opt_color", Value: "blue"},
			commerce.OptionValue{OptionID: "opt_size", Value: "S"},
		),
	}

	tests := []struct {
		name      string
		selection OptionSelection
	}{
		{"missing option key", OptionSelection{"opt_color": "red"}},
		{"unset option value", OptionSelection{"opt_color": "red", "opt_size": ""}},
		{"unknown value", OptionSelection{"opt_color": "green", "opt_size": "S"}},
		{"extra option", OptionSelection{"opt_color": "red", "opt_size": "S", "opt_material": "wool"}},
		{"nil selection", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Nil(t, MatchVariant(variants, tc.selection))
		})
	}
}

func TestMatchVariant_SingleVariantAutoResolves(t *testing.T) {
	variants := []commerce.Variant{
		variantWith("v1", commerce.OptionValue{OptionID: "opt_size", Value: "OS"}),
	}

	matched := MatchVariant(variants, nil)

	require.NotNil(t, matched)
	assert.Equal(t, "v1", matched.ID)
}

func TestMatchVariant_EmptyVariantList(t *testing.T) {
	assert.Nil(t, MatchVariant(nil, OptionSelection{"opt_size": "M"}))
}

func TestFindVariantByID(t *testing.T) {
	variants := []commerce.Variant{
		variantWith("v1"),
		variantWith("v2"),
	}

	found := FindVariantByID(variants, "v2")
	require.NotNil(t, found)
	assert.Equal(t, "v2", found.ID)

	assert.Nil(t, FindVariantByID(variants, "v9"))
	assert.Nil(t, FindVariantByID(variants, ""))
}

func TestOptionSelectionComplete(t *testing.T) {
	assert.True(t, OptionSelection{"opt_color": "red"}.Complete())
	assert.True(t, OptionSelection{}.Complete())
	assert.False(t, OptionSelection{"opt_color": "red", "opt_size": ""}.Complete())
}

// internal/domain/catalog/options.go
package catalog

import (
	"github.com/your-org/storefront-backend/internal/commerce"
)

// OptionSelection maps option IDs to chosen values. A missing or empty
// value means the option has not been chosen yet.
type OptionSelection map[string]string

// BuildOptionKeyMap converts a variant's option list into a normalized
// option_id -> value mapping. Input order is irrelevant; an empty or absent
// option list yields an empty map.
func BuildOptionKeyMap(variant *commerce.Variant) OptionSelection {
	keyMap := make(OptionSelection, len(variant.Options))
	for _, opt := range variant.Options {
		keyMap[opt.OptionID] = opt.Value
	}
	return keyMap
}

// Complete reports whether every option in the selection has a concrete
// value chosen.
func (s OptionSelection) Complete() bool {
	for _, value := range s {
		if value == "" {
			return false
		}
	}
	return true
}

// equals compares two selections for exact equality of key sets and values.
func (s OptionSelection) equals(other OptionSelection) bool {
	if len(s) != len(other) {
		return false
	}
	for key, value := range s {
		if value == "" {
			// An unchosen option never matches a concrete variant value
			return false
		}
		if other[key] != value {
			return false
		}
	}
	return true
}

// MatchVariant finds the variant whose option key-map is structurally equal
// to the selection. Matching is full-map equality, never partial: a
// selection missing one required option matches nothing. A nil return is a
// normal outcome meaning "selection incomplete or invalid"; callers disable
// purchase affordances instead of treating it as an error.
//
// A product with exactly one variant auto-resolves to it, since there is
// nothing to disambiguate.
func MatchVariant(variants []commerce.Variant, selection OptionSelection) *commerce.Variant {
	if len(variants) == 0 {
		return nil
	}
	if len(variants) == 1 {
		return &variants[0]
	}
	if !selection.Complete() {
		return nil
	}

	for i := range variants {
		keyMap := BuildOptionKeyMap(&variants[i])
		if selection.equals(keyMap) {
			return &variants[i]
		}
	}

	return nil
}

// FindVariantByID resolves a variant directly by its ID, used to pre-seed
// selection state from the v_id URL parameter.
func FindVariantByID(variants []commerce.Variant, variantID string) *commerce.Variant {
	if variantID == "" {
		return nil
	}
	for i := range variants {
		if variants[i].ID == variantID {
			return &variants[i]
		}
	}
	return nil
}

// internal/pkg/money/money.go
package money

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Amount is a monetary amount in integer minor units (cents). All prices
// inside the service are carried in minor units; conversion from the major
// units used on the commerce API wire happens once, at decode time.
type Amount int64

// FromMajorUnits converts a major-unit amount (e.g. 12.99) to minor units,
// rounding to the nearest cent.
func FromMajorUnits(v float64) Amount {
	return Amount(math.Round(v * 100))
}

// MajorUnits returns the amount in major units for display formatting.
func (a Amount) MajorUnits() float64 {
	return float64(a) / 100
}

// Format renders the amount as a plain decimal string, e.g. "12.99".
func (a Amount) Format() string {
	return strconv.FormatFloat(a.MajorUnits(), 'f', 2, 64)
}

// MarshalJSON encodes the amount in major units, matching the commerce API
// wire convention.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.MajorUnits())
}

// UnmarshalJSON decodes a major-unit JSON number into minor units.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*a = 0
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid monetary amount: %w", err)
	}

	*a = FromMajorUnits(v)
	return nil
}

// FromMetadataValue coerces a loosely-typed metadata value that is already
// expressed in minor units (the compare_at_price convention) into an Amount.
// Returns false for absent, malformed, or non-positive values; callers treat
// that as "no override", never as zero.
func FromMetadataValue(v any) (Amount, bool) {
	switch value := v.(type) {
	case float64:
		if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
			return 0, false
		}
		return Amount(math.Round(value)), true
	case int64:
		if value <= 0 {
			return 0, false
		}
		return Amount(value), true
	case int:
		if value <= 0 {
			return 0, false
		}
		return Amount(value), true
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, false
		}
		return FromMetadataValue(parsed)
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false
		}
		return FromMetadataValue(parsed)
	default:
		return 0, false
	}
}

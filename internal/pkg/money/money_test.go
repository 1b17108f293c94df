package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMajorUnits(t *testing.T) {
	assert.Equal(t, Amount(1299), FromMajorUnits(12.99))
	assert.Equal(t, Amount(1000), FromMajorUnits(10))
	// Floating point representation must round, not truncate
	assert.Equal(t, Amount(1005), FromMajorUnits(10.05))
	assert.Equal(t, Amount(0), FromMajorUnits(0))
}

func TestAmountJSONRoundTrip(t *testing.T) {
	var decoded struct {
		Total Amount `json:"total"`
	}
	// Wire values are major units
	require.NoError(t, json.Unmarshal([]byte(`{"total": 15.00}`), &decoded))
	assert.Equal(t, Amount(1500), decoded.Total)

	encoded, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total": 15}`, string(encoded))
}

func TestAmountUnmarshalNull(t *testing.T) {
	var a Amount
	require.NoError(t, a.UnmarshalJSON([]byte("null")))
	assert.Equal(t, Amount(0), a)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "10.00", Amount(1000).Format())
	assert.Equal(t, "0.05", Amount(5).Format())
}

func TestFromMetadataValue(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   Amount
		wantOK bool
	}{
		{"float", float64(1000), 1000, true},
		{"int", 2500, 2500, true},
		{"int64", int64(99), 99, true},
		{"numeric string", "1500", 1500, true},
		{"json number", json.Number("750"), 750, true},
		{"zero", float64(0), 0, false},
		{"negative", float64(-10), 0, false},
		{"garbage string", "ten dollars", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := FromMetadataValue(tc.value)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

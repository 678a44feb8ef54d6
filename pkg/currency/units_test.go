package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponent(t *testing.T) {
	assert.Equal(t, int32(0), Exponent("JPY"))
	assert.Equal(t, int32(0), Exponent("KRW"))
	assert.Equal(t, int32(3), Exponent("BHD"))
	assert.Equal(t, int32(3), Exponent("KWD"))
	assert.Equal(t, int32(2), Exponent("USD"))
	// Unlisted codes fall back to two decimals.
	assert.Equal(t, int32(2), Exponent("XYZ"))
}

func TestToBaseUnitString(t *testing.T) {
	tests := []struct {
		name     string
		minor    int64
		code     string
		expected string
	}{
		{"USD cents", 1050, "USD", "10.50"},
		{"USD sub-dollar", 99, "USD", "0.99"},
		{"USD zero", 0, "USD", "0.00"},
		{"JPY has no minor unit", 1050, "JPY", "1050"},
		{"KWD three decimals", 1050, "KWD", "1.050"},
		{"unknown currency defaults to two", 250, "XYZ", "2.50"},
		{"large amount", 123456789, "EUR", "1234567.89"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToBaseUnitString(tt.minor, tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestToBaseUnitStringRejectsNegative(t *testing.T) {
	_, err := ToBaseUnitString(-1, "USD")
	assert.Error(t, err)
}

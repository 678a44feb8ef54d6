// Package currency renders minor-unit amounts in a currency's base
// unit (dollars rather than cents) as the decimal string format most
// processor APIs expect.
package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Minor-unit exponents that differ from the ISO 4217 default of 2.
var exponents = map[string]int32{
	// Zero-decimal currencies
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "MGA": 0, "PYG": 0, "RWF": 0, "UGX": 0, "VND": 0,
	"VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	// Three-decimal currencies
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// Exponent returns the minor-unit exponent for an ISO 4217 currency
// code. Unlisted currencies use the default of 2.
func Exponent(code string) int32 {
	if exp, ok := exponents[code]; ok {
		return exp
	}
	return 2
}

// ToBaseUnitString converts a minor-unit amount to a base-unit decimal
// string, e.g. (1050, "USD") -> "10.50" and (1050, "JPY") -> "1050".
func ToBaseUnitString(minor int64, code string) (string, error) {
	if minor < 0 {
		return "", fmt.Errorf("amount must not be negative: %d", minor)
	}
	exp := Exponent(code)
	return decimal.New(minor, -exp).StringFixed(exp), nil
}

// Package amounts renders crypto amounts as fixed-point strings with
// a per-asset number of decimal places.
package amounts

import (
	"strings"

	"github.com/shopspring/decimal"
)

const defaultPrecision = 8

var precisionBySymbol = map[string]int32{
	"USDC": 2,
	"USDT": 2,
	"XRP":  4,
	"ADA":  4,
	"DOGE": 4,
	"SOL":  4,
	"LTC":  4,
}

// Precision returns the number of decimal places used for the given symbol.
func Precision(symbol string) int32 {
	if p, ok := precisionBySymbol[strings.ToUpper(symbol)]; ok {
		return p
	}
	return defaultPrecision
}

// Format renders amount with exactly Precision(symbol) digits after the
// decimal point. Excess digits are truncated toward zero, never rounded up,
// so a USD price is never shown buying more crypto than it does.
func Format(symbol string, amount decimal.Decimal) string {
	precision := Precision(symbol)
	return amount.Truncate(precision).StringFixed(precision)
}

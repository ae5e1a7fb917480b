package model

import "github.com/shopspring/decimal"

// ParseAmount converts a decimal string amount ("99.00") to the float
// value the ShipStation API expects. Shared by the order mapper for
// totals and unit prices. Empty or unparseable input yields 0 rather
// than an error: a malformed amount must not abort the whole run.
// Examples: "99.00" → 99, "1234.56" → 1234.56, "" → 0
func ParseAmount(s string) float64 {
	if s == "" {
		return 0
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return f
}

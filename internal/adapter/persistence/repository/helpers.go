package repository

import "github.com/shopspring/decimal"

// parseAmount reads a stored amount. Stored values were written by this package, so
// a parse failure means a corrupt row and reads as zero.
func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

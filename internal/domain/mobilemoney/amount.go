package mobilemoney

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingAmount  = errors.New("amount is required")
	ErrInvalidAmount  = errors.New("amount must be a number")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// ParseAmount parses a user-entered amount. Thousands separators and a leading
// currency code are tolerated ("GHS 1,250.00").
func ParseAmount(input string) (decimal.Decimal, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return decimal.Zero, ErrMissingAmount
	}
	s = strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(s), "GHS"))
	s = strings.ReplaceAll(s, ",", "")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	return d, nil
}

// FormatGatewayAmount renders an amount with exactly two decimals.
func FormatGatewayAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

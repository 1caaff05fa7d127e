package mobilemoney

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	valid := map[string]string{
		"50":           "50",
		" 12.5 ":       "12.5",
		"GHS 1,250.00": "1250",
		"ghs20":        "20",
		"0":            "0",
	}
	for in, want := range valid {
		got, err := ParseAmount(in)
		require.NoError(t, err, "input %q", in)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "input %q got %s", in, got)
	}

	_, err := ParseAmount("  ")
	assert.ErrorIs(t, err, ErrMissingAmount)
	_, err = ParseAmount("ten")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = ParseAmount("-1")
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestFormatGatewayAmount(t *testing.T) {
	assert.Equal(t, "50.00", FormatGatewayAmount(decimal.RequireFromString("50")))
	assert.Equal(t, "12.50", FormatGatewayAmount(decimal.RequireFromString("12.5")))
	assert.Equal(t, "0.10", FormatGatewayAmount(decimal.RequireFromString("0.1")))
}

package mobilemoney

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePhone(t *testing.T) {
	n := Normalizer{}
	cases := map[string]string{
		"024 123 4567":     "+233241234567",
		"0241234567":       "+233241234567",
		"241234567":        "+233241234567",
		"233241234567":     "+233241234567",
		"+233 24 123 4567": "+233241234567",
		"(024) 123-4567":   "+233241234567",
		"12345":            "12345",
		"":                 "",
		"   ":              "",
		"+44 20 7946 0958": "+442079460958",
	}
	for in, want := range cases {
		assert.Equal(t, want, n.NormalizePhone(in), "input %q", in)
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{
		"024 123 4567", "241234567", "233241234567", "+233241234567", "12345", "0",
		"00233241234567", "+", "abc", "0 0 0", "+233 0", "2332", "055-555-5555",
	}
	for _, n := range []Normalizer{{}, NewNormalizer("+234")} {
		for _, in := range inputs {
			once := n.NormalizePhone(in)
			assert.Equal(t, once, n.NormalizePhone(once), "country %s input %q", n.country(), in)
		}
	}
}

func TestValidatePaymentPhone(t *testing.T) {
	n := Normalizer{}

	phone, err := n.ValidatePaymentPhone("024 123 4567")
	require.NoError(t, err)
	assert.Equal(t, "+233241234567", phone)

	for _, bad := range []string{"12345", "", "02412345678", "+44 20 7946 0958", "+2332412345"} {
		_, err := n.ValidatePaymentPhone(bad)
		assert.ErrorIs(t, err, ErrInvalidPaymentPhone, "input %q", bad)
	}
}

func TestValidatePaymentPhone_OtherCountry(t *testing.T) {
	n := NewNormalizer("234")

	phone, err := n.ValidatePaymentPhone("080 312 3456")
	require.NoError(t, err)
	assert.Equal(t, "+234803123456", phone)

	_, err = n.ValidatePaymentPhone("+233241234567")
	assert.ErrorIs(t, err, ErrInvalidPaymentPhone)
}

func TestToGatewayAccountNumber(t *testing.T) {
	n := Normalizer{}
	cases := map[string]string{
		"+233241234567":  "233241234567",
		"0241234567":     "233241234567",
		"00233241234567": "233241234567",
		"241234567":      "233241234567",
		"024-123-4567":   "233241234567",
	}
	for in, want := range cases {
		assert.Equal(t, want, n.ToGatewayAccountNumber(in), "input %q", in)
	}
}

func TestFormatPhoneForDisplay(t *testing.T) {
	n := Normalizer{}
	cases := map[string]string{
		"0241234567":    "024 123 4567",
		"+233241234567": "+233 24 123 4567",
		"024":           "024",
		"0241":          "024 1",
		"":              "",
		"241234567":     "24 123 4567",
	}
	for in, want := range cases {
		assert.Equal(t, want, n.FormatPhoneForDisplay(in), "input %q", in)
	}
}

func TestCountDigits(t *testing.T) {
	assert.Equal(t, 10, CountDigits("024 123-4567"))
	assert.Equal(t, 0, CountDigits("+ ()"))
}

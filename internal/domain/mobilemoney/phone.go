// Package mobilemoney converts user-entered phone numbers, network selections and
// amounts into the payment gateway's wire format.
package mobilemoney

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultCountryCode is the dialing prefix of the market the gateway serves.
const DefaultCountryCode = "233"

// NationalNumberLength is the number of digits after the country prefix.
const NationalNumberLength = 9

var ErrInvalidPaymentPhone = errors.New("phone number is not a valid mobile money number")

// Normalizer holds the market settings used for normalization.
// The zero value uses DefaultCountryCode and DefaultNetwork.
type Normalizer struct {
	CountryCode    string
	DefaultNetwork string
}

func NewNormalizer(countryCode string) Normalizer {
	return Normalizer{CountryCode: strings.TrimPrefix(strings.TrimSpace(countryCode), "+")}
}

func (n Normalizer) country() string {
	if n.CountryCode == "" {
		return DefaultCountryCode
	}
	return n.CountryCode
}

// NormalizePhone converts free-text input into +<country><national number> form.
//
// Only digits survive, plus a leading '+' when the input started with one.
// A leading 0 is replaced with the country prefix, a bare national number gets the
// prefix prepended and a number that already starts with the country code gets the
// '+' back. Anything else is returned as digits for the caller to reject.
//
// NormalizePhone(NormalizePhone(x)) == NormalizePhone(x) for every x.
func (n Normalizer) NormalizePhone(input string) string {
	input = strings.TrimSpace(input)
	digits := digitsOnly(input)
	if strings.HasPrefix(input, "+") {
		return "+" + digits
	}

	cc := n.country()
	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, "0"):
		return "+" + cc + digits[1:]
	case len(digits) == NationalNumberLength:
		return "+" + cc + digits
	case len(digits) == len(cc)+NationalNumberLength && strings.HasPrefix(digits, cc):
		return "+" + digits
	}
	return digits
}

// ValidatePaymentPhone normalizes input and checks it strictly against
// +<country><9 digits>. Payment numbers are rejected, never coerced.
func (n Normalizer) ValidatePaymentPhone(input string) (string, error) {
	phone := n.NormalizePhone(input)
	if !n.strictPattern().MatchString(phone) {
		return "", ErrInvalidPaymentPhone
	}
	return phone, nil
}

// ToGatewayAccountNumber renders a phone as the digits-only, country-prefixed account
// number the initiation payload expects. It does not depend on NormalizePhone.
func (n Normalizer) ToGatewayAccountNumber(phone string) string {
	digits := digitsOnly(phone)
	cc := n.country()
	switch {
	case strings.HasPrefix(digits, "00"+cc):
		return digits[2:]
	case strings.HasPrefix(digits, "0"):
		return cc + digits[1:]
	case len(digits) == NationalNumberLength:
		return cc + digits
	}
	return digits
}

// FormatPhoneForDisplay groups a phone number for echoing back while the user types.
// It is permissive: partial input is formatted as far as it goes.
func (n Normalizer) FormatPhoneForDisplay(input string) string {
	input = strings.TrimSpace(input)
	digits := digitsOnly(input)
	if digits == "" {
		return ""
	}

	cc := n.country()
	prefix := ""
	national := digits
	switch {
	case strings.HasPrefix(input, "+") && strings.HasPrefix(digits, cc):
		prefix = "+" + cc + " "
		national = digits[len(cc):]
	case strings.HasPrefix(digits, "0"):
		prefix = "0"
		national = digits[1:]
	}

	var b strings.Builder
	b.WriteString(prefix)
	for i, r := range national {
		if i == 2 || i == 5 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// CountDigits returns how many digits input contains.
func CountDigits(input string) int {
	return len(digitsOnly(input))
}

func (n Normalizer) strictPattern() *regexp.Regexp {
	cc := n.country()
	if cc == DefaultCountryCode {
		return defaultStrictPhone
	}
	return regexp.MustCompile(`^\+` + regexp.QuoteMeta(cc) + `\d{9}$`)
}

var defaultStrictPhone = regexp.MustCompile(`^\+` + DefaultCountryCode + `\d{9}$`)

func digitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

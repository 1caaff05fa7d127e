package gatewayresponse

import (
	"testing"

	"ticket_checkout/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestInterpret(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		verdict entities.Verdict
		reason  string
	}{
		{
			name:    "declined message object",
			raw:     `{"message":{"description":"Payment declined by subscriber"}}`,
			verdict: entities.VerdictFailure,
			reason:  "Payment declined by subscriber",
		},
		{
			name:    "name enquiry data status",
			raw:     `{"data":{"nameEnquiry":{"data":{"status":"success"}}}}`,
			verdict: entities.VerdictSuccess,
			reason:  "success",
		},
		{
			name:    "collection action code",
			raw:     `{"data":{"collection":{"data":{"actioncode":"000"}}}}`,
			verdict: entities.VerdictSuccess,
			reason:  "000",
		},
		{
			name:    "negative code is a failure",
			raw:     `{"data":{"nameEnquiry":{"data":{"actcode":"-200"}}}}`,
			verdict: entities.VerdictFailure,
			reason:  "-200",
		},
		{
			name:    "numeric code",
			raw:     `{"code":200}`,
			verdict: entities.VerdictSuccess,
			reason:  "200",
		},
		{
			name:    "failure anywhere wins over success",
			raw:     `{"message":"Transaction successful","data":{"collection":{"message":{"status":"failed"}}}}`,
			verdict: entities.VerdictFailure,
			reason:  "Transaction successful",
		},
		{
			name:    "pending status",
			raw:     `{"status":"PENDING"}`,
			verdict: entities.VerdictInconclusive,
			reason:  "PENDING",
		},
		{
			name:    "top level string",
			raw:     `"Insufficient funds"`,
			verdict: entities.VerdictFailure,
			reason:  "Insufficient funds",
		},
		{
			name:    "empty object",
			raw:     `{}`,
			verdict: entities.VerdictInconclusive,
		},
		{
			name:    "not json",
			raw:     `<html>bad gateway</html>`,
			verdict: entities.VerdictInconclusive,
		},
		{
			name:    "mistyped fields are skipped",
			raw:     `{"message":["a"],"data":{"collection":"oops"},"description":null}`,
			verdict: entities.VerdictInconclusive,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Interpret([]byte(tc.raw))
			assert.Equal(t, tc.verdict, got.Verdict)
			assert.Equal(t, tc.reason, got.Reason)
		})
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, entities.VerdictSuccess, Classify("200"))
	assert.Equal(t, entities.VerdictFailure, Classify("-200"))
	assert.Equal(t, entities.VerdictInconclusive, Classify("1200"))
	assert.Equal(t, entities.VerdictSuccess, Classify("", "  Completed "))
	assert.Equal(t, entities.VerdictFailure, Classify("paid", "expired"))
	assert.Equal(t, entities.VerdictInconclusive, Classify())
}

func TestCandidateReferences(t *testing.T) {
	t.Run("priority order with duplicates removed", func(t *testing.T) {
		doc := Parse([]byte(`{
			"nameEnquiryTransactionId": "NE1",
			"transactionId": "TX1",
			"data": {"collection": {"transactionId": "COL1"}, "nameEnquiry": {"transactionId": "NE1"}},
			"reference": "TX1"
		}`))
		assert.Equal(t, []string{"COL1", "TX1", "NE1"}, CandidateReferences(doc, "reg-1"))
	})

	t.Run("snake case spellings", func(t *testing.T) {
		doc := Parse([]byte(`{"transaction_id":"TX9","collection_transaction_id":"COL9"}`))
		assert.Equal(t, []string{"COL9", "TX9"}, CandidateReferences(doc, "reg-1"))
	})

	t.Run("fallback when none present", func(t *testing.T) {
		assert.Equal(t, []string{"reg-1"}, CandidateReferences(Parse([]byte(`{"status":"ok"}`)), "reg-1"))
		assert.Equal(t, []string{"reg-1"}, CandidateReferences(Parse(nil), "reg-1"))
	})
}

func TestDocument_Lookup(t *testing.T) {
	doc := Parse([]byte(`{"a":{"b":{"c":"000"}},"n":null}`))

	v, ok := doc.String("a", "b", "c")
	assert.True(t, ok)
	assert.Equal(t, "000", v)

	_, ok = doc.String("a", "b")
	assert.False(t, ok)
	_, ok = doc.String("n")
	assert.False(t, ok)
	_, ok = doc.Lookup("a", "x", "c")
	assert.False(t, ok)
	assert.True(t, doc.IsObject())
	assert.False(t, Parse([]byte(`[1]`)).IsObject())
}

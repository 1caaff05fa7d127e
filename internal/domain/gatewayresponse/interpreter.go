package gatewayresponse

import (
	"strings"

	"ticket_checkout/internal/domain/entities"
)

var successKeywords = []string{
	"success",
	"completed",
	"paid",
	"confirmed",
	"transaction completed",
	"transaction successful",
}

var failureKeywords = []string{
	"failed",
	"declined",
	"cancelled",
	"error",
	"could not process",
	"insufficient",
	"timeout",
	"expired",
}

// Status codes only count when they are the whole value, so "-200" never reads as "200".
var (
	successCodes = []string{"200", "000"}
	failureCodes = []string{"-200"}
)

// Interpretation is the classification of one gateway response.
type Interpretation struct {
	Verdict entities.Verdict
	Reason  string
}

// Interpret classifies a raw gateway response.
func Interpret(raw []byte) Interpretation {
	return InterpretDocument(Parse(raw))
}

// InterpretDocument classifies a decoded response.
//
// The reason is the first non-empty string along Strategies. The verdict comes from
// every string on those paths: any failure keyword wins, then any success keyword,
// otherwise the response is inconclusive.
func InterpretDocument(doc Document) Interpretation {
	if s, ok := doc.root.(string); ok {
		doc = FromValue(map[string]any{"message": s})
	}

	var (
		reason string
		texts  []string
	)
	for _, st := range Strategies {
		if reason == "" {
			reason, _ = st.Reason(doc)
		}
		texts = append(texts, st.Texts(doc)...)
	}

	return Interpretation{Verdict: Classify(texts...), Reason: reason}
}

// Classify applies the keyword heuristic to a set of strings.
func Classify(texts ...string) entities.Verdict {
	success := false
	for _, t := range texts {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if matches(t, failureKeywords, failureCodes) {
			return entities.VerdictFailure
		}
		if matches(t, successKeywords, successCodes) {
			success = true
		}
	}
	if success {
		return entities.VerdictSuccess
	}
	return entities.VerdictInconclusive
}

func matches(text string, keywords, codes []string) bool {
	for _, c := range codes {
		if text == c {
			return true
		}
	}
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

package gatewayresponse

// Strategy is one place in a response where the gateway may put its outcome.
type Strategy struct {
	Name  string
	Paths [][]string
}

// Texts returns every non-empty string found at the strategy's paths, in order.
func (s Strategy) Texts(doc Document) []string {
	var out []string
	for _, p := range s.Paths {
		if v, ok := doc.String(p...); ok {
			out = append(out, v)
		}
	}
	return out
}

// Reason returns the first non-empty string found at the strategy's paths.
func (s Strategy) Reason(doc Document) (string, bool) {
	for _, p := range s.Paths {
		if v, ok := doc.String(p...); ok {
			return v, true
		}
	}
	return "", false
}

// Strategies lists the outcome locations in the order they are searched.
//
// A top-level message that is an object is covered by the second entry: doc.String
// skips non-scalar values, so the first entry falls through to it.
var Strategies = []Strategy{
	{Name: "top-level text", Paths: [][]string{{"message"}, {"description"}, {"error"}}},
	{Name: "message object", Paths: [][]string{{"message", "description"}, {"message", "status"}}},
	{Name: "collection message", Paths: [][]string{
		{"data", "collection", "message", "description"},
		{"data", "collection", "message", "status"},
	}},
	{Name: "collection data", Paths: [][]string{
		{"data", "collection", "data", "description"},
		{"data", "collection", "data", "status"},
		{"data", "collection", "data", "actioncode"},
	}},
	{Name: "name enquiry message", Paths: [][]string{
		{"data", "nameEnquiry", "message", "description"},
		{"data", "nameEnquiry", "message", "status"},
	}},
	{Name: "name enquiry data", Paths: [][]string{
		{"data", "nameEnquiry", "data", "description"},
		{"data", "nameEnquiry", "data", "status"},
		{"data", "nameEnquiry", "data", "actcode"},
		{"data", "nameEnquiry", "data", "actioncode"},
	}},
	// Plain verification responses carry only a top-level status or code.
	{Name: "top-level status", Paths: [][]string{{"status"}, {"code"}, {"responseCode"}}},
}

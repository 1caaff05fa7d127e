package gatewayresponse

// referenceFields lists where an initiation response may carry a transaction
// reference, highest priority first. Each entry groups the spellings seen for one field.
var referenceFields = [][][]string{
	{{"collectionTransactionId"}, {"collection_transaction_id"}, {"data", "collection", "transactionId"}},
	{{"transactionId"}, {"transaction_id"}},
	{{"nameEnquiryTransactionId"}, {"name_enquiry_transaction_id"}, {"data", "nameEnquiry", "transactionId"}},
	{{"reference"}, {"ref"}},
}

// CandidateReferences extracts the transaction references of an initiation response,
// de-duplicated in first-seen priority order. fallback is returned alone when the
// response carries none.
func CandidateReferences(doc Document, fallback string) []string {
	var refs []string
	seen := make(map[string]struct{})
	for _, group := range referenceFields {
		for _, path := range group {
			v, ok := doc.String(path...)
			if !ok {
				continue
			}
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			refs = append(refs, v)
		}
	}
	if len(refs) == 0 {
		return []string{fallback}
	}
	return refs
}

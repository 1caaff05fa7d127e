package payments

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync/atomic"
	"time"

	"ticket_checkout/internal/usecase/interfaces"
)

// MockGateway stands in for the real gateway in local runs. Initiation returns two
// references and every verification reports success.
type MockGateway struct {
	seq atomic.Int64
}

var _ interfaces.IPaymentGateway = (*MockGateway)(nil)

func NewMockGateway() *MockGateway {
	log.Printf("[payment][gateway] mock mode enabled")
	return &MockGateway{}
}

func (g *MockGateway) Initiate(_ context.Context, req interfaces.InitiationRequest) (json.RawMessage, error) {
	n := g.seq.Add(1)
	id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10) + "-" + strconv.FormatInt(n, 10)
	resp := map[string]any{
		"collectionTransactionId": "COL" + id,
		"transactionId":           "TX" + id,
		"message":                 "Request accepted for processing",
		"data": map[string]any{
			"collection": map[string]any{
				"data": map[string]any{"status": "pending", "amount": req.Amount, "network": req.Network},
			},
		},
	}
	log.Printf("[payment][gateway] mock initiate transaction_id=TX%s", id)
	return json.Marshal(resp)
}

func (g *MockGateway) Verify(_ context.Context, reference string) (json.RawMessage, error) {
	log.Printf("[payment][gateway] mock verify reference=%s", reference)
	return json.Marshal(map[string]any{
		"status":      "success",
		"description": "Transaction successful",
		"reference":   reference,
	})
}

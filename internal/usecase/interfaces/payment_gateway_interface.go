package interfaces

import (
	"context"
	"encoding/json"
)

// InitiationRequest is the body of the gateway's collection (initiation) call.
type InitiationRequest struct {
	AccountNumber string `json:"accountNumber"`
	Amount        string `json:"amount"`
	Narration     string `json:"narration"`
	Network       string `json:"network"`
}

// IPaymentGateway abstracts the mobile-money payment gateway.
//
// Both calls return the raw response body; interpreting it is the caller's job because
// the gateway's schema varies by network. Initiate fails for any non-2xx response.
// Verify fails only when no variant of the verification call produced a usable body.
type IPaymentGateway interface {
	Initiate(ctx context.Context, req InitiationRequest) (json.RawMessage, error)
	Verify(ctx context.Context, reference string) (json.RawMessage, error)
}

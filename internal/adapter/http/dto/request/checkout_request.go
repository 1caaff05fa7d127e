package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"ticket_checkout/internal/usecase"
)

var (
	ErrEmptyConfirmationPayload = errors.New("confirmation payload cannot be empty")
	ErrInvalidConfirmationJSON  = errors.New("confirmation payload is not valid json")
)

// Amount accepts the ticket price as a JSON string ("50.00") or number (50).
type Amount string

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*a = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*a = Amount(n.String())
	return nil
}

// CheckoutRequest is the checkout form submitted for one event. Field rules are
// enforced by the registration intake so every offending field is reported at once.
type CheckoutRequest struct {
	EventName    string `json:"event_name"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Participants int    `json:"participants"`
	Notes        string `json:"notes" binding:"max=1000"`
	Amount       Amount `json:"amount"`
	Network      string `json:"network"`
}

func (r CheckoutRequest) ToInput(eventID string) usecase.RegistrationInput {
	return usecase.RegistrationInput{
		EventID:      strings.TrimSpace(eventID),
		EventName:    r.EventName,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Participants: r.Participants,
		Notes:        r.Notes,
		Amount:       string(r.Amount),
		Network:      r.Network,
	}
}

// ReadConfirmationPayload extracts a gateway-shaped status payload from a request body.
// The payload may be sent as is or wrapped as {"gateway_payload": {...}}.
func ReadConfirmationPayload(raw []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrEmptyConfirmationPayload
	}
	if !json.Valid(trimmed) {
		return nil, ErrInvalidConfirmationJSON
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err == nil {
		if wrapped, ok := envelope["gateway_payload"]; ok {
			w := bytes.TrimSpace(wrapped)
			if len(w) == 0 || bytes.Equal(w, []byte("null")) {
				return nil, ErrEmptyConfirmationPayload
			}
			return json.RawMessage(w), nil
		}
	}
	return json.RawMessage(trimmed), nil
}

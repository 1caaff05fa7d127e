package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment state of a registration.
//
// A registration starts as pending and moves to confirmed or failed at most once.
// Terminal statuses are never left again.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// IsTerminal reports whether the status can no longer change.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusConfirmed || s == PaymentStatusFailed
}

// Registration is one participant's claim on event capacity.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (event_id-index): event_id
//
// Phone is stored in gateway-normalized form (+<country><9 digits>).
// PaymentReferences keeps the candidate transaction references of the initiation call
// so support can trace a payment after a confirmation timeout.

type Registration struct {
	ID            string          `json:"id"`
	EventID       string          `json:"event_id"`
	Name          string          `json:"name"`
	Email         string          `json:"email,omitempty"`
	Phone         string          `json:"phone"`
	Participants  int             `json:"participants"`
	Notes         string          `json:"notes,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	PaymentReason string          `json:"payment_reason,omitempty"`

	Network           string   `json:"network,omitempty"`
	Narration         string   `json:"narration,omitempty"`
	PaymentReferences []string `json:"payment_references,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsFree reports whether the registration needs no payment.
func (r Registration) IsFree() bool {
	return r.Amount.IsZero()
}

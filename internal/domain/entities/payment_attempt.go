package entities

import (
	"encoding/json"
	"time"
)

// Verdict is the classification of a single gateway response.
type Verdict string

const (
	VerdictSuccess      Verdict = "success"
	VerdictFailure      Verdict = "failure"
	VerdictInconclusive Verdict = "inconclusive"
)

// PaymentAttempt records one initiation call.
//
// References is ordered by priority and de-duplicated. It is never empty: when the
// gateway returns no reference the registration id is used.
type PaymentAttempt struct {
	RegistrationID string          `json:"registration_id"`
	References     []string        `json:"references"`
	Network        string          `json:"network"`
	Narration      string          `json:"narration"`
	InitiatedAt    time.Time       `json:"initiated_at"`
	RawResponse    json.RawMessage `json:"raw_response,omitempty"`
}

// ConfirmationResult is the outcome of one verification call for one reference.
// RawResponse is kept for diagnostics only.
type ConfirmationResult struct {
	Round       int             `json:"round"`
	Reference   string          `json:"reference"`
	Verdict     Verdict         `json:"verdict"`
	Reason      string          `json:"reason,omitempty"`
	RawResponse json.RawMessage `json:"raw_response,omitempty"`
}

// CheckoutState is the state of one checkout session.
//
//	idle -> initiating -> verifying -> {confirmed, failed, timed_out}
//
// cancelled and invalid are dispositions reported to the caller; they never reach the store.

type CheckoutState string

const (
	CheckoutStateIdle       CheckoutState = "idle"
	CheckoutStateInitiating CheckoutState = "initiating"
	CheckoutStateVerifying  CheckoutState = "verifying"
	CheckoutStateConfirmed  CheckoutState = "confirmed"
	CheckoutStateFailed     CheckoutState = "failed"
	CheckoutStateTimedOut   CheckoutState = "timed_out"
	CheckoutStateCancelled  CheckoutState = "cancelled"
	CheckoutStateInvalid    CheckoutState = "invalid"
)

// IsTerminal reports whether the session ended with a stored payment outcome.
func (s CheckoutState) IsTerminal() bool {
	switch s {
	case CheckoutStateConfirmed, CheckoutStateFailed, CheckoutStateTimedOut:
		return true
	}
	return false
}

// CheckoutStateFromStatus maps a stored terminal status to a session state.
func CheckoutStateFromStatus(s PaymentStatus) CheckoutState {
	switch s {
	case PaymentStatusConfirmed:
		return CheckoutStateConfirmed
	case PaymentStatusFailed:
		return CheckoutStateFailed
	}
	return CheckoutStateVerifying
}

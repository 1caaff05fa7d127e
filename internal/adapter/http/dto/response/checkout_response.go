package response

import (
	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/usecase"
)

type VerificationResponse struct {
	Round     int    `json:"round"`
	Reference string `json:"reference"`
	Verdict   string `json:"verdict"`
	Reason    string `json:"reason,omitempty"`
}

// CheckoutResponse reports where a checkout stands. Message is safe to show to the
// participant as is.
type CheckoutResponse struct {
	Registration  RegistrationResponse   `json:"registration"`
	State         string                 `json:"state"`
	Message       string                 `json:"message,omitempty"`
	References    []string               `json:"references,omitempty"`
	Verifications []VerificationResponse `json:"verifications,omitempty"`
}

func FromCheckoutResult(res usecase.CheckoutResult, phones mobilemoney.Normalizer) CheckoutResponse {
	out := CheckoutResponse{
		Registration: FromRegistration(res.Registration, phones),
		State:        string(res.State),
		Message:      res.Reason,
	}
	if res.Attempt != nil {
		out.References = res.Attempt.References
	} else if len(res.Registration.PaymentReferences) > 0 {
		out.References = res.Registration.PaymentReferences
	}
	for _, r := range res.Results {
		out.Verifications = append(out.Verifications, fromConfirmationResult(r))
	}
	return out
}

func fromConfirmationResult(r entities.ConfirmationResult) VerificationResponse {
	return VerificationResponse{
		Round:     r.Round,
		Reference: r.Reference,
		Verdict:   string(r.Verdict),
		Reason:    r.Reason,
	}
}

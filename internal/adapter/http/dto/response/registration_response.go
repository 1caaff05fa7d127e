package response

import (
	"time"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/mobilemoney"
)

type RegistrationResponse struct {
	ID                string    `json:"id"`
	EventID           string    `json:"event_id"`
	Name              string    `json:"name"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone"`
	PhoneDisplay      string    `json:"phone_display"`
	Participants      int       `json:"participants"`
	Notes             string    `json:"notes,omitempty"`
	Amount            string    `json:"amount"`
	PaymentStatus     string    `json:"payment_status"`
	PaymentReason     string    `json:"payment_reason,omitempty"`
	Network           string    `json:"network,omitempty"`
	PaymentReferences []string  `json:"payment_references,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// FromRegistration maps a registration, formatting its phone with the market's normalizer.
func FromRegistration(r entities.Registration, phones mobilemoney.Normalizer) RegistrationResponse {
	return RegistrationResponse{
		ID:                r.ID,
		EventID:           r.EventID,
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		PhoneDisplay:      phones.FormatPhoneForDisplay(r.Phone),
		Participants:      r.Participants,
		Notes:             r.Notes,
		Amount:            r.Amount.StringFixed(2),
		PaymentStatus:     string(r.PaymentStatus),
		PaymentReason:     r.PaymentReason,
		Network:           r.Network,
		PaymentReferences: r.PaymentReferences,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func FromRegistrations(rs []entities.Registration, phones mobilemoney.Normalizer) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRegistration(r, phones))
	}
	return out
}

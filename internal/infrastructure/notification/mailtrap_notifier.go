package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/usecase/interfaces"
)

var ErrMailtrapNotConfigured = errors.New("mailtrap credentials not configured")

// MailtrapNotifier emails the participant through the Mailtrap send API.
// Registrations without an email address fall back to the log notifier.
type MailtrapNotifier struct {
	apiURL   string
	apiToken string
	from     personInfo
	client   *http.Client
	phones   mobilemoney.Normalizer
	fallback interfaces.INotifier
}

var _ interfaces.INotifier = (*MailtrapNotifier)(nil)

type mailtrapPayload struct {
	From     personInfo   `json:"from"`
	To       []personInfo `json:"to"`
	Subject  string       `json:"subject"`
	Text     string       `json:"text,omitempty"`
	Category string       `json:"category,omitempty"`
}

type personInfo struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func NewMailtrapNotifier(phones mobilemoney.Normalizer, apiURL, apiToken, fromEmail, fromName string) (*MailtrapNotifier, error) {
	if apiURL == "" || apiToken == "" {
		return nil, ErrMailtrapNotConfigured
	}
	return &MailtrapNotifier{
		apiURL:   apiURL,
		apiToken: apiToken,
		from:     personInfo{Email: fromEmail, Name: fromName},
		client:   &http.Client{Timeout: 10 * time.Second},
		phones:   phones,
		fallback: NewLogNotifier(phones),
	}, nil
}

func (m *MailtrapNotifier) NotifyOutcome(ctx context.Context, r entities.Registration, status entities.PaymentStatus) error {
	if r.Email == "" {
		return m.fallback.NotifyOutcome(ctx, r, status)
	}

	subject, text := outcomeMessage(r, status, m.phones.FormatPhoneForDisplay(r.Phone))
	body, err := json.Marshal(mailtrapPayload{
		From:     m.from,
		To:       []personInfo{{Email: r.Email, Name: r.Name}},
		Subject:  subject,
		Text:     text,
		Category: "Transactional",
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+m.apiToken)
	req.Header.Set("Content-Type", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mailtrap request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("mailtrap API error: %d", res.StatusCode)
	}
	return nil
}

func outcomeMessage(r entities.Registration, status entities.PaymentStatus, phone string) (string, string) {
	switch status {
	case entities.PaymentStatusConfirmed:
		if r.IsFree() {
			return "Your registration is confirmed",
				fmt.Sprintf("Hi %s, your registration (%s) for %d participant(s) is confirmed.", r.Name, r.ID, r.Participants)
		}
		return "Payment received",
			fmt.Sprintf("Hi %s, we received GHS %s from %s. Registration %s is confirmed.",
				r.Name, r.Amount.StringFixed(2), phone, r.ID)
	default:
		reason := r.PaymentReason
		if reason == "" {
			reason = "payment was not completed"
		}
		return "Payment not completed",
			fmt.Sprintf("Hi %s, the payment for registration %s from %s did not go through: %s.",
				r.Name, r.ID, phone, reason)
	}
}

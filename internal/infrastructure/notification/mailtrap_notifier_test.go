package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/mobilemoney"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMailtrapNotifier_RequiresCredentials(t *testing.T) {
	_, err := NewMailtrapNotifier(mobilemoney.Normalizer{}, "", "token", "a@b.c", "")
	assert.ErrorIs(t, err, ErrMailtrapNotConfigured)
}

func TestMailtrapNotifier_SendsOutcome(t *testing.T) {
	var got mailtrapPayload
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n, err := NewMailtrapNotifier(mobilemoney.Normalizer{}, srv.URL, "secret", "tickets@example.com", "Tickets")
	require.NoError(t, err)

	reg := entities.Registration{
		ID:            "reg-1",
		Name:          "Ama Mensah",
		Email:         "ama@example.com",
		Phone:         "+233241234567",
		Participants:  2,
		Amount:        decimal.RequireFromString("100"),
		PaymentStatus: entities.PaymentStatusFailed,
		PaymentReason: "Transaction declined",
	}
	require.NoError(t, n.NotifyOutcome(context.Background(), reg, entities.PaymentStatusFailed))

	assert.Equal(t, "Bearer secret", auth)
	require.Len(t, got.To, 1)
	assert.Equal(t, "ama@example.com", got.To[0].Email)
	assert.Equal(t, "Payment not completed", got.Subject)
	assert.Contains(t, got.Text, "Transaction declined")
	assert.Contains(t, got.Text, "+233 24 123 4567")
}

func TestMailtrapNotifier_UsesConfiguredCountry(t *testing.T) {
	var got mailtrapPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	n, err := NewMailtrapNotifier(mobilemoney.NewNormalizer("234"), srv.URL, "secret", "tickets@example.com", "")
	require.NoError(t, err)

	reg := entities.Registration{ID: "reg-1", Name: "Ada", Email: "ada@example.com", Phone: "+234803123456", Amount: decimal.RequireFromString("20")}
	require.NoError(t, n.NotifyOutcome(context.Background(), reg, entities.PaymentStatusConfirmed))
	assert.Contains(t, got.Text, "+234 80 312 3456")
}

func TestMailtrapNotifier_ReportsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	n, err := NewMailtrapNotifier(mobilemoney.Normalizer{}, srv.URL, "bad", "tickets@example.com", "")
	require.NoError(t, err)

	err = n.NotifyOutcome(context.Background(), entities.Registration{ID: "r", Email: "x@example.com"}, entities.PaymentStatusConfirmed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestMailtrapNotifier_NoEmailFallsBackToLog(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	}))
	defer srv.Close()

	n, err := NewMailtrapNotifier(mobilemoney.Normalizer{}, srv.URL, "secret", "tickets@example.com", "")
	require.NoError(t, err)

	require.NoError(t, n.NotifyOutcome(context.Background(), entities.Registration{ID: "r"}, entities.PaymentStatusConfirmed))
	assert.False(t, called)
}

package response

import (
	"testing"
	"time"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromRegistration(t *testing.T) {
	now := time.Now().UTC()
	r := entities.Registration{
		ID:            "reg-1",
		EventID:       "evt-1",
		Name:          "Ama Mensah",
		Phone:         "+233241234567",
		Participants:  2,
		Amount:        decimal.RequireFromString("50"),
		PaymentStatus: entities.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	res := FromRegistration(r, mobilemoney.Normalizer{})
	if res.ID != "reg-1" || res.EventID != "evt-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Amount != "50.00" {
		t.Fatalf("expected 50.00, got %q", res.Amount)
	}
	if res.PhoneDisplay != "+233 24 123 4567" {
		t.Fatalf("unexpected display phone: %q", res.PhoneDisplay)
	}
	if got := FromRegistration(entities.Registration{Phone: "+234803123456"}, mobilemoney.NewNormalizer("234")).PhoneDisplay; got != "+234 80 312 3456" {
		t.Fatalf("expected the configured country prefix, got %q", got)
	}
	if res.PaymentStatus != "pending" {
		t.Fatalf("unexpected status: %q", res.PaymentStatus)
	}
}

func TestFromCheckoutResult(t *testing.T) {
	res := FromCheckoutResult(usecase.CheckoutResult{
		Registration: entities.Registration{ID: "reg-1", Amount: decimal.RequireFromString("10")},
		State:        entities.CheckoutStateVerifying,
		Reason:       "Payment confirmation is still in progress.",
		Attempt:      &entities.PaymentAttempt{References: []string{"TX1", "TX2"}},
		Results: []entities.ConfirmationResult{
			{Round: 1, Reference: "TX1", Verdict: entities.VerdictInconclusive},
		},
	}, mobilemoney.Normalizer{})
	if res.State != "verifying" {
		t.Fatalf("unexpected state: %q", res.State)
	}
	if len(res.References) != 2 || res.References[0] != "TX1" {
		t.Fatalf("unexpected references: %v", res.References)
	}
	if len(res.Verifications) != 1 || res.Verifications[0].Verdict != "inconclusive" {
		t.Fatalf("unexpected verifications: %+v", res.Verifications)
	}

	stored := FromCheckoutResult(usecase.CheckoutResult{
		Registration: entities.Registration{ID: "reg-2", PaymentReferences: []string{"COL9"}},
		State:        entities.CheckoutStateFailed,
	}, mobilemoney.Normalizer{})
	if len(stored.References) != 1 || stored.References[0] != "COL9" {
		t.Fatalf("expected stored references, got %v", stored.References)
	}
}

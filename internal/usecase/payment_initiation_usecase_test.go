package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/usecase/interfaces"
	mock_interfaces "ticket_checkout/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func pendingReg() entities.Registration {
	return entities.Registration{
		ID:            "reg-1",
		EventID:       "evt-1",
		Name:          "Ama Mensah",
		Phone:         "+233241234567",
		Participants:  1,
		Amount:        decimal.RequireFromString("50"),
		PaymentStatus: entities.PaymentStatusPending,
		Network:       "vodafone cash",
		Narration:     "Ticket payment: Gala x1",
	}
}

func TestPaymentInitiationUseCase_InitiatePayment(t *testing.T) {
	t.Run("free registration", func(t *testing.T) {
		uc := NewPaymentInitiationUseCase(nil, mobilemoney.Normalizer{}, newFakeClock())
		reg := pendingReg()
		reg.Amount = decimal.Zero
		if _, err := uc.InitiatePayment(context.Background(), reg); !errors.Is(err, ErrRegistrationNotPaid) {
			t.Fatalf("expected ErrRegistrationNotPaid, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentInitiationUseCase(nil, mobilemoney.Normalizer{}, newFakeClock())
		_, err := uc.InitiatePayment(context.Background(), pendingReg())
		if !errors.Is(err, ErrInitiationFailed) || !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected initiation failure, got %v", err)
		}
	})

	t.Run("transport error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentInitiationUseCase(gateway, mobilemoney.Normalizer{}, newFakeClock())

		gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
		_, err := uc.InitiatePayment(context.Background(), pendingReg())
		if !errors.Is(err, ErrInitiationFailed) {
			t.Fatalf("expected ErrInitiationFailed, got %v", err)
		}
	})

	t.Run("request payload and references", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentInitiationUseCase(gateway, mobilemoney.Normalizer{}, newFakeClock())

		gateway.EXPECT().Initiate(gomock.Any(), interfaces.InitiationRequest{
			AccountNumber: "233241234567",
			Amount:        "50.00",
			Narration:     "Ticket payment: Gala x1",
			Network:       mobilemoney.NetworkVodafone,
		}).Return(json.RawMessage(`{"transactionId":"TX1","data":{"nameEnquiry":{"transactionId":"TX2"}},"reference":"TX1"}`), nil)

		out, err := uc.InitiatePayment(context.Background(), pendingReg())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Rejected {
			t.Fatalf("did not expect rejection")
		}
		refs := out.Attempt.References
		if len(refs) != 2 || refs[0] != "TX1" || refs[1] != "TX2" {
			t.Fatalf("unexpected references: %v", refs)
		}
		if out.Attempt.Network != mobilemoney.NetworkVodafone || out.Attempt.RegistrationID != "reg-1" {
			t.Fatalf("unexpected attempt: %+v", out.Attempt)
		}
	})

	t.Run("declined message object short-circuits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentInitiationUseCase(gateway, mobilemoney.Normalizer{}, newFakeClock())

		gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{"message":{"description":"declined"}}`), nil)

		out, err := uc.InitiatePayment(context.Background(), pendingReg())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Rejected || out.Reason != "declined" {
			t.Fatalf("expected rejection with reason, got %+v", out)
		}
	})

	t.Run("no reference fields falls back to registration id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentInitiationUseCase(gateway, mobilemoney.Normalizer{}, newFakeClock())

		gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(json.RawMessage(`{"message":"Request received"}`), nil)

		out, err := uc.InitiatePayment(context.Background(), pendingReg())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Attempt.References) != 1 || out.Attempt.References[0] != "reg-1" {
			t.Fatalf("expected registration id as sole reference, got %v", out.Attempt.References)
		}
	})
}

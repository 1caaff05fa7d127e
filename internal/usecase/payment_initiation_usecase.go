package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/gatewayresponse"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/usecase/interfaces"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInitiationFailed     = errors.New("payment failed to start")
	ErrRegistrationNotPaid  = errors.New("registration does not require payment")
)

// InitiationOutcome is the result of a successful initiation call.
//
// Rejected is set when the gateway already reported a failure in the initiation
// response; the attempt must then go straight to failed without polling.
type InitiationOutcome struct {
	Attempt  entities.PaymentAttempt
	Rejected bool
	Reason   string
}

// IPaymentInitiationUseCase starts a mobile-money collection for a pending registration.
type IPaymentInitiationUseCase interface {
	InitiatePayment(ctx context.Context, reg entities.Registration) (InitiationOutcome, error)
}

type PaymentInitiationUseCase struct {
	gateway    interfaces.IPaymentGateway
	normalizer mobilemoney.Normalizer
	clock      Clock
}

var _ IPaymentInitiationUseCase = (*PaymentInitiationUseCase)(nil)

func NewPaymentInitiationUseCase(gateway interfaces.IPaymentGateway, normalizer mobilemoney.Normalizer, clock Clock) *PaymentInitiationUseCase {
	if clock == nil {
		clock = SystemClock()
	}
	return &PaymentInitiationUseCase{gateway: gateway, normalizer: normalizer, clock: clock}
}

// InitiatePayment sends the collection request and reads the candidate references and
// any synchronous failure out of the response. A transport error or non-2xx response
// comes back as ErrInitiationFailed and is not retried.
func (u *PaymentInitiationUseCase) InitiatePayment(ctx context.Context, reg entities.Registration) (InitiationOutcome, error) {
	if reg.IsFree() {
		return InitiationOutcome{}, ErrRegistrationNotPaid
	}
	if u.gateway == nil {
		log.Printf("[checkout][initiation] gateway not configured registration_id=%s", reg.ID)
		return InitiationOutcome{}, fmt.Errorf("%w: %w", ErrInitiationFailed, ErrGatewayNotConfigured)
	}

	network := u.normalizer.NetworkProvider(reg.Network)
	req := interfaces.InitiationRequest{
		AccountNumber: u.normalizer.ToGatewayAccountNumber(reg.Phone),
		Amount:        mobilemoney.FormatGatewayAmount(reg.Amount),
		Narration:     reg.Narration,
		Network:       network,
	}
	log.Printf("[checkout][initiation] calling gateway registration_id=%s network=%s amount=%s", reg.ID, req.Network, req.Amount)

	initiatedAt := u.clock.Now()
	raw, err := u.gateway.Initiate(ctx, req)
	if err != nil {
		log.Printf("[checkout][initiation] gateway call failed registration_id=%s err=%v", reg.ID, err)
		return InitiationOutcome{}, fmt.Errorf("%w: %w", ErrInitiationFailed, err)
	}

	doc := gatewayresponse.Parse(raw)
	attempt := entities.PaymentAttempt{
		RegistrationID: reg.ID,
		References:     gatewayresponse.CandidateReferences(doc, reg.ID),
		Network:        network,
		Narration:      reg.Narration,
		InitiatedAt:    initiatedAt,
		RawResponse:    raw,
	}

	verdict := gatewayresponse.InterpretDocument(doc)
	log.Printf("[checkout][initiation] gateway responded registration_id=%s references=%v verdict=%s payload_len=%d",
		reg.ID, attempt.References, verdict.Verdict, len(raw))

	out := InitiationOutcome{Attempt: attempt}
	if verdict.Verdict == entities.VerdictFailure {
		out.Rejected = true
		out.Reason = verdict.Reason
	}
	return out, nil
}

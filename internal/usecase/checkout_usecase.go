package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/gatewayresponse"
	"ticket_checkout/internal/usecase/interfaces"
)

var (
	ErrCheckoutSessionNotFound    = errors.New("checkout session not found")
	ErrInvalidConfirmationPayload = errors.New("invalid confirmation payload")
	ErrCheckoutShuttingDown       = errors.New("checkout is shutting down")
)

var errSessionRunning = errors.New("checkout session already running")

const (
	reasonInitiationFailed    = "Payment failed to start. Please try again."
	reasonConfirmationPending = "Payment confirmation is still in progress."
	reasonConfirmationStopped = "Payment confirmation was stopped before the provider answered."
)

// CheckoutResult is the user-facing status of a checkout.
//
// InitiationFailed marks a payment that never reached the gateway, as opposed to one
// the gateway declined.
type CheckoutResult struct {
	Registration     entities.Registration
	State            entities.CheckoutState
	Reason           string
	Attempt          *entities.PaymentAttempt
	Results          []entities.ConfirmationResult
	InitiationFailed bool
}

// ICheckoutUseCase sequences intake, initiation and confirmation.
//
// Only validation and intake storage failures come back as errors. Every payment
// outcome, including gateway failures and timeouts, is reported in CheckoutResult.
type ICheckoutUseCase interface {
	Checkout(ctx context.Context, in RegistrationInput) (CheckoutResult, error)
	StartCheckout(ctx context.Context, in RegistrationInput) (CheckoutResult, error)
	ResumeCheckout(ctx context.Context, registrationID string) (CheckoutResult, error)
	CancelCheckout(registrationID string) error
	ApplyConfirmation(ctx context.Context, registrationID string, payload json.RawMessage) (CheckoutResult, error)
}

type CheckoutUseCase struct {
	intake     IRegistrationUseCase
	initiation IPaymentInitiationUseCase
	poller     IConfirmationPoller
	repo       interfaces.IRegistrationRepository
	notifier   interfaces.INotifier

	baseCtx  context.Context
	stop     context.CancelFunc
	mu       sync.Mutex
	sessions map[string]context.CancelFunc
	wg       sync.WaitGroup
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	intake IRegistrationUseCase,
	initiation IPaymentInitiationUseCase,
	poller IConfirmationPoller,
	repo interfaces.IRegistrationRepository,
	notifier interfaces.INotifier,
) *CheckoutUseCase {
	ctx, stop := context.WithCancel(context.Background())
	return &CheckoutUseCase{
		intake:     intake,
		initiation: initiation,
		poller:     poller,
		repo:       repo,
		notifier:   notifier,
		baseCtx:    ctx,
		stop:       stop,
		sessions:   make(map[string]context.CancelFunc),
	}
}

// Checkout runs the whole flow and blocks until the payment is settled or ctx ends.
func (u *CheckoutUseCase) Checkout(ctx context.Context, in RegistrationInput) (CheckoutResult, error) {
	res, refs, err := u.begin(ctx, in)
	if err != nil || res.State != entities.CheckoutStateVerifying {
		return res, err
	}
	return u.confirm(ctx, res, refs), nil
}

// StartCheckout runs intake and initiation, then confirms in the background. The
// returned result is in state verifying for paid tickets that reached the gateway.
func (u *CheckoutUseCase) StartCheckout(ctx context.Context, in RegistrationInput) (CheckoutResult, error) {
	res, refs, err := u.begin(ctx, in)
	if err != nil || res.State != entities.CheckoutStateVerifying {
		return res, err
	}
	if err := u.spawn(res, refs); err != nil {
		// The registration stays pending with its references stored; resume picks it up.
		log.Printf("[checkout][orchestrator] background confirmation not started registration_id=%s err=%v", res.Registration.ID, err)
	}
	return res, nil
}

// ResumeCheckout restarts background confirmation for an existing registration. A
// terminal registration is returned as stored without any gateway call.
func (u *CheckoutUseCase) ResumeCheckout(ctx context.Context, registrationID string) (CheckoutResult, error) {
	reg, err := u.intake.GetByID(ctx, registrationID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if reg.PaymentStatus.IsTerminal() {
		return CheckoutResult{
			Registration: reg,
			State:        entities.CheckoutStateFromStatus(reg.PaymentStatus),
			Reason:       reg.PaymentReason,
		}, nil
	}

	res := CheckoutResult{Registration: reg, State: entities.CheckoutStateVerifying, Reason: reasonConfirmationPending}
	refs := reg.PaymentReferences
	if len(refs) == 0 {
		refs = []string{reg.ID}
	}
	switch err := u.spawn(res, refs); {
	case errors.Is(err, errSessionRunning):
		log.Printf("[checkout][orchestrator] resume ignored, session running registration_id=%s", reg.ID)
	case err != nil:
		return CheckoutResult{}, err
	}
	return res, nil
}

// CancelCheckout stops the background confirmation of a registration. The stored
// payment status is left as it is.
func (u *CheckoutUseCase) CancelCheckout(registrationID string) error {
	u.mu.Lock()
	cancel, ok := u.sessions[strings.TrimSpace(registrationID)]
	u.mu.Unlock()
	if !ok {
		return ErrCheckoutSessionNotFound
	}
	cancel()
	log.Printf("[checkout][orchestrator] session cancelled registration_id=%s", registrationID)
	return nil
}

// Shutdown cancels every running session and waits for them to exit. No session
// starts after it is called.
func (u *CheckoutUseCase) Shutdown(ctx context.Context) error {
	u.mu.Lock()
	u.stop()
	u.mu.Unlock()
	done := make(chan struct{})
	go func() {
		u.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ApplyConfirmation settles a pending registration from a payment status pushed
// outside the polling loop. The payload is read like any other gateway response and
// goes through the same conditional write, so it cannot race the poller.
func (u *CheckoutUseCase) ApplyConfirmation(ctx context.Context, registrationID string, payload json.RawMessage) (CheckoutResult, error) {
	doc := gatewayresponse.Parse(payload)
	if !doc.IsObject() {
		return CheckoutResult{}, ErrInvalidConfirmationPayload
	}
	reg, err := u.intake.GetByID(ctx, registrationID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if reg.PaymentStatus.IsTerminal() {
		return CheckoutResult{Registration: reg, State: entities.CheckoutStateFromStatus(reg.PaymentStatus), Reason: reg.PaymentReason}, nil
	}

	interp := gatewayresponse.InterpretDocument(doc)
	log.Printf("[checkout][orchestrator] external confirmation registration_id=%s verdict=%s", reg.ID, interp.Verdict)

	var status entities.PaymentStatus
	reason := ""
	switch interp.Verdict {
	case entities.VerdictSuccess:
		status = entities.PaymentStatusConfirmed
	case entities.VerdictFailure:
		status = entities.PaymentStatusFailed
		reason = interp.Reason
		if reason == "" {
			reason = DefaultFailureReason
		}
	default:
		return CheckoutResult{Registration: reg, State: entities.CheckoutStateVerifying, Reason: reasonConfirmationPending}, nil
	}

	res, applied, err := u.settle(ctx, reg.ID, status, reason)
	if err != nil {
		return CheckoutResult{}, err
	}
	if applied {
		_ = u.CancelCheckout(reg.ID)
	}
	return res, nil
}

// begin validates and stores the registration and, for paid tickets, starts the
// payment. A result in state verifying carries the references to poll.
func (u *CheckoutUseCase) begin(ctx context.Context, in RegistrationInput) (CheckoutResult, []string, error) {
	reg, err := u.intake.CreateRegistration(ctx, in)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return CheckoutResult{State: entities.CheckoutStateInvalid, Reason: verr.Error()}, nil, err
		}
		return CheckoutResult{State: entities.CheckoutStateIdle, Reason: "Registration could not be saved."}, nil, err
	}

	if reg.PaymentStatus == entities.PaymentStatusConfirmed {
		log.Printf("[checkout][orchestrator] free ticket confirmed registration_id=%s", reg.ID)
		u.notify(ctx, reg, entities.PaymentStatusConfirmed)
		return CheckoutResult{Registration: reg, State: entities.CheckoutStateConfirmed}, nil, nil
	}

	log.Printf("[checkout][orchestrator] initiating registration_id=%s", reg.ID)
	outcome, err := u.initiation.InitiatePayment(ctx, reg)
	if err != nil {
		log.Printf("[checkout][orchestrator] initiation failed registration_id=%s err=%v", reg.ID, err)
		res, _, serr := u.settle(ctx, reg.ID, entities.PaymentStatusFailed, reasonInitiationFailed)
		if serr != nil {
			res = CheckoutResult{Registration: reg, State: entities.CheckoutStateFailed, Reason: reasonInitiationFailed}
		}
		res.InitiationFailed = true
		return res, nil, nil
	}

	attempt := outcome.Attempt
	if err := u.repo.RecordAttempt(ctx, reg.ID, attempt); err != nil {
		log.Printf("[checkout][orchestrator] record attempt failed registration_id=%s err=%v", reg.ID, err)
	} else {
		reg.Network = attempt.Network
		reg.PaymentReferences = attempt.References
	}

	if outcome.Rejected {
		reason := outcome.Reason
		if reason == "" {
			reason = DefaultFailureReason
		}
		log.Printf("[checkout][orchestrator] rejected at initiation registration_id=%s reason=%q", reg.ID, reason)
		res, _, serr := u.settle(ctx, reg.ID, entities.PaymentStatusFailed, reason)
		if serr != nil {
			res = CheckoutResult{Registration: reg, State: entities.CheckoutStateFailed, Reason: reason}
		}
		res.Attempt = &attempt
		return res, nil, nil
	}

	return CheckoutResult{
		Registration: reg,
		State:        entities.CheckoutStateVerifying,
		Reason:       reasonConfirmationPending,
		Attempt:      &attempt,
	}, attempt.References, nil
}

// confirm runs the poller and folds its outcome into the result.
func (u *CheckoutUseCase) confirm(ctx context.Context, res CheckoutResult, refs []string) CheckoutResult {
	out, err := u.poller.AwaitConfirmation(ctx, res.Registration.ID, refs)
	res.Results = out.Results
	if out.Registration.ID != "" {
		res.Registration = out.Registration
	}

	switch {
	case err != nil && IsCancellation(err):
		res.State = entities.CheckoutStateCancelled
		res.Reason = reasonConfirmationStopped
		return res
	case err != nil:
		log.Printf("[checkout][orchestrator] confirmation error registration_id=%s err=%v", res.Registration.ID, err)
		res.State = entities.CheckoutStateVerifying
		res.Reason = reasonConfirmationPending
		return res
	}

	res.State = out.State
	res.Reason = out.Reason
	if out.Applied {
		u.notify(ctx, out.Registration, out.Registration.PaymentStatus)
	}
	return res
}

// spawn starts a background confirmation session unless one is already running or
// the use case is shutting down.
func (u *CheckoutUseCase) spawn(res CheckoutResult, refs []string) error {
	id := res.Registration.ID

	u.mu.Lock()
	if u.baseCtx.Err() != nil {
		u.mu.Unlock()
		return ErrCheckoutShuttingDown
	}
	if _, running := u.sessions[id]; running {
		u.mu.Unlock()
		return errSessionRunning
	}
	ctx, cancel := context.WithCancel(u.baseCtx)
	u.sessions[id] = cancel
	u.wg.Add(1)
	u.mu.Unlock()

	go func() {
		defer u.wg.Done()
		defer func() {
			u.mu.Lock()
			delete(u.sessions, id)
			u.mu.Unlock()
			cancel()
		}()
		final := u.confirm(ctx, res, refs)
		log.Printf("[checkout][orchestrator] session finished registration_id=%s state=%s", id, final.State)
	}()
	return nil
}

// settle applies a terminal status and notifies when this call made the transition.
func (u *CheckoutUseCase) settle(ctx context.Context, id string, status entities.PaymentStatus, reason string) (CheckoutResult, bool, error) {
	writeCtx := context.WithoutCancel(ctx)
	applied, err := u.repo.UpdateStatusIfPending(writeCtx, id, status, reason)
	if err != nil {
		return CheckoutResult{}, false, fmt.Errorf("update payment status: %w", err)
	}
	reg, err := u.repo.GetByID(writeCtx, id)
	if err != nil {
		return CheckoutResult{}, applied, fmt.Errorf("reload registration: %w", err)
	}
	if applied {
		u.notify(ctx, reg, status)
	}
	return CheckoutResult{
		Registration: reg,
		State:        entities.CheckoutStateFromStatus(reg.PaymentStatus),
		Reason:       reg.PaymentReason,
	}, applied, nil
}

// notify hands the outcome to the notifier. Its failures are only logged.
func (u *CheckoutUseCase) notify(ctx context.Context, reg entities.Registration, status entities.PaymentStatus) {
	if u.notifier == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[checkout][orchestrator] notifier panic registration_id=%s recovered=%v", reg.ID, r)
		}
	}()
	if err := u.notifier.NotifyOutcome(context.WithoutCancel(ctx), reg, status); err != nil {
		log.Printf("[checkout][orchestrator] notify failed registration_id=%s status=%s err=%v", reg.ID, status, err)
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/gatewayresponse"
	"ticket_checkout/internal/usecase/interfaces"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultInitialWait = 15 * time.Second
	DefaultRetryWait   = 5 * time.Second
	DefaultMaxRounds   = 30
)

const (
	storeRetryAttempts    = 5
	storeRetryInitialWait = 500 * time.Millisecond
	storeRetryMaxWait     = 5 * time.Second
)

// errNoVerdict marks a round that ended inconclusive.
var errNoVerdict = errors.New("no definitive verdict")

// TimeoutReason is stored on registrations whose confirmation never became definitive.
const TimeoutReason = "Payment confirmation timed out. Please keep your transaction reference and contact support."

// DefaultFailureReason is used when the gateway declines without saying why.
const DefaultFailureReason = "Payment was declined by the payment provider."

// PollerConfig bounds the verification loop.
type PollerConfig struct {
	InitialWait time.Duration
	RetryWait   time.Duration
	MaxRounds   int
}

func (c PollerConfig) withDefaults() PollerConfig {
	if c.InitialWait <= 0 {
		c.InitialWait = DefaultInitialWait
	}
	if c.RetryWait <= 0 {
		c.RetryWait = DefaultRetryWait
	}
	if c.MaxRounds <= 0 {
		c.MaxRounds = DefaultMaxRounds
	}
	return c
}

// PollOutcome describes how a confirmation loop ended.
//
// Applied is true only when this loop made the terminal write. When another writer
// got there first, State and Registration reflect what that writer stored.
type PollOutcome struct {
	State        entities.CheckoutState
	Registration entities.Registration
	Reason       string
	Rounds       int
	Applied      bool
	Results      []entities.ConfirmationResult
}

// IConfirmationPoller waits for the gateway to settle a pending payment.
type IConfirmationPoller interface {
	AwaitConfirmation(ctx context.Context, registrationID string, references []string) (PollOutcome, error)
}

type ConfirmationPoller struct {
	repo    interfaces.IRegistrationRepository
	gateway interfaces.IPaymentGateway
	clock   Clock
	cfg     PollerConfig
}

var _ IConfirmationPoller = (*ConfirmationPoller)(nil)

func NewConfirmationPoller(repo interfaces.IRegistrationRepository, gateway interfaces.IPaymentGateway, clock Clock, cfg PollerConfig) *ConfirmationPoller {
	if clock == nil {
		clock = SystemClock()
	}
	return &ConfirmationPoller{repo: repo, gateway: gateway, clock: clock, cfg: cfg.withDefaults()}
}

// AwaitConfirmation runs verification rounds until the registration is terminal.
//
// The registration is re-read before every round. InitialWait passes before the first
// round and RetryWait before each later one; a round verifies the references in order
// and stops at the first definitive verdict. Transport errors and failed re-reads count
// as inconclusive. After MaxRounds inconclusive rounds the registration fails with
// TimeoutReason.
//
// If ctx is cancelled the loop returns ctx.Err() and leaves the registration untouched.
func (p *ConfirmationPoller) AwaitConfirmation(ctx context.Context, registrationID string, references []string) (PollOutcome, error) {
	out := PollOutcome{State: entities.CheckoutStateVerifying}
	if p.gateway == nil {
		return out, ErrGatewayNotConfigured
	}
	if len(references) == 0 {
		references = []string{registrationID}
	}

	var (
		attempt int
		settled entities.Registration
		verdict entities.ConfirmationResult
	)
	operation := func() error {
		reg, err := p.repo.GetByID(ctx, registrationID)
		switch {
		case err != nil:
			if ctxErr := ctx.Err(); ctxErr != nil {
				return backoff.Permanent(ctxErr)
			}
			log.Printf("[checkout][poller] re-check failed registration_id=%s attempt=%d err=%v", registrationID, attempt, err)
		case reg.ID == "":
			return backoff.Permanent(ErrRegistrationNotFound)
		case reg.PaymentStatus.IsTerminal():
			log.Printf("[checkout][poller] already terminal registration_id=%s status=%s attempt=%d", registrationID, reg.PaymentStatus, attempt)
			settled = reg
			return nil
		default:
			out.Registration = reg
		}

		// The first attempt only checks the store; the initial wait comes next.
		round := attempt
		attempt++
		if round == 0 {
			return errNoVerdict
		}

		out.Rounds = round
		res, err := p.verifyRound(ctx, round, references, &out)
		if err != nil {
			return backoff.Permanent(err)
		}
		if res.Verdict == entities.VerdictInconclusive {
			return errNoVerdict
		}
		verdict = res
		return nil
	}

	schedule := backoff.WithContext(
		backoff.WithMaxRetries(&pollSchedule{initial: p.cfg.InitialWait, retry: p.cfg.RetryWait}, uint64(p.cfg.MaxRounds)),
		ctx,
	)
	err := backoff.RetryNotifyWithTimer(operation, schedule, nil, newClockTimer(ctx, p.clock))

	switch {
	case err == nil && settled.ID != "":
		out.State = entities.CheckoutStateFromStatus(settled.PaymentStatus)
		out.Registration = settled
		out.Reason = settled.PaymentReason
		return out, nil
	case err == nil && verdict.Verdict == entities.VerdictSuccess:
		return p.finish(ctx, out, registrationID, entities.PaymentStatusConfirmed, "", entities.CheckoutStateConfirmed)
	case err == nil:
		reason := verdict.Reason
		if reason == "" {
			reason = DefaultFailureReason
		}
		return p.finish(ctx, out, registrationID, entities.PaymentStatusFailed, reason, entities.CheckoutStateFailed)
	case errors.Is(err, errNoVerdict):
		log.Printf("[checkout][poller] max rounds reached registration_id=%s rounds=%d", registrationID, out.Rounds)
		return p.finish(ctx, out, registrationID, entities.PaymentStatusFailed, TimeoutReason, entities.CheckoutStateTimedOut)
	case IsCancellation(err):
		log.Printf("[checkout][poller] cancelled registration_id=%s rounds=%d", registrationID, out.Rounds)
		out.State = entities.CheckoutStateCancelled
		return out, err
	}
	return out, err
}

// verifyRound checks every reference in order and returns the first definitive
// result, or an inconclusive one when none was.
func (p *ConfirmationPoller) verifyRound(ctx context.Context, round int, references []string, out *PollOutcome) (entities.ConfirmationResult, error) {
	for _, ref := range references {
		res := entities.ConfirmationResult{Round: round, Reference: ref, Verdict: entities.VerdictInconclusive}

		raw, err := p.gateway.Verify(ctx, ref)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}
		if err != nil {
			log.Printf("[checkout][poller] verify transport error round=%d reference=%s err=%v", round, ref, err)
			out.Results = append(out.Results, res)
			continue
		}

		interp := gatewayresponse.Interpret(raw)
		res.Verdict = interp.Verdict
		res.Reason = interp.Reason
		res.RawResponse = raw
		out.Results = append(out.Results, res)
		log.Printf("[checkout][poller] verify round=%d reference=%s verdict=%s payload_len=%d", round, ref, res.Verdict, len(raw))

		if res.Verdict != entities.VerdictInconclusive {
			return res, nil
		}
	}
	return entities.ConfirmationResult{Round: round, Verdict: entities.VerdictInconclusive}, nil
}

func (p *ConfirmationPoller) finish(
	ctx context.Context,
	out PollOutcome,
	registrationID string,
	status entities.PaymentStatus,
	reason string,
	state entities.CheckoutState,
) (PollOutcome, error) {
	// The terminal write must land even if the session is abandoned right now.
	writeCtx := context.WithoutCancel(ctx)
	timer := newClockTimer(writeCtx, p.clock)

	var applied bool
	write := func() error {
		var err error
		applied, err = p.repo.UpdateStatusIfPending(writeCtx, registrationID, status, reason)
		return err
	}
	if err := backoff.RetryNotifyWithTimer(write, storeRetry(), logStoreRetry("terminal write", registrationID), timer); err != nil {
		log.Printf("[checkout][poller] terminal write failed registration_id=%s status=%s err=%v", registrationID, status, err)
		return out, fmt.Errorf("update payment status: %w", err)
	}
	out.Applied = applied

	var reg entities.Registration
	reload := func() error {
		var err error
		reg, err = p.repo.GetByID(writeCtx, registrationID)
		return err
	}
	err := backoff.RetryNotifyWithTimer(reload, storeRetry(), logStoreRetry("reload", registrationID), timer)
	if err == nil && reg.ID == "" {
		err = ErrRegistrationNotFound
	}
	if err != nil {
		if !applied {
			return out, fmt.Errorf("reload registration: %w", err)
		}
		// Our write landed, so the stored row is known without reading it back.
		reg = out.Registration
		reg.PaymentStatus = status
		reg.PaymentReason = reason
	}
	out.Registration = reg

	if !applied {
		log.Printf("[checkout][poller] terminal write skipped, already %s registration_id=%s", reg.PaymentStatus, registrationID)
		out.State = entities.CheckoutStateFromStatus(reg.PaymentStatus)
		out.Reason = reg.PaymentReason
		return out, nil
	}

	log.Printf("[checkout][poller] terminal registration_id=%s status=%s rounds=%d", registrationID, status, out.Rounds)
	out.State = state
	out.Reason = reason
	return out, nil
}

// pollSchedule waits InitialWait before the first round and RetryWait before every
// later one.
type pollSchedule struct {
	initial time.Duration
	retry   time.Duration
	started bool
}

func (s *pollSchedule) NextBackOff() time.Duration {
	if !s.started {
		s.started = true
		return s.initial
	}
	return s.retry
}

func (s *pollSchedule) Reset() { s.started = false }

// storeRetry bounds retries of a single store call.
func storeRetry() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = storeRetryInitialWait
	b.MaxInterval = storeRetryMaxWait
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, storeRetryAttempts-1)
}

func logStoreRetry(op, registrationID string) backoff.Notify {
	return func(err error, next time.Duration) {
		log.Printf("[checkout][poller] %s failed, retrying registration_id=%s next_wait=%s err=%v", op, registrationID, next, err)
	}
}

// IsCancellation reports whether err came from an abandoned session.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

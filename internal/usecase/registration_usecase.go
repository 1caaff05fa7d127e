package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"
	"strings"
	"unicode/utf8"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidEventID          = errors.New("invalid event_id")
	ErrInvalidName             = errors.New("name must be at least 3 characters")
	ErrInvalidPhone            = errors.New("phone must contain at least 9 digits")
	ErrInvalidPaymentPhone     = errors.New("phone is not a valid mobile money number")
	ErrInvalidEmail            = errors.New("email is not a valid email address")
	ErrMissingAmount           = errors.New("amount is required")
	ErrInvalidAmount           = errors.New("amount must be a non-negative number")
	ErrInvalidParticipants     = errors.New("participants must be a positive number")
	ErrInvalidRegistrationID   = errors.New("invalid registration id")
	ErrRegistrationNotFound    = errors.New("registration not found")
	ErrRepositoryNotConfigured = errors.New("registration repository not configured")
)

const minPhoneDigits = 9

// registrationFields holds the normalized form fields checked by tag.
type registrationFields struct {
	EventID      string `json:"event_id" validate:"required"`
	Name         string `json:"name" validate:"min=3"`
	Email        string `json:"email" validate:"omitempty,email"`
	Participants int    `json:"participants" validate:"min=1,max=100"`
}

var fieldSentinels = map[string]error{
	"EventID":      ErrInvalidEventID,
	"Name":         ErrInvalidName,
	"Email":        ErrInvalidEmail,
	"Participants": ErrInvalidParticipants,
}

var fieldValidator = validator.New(validator.WithRequiredStructEnabled())

func fieldKey(fe validator.FieldError) string {
	f, ok := reflect.TypeOf(registrationFields{}).FieldByName(fe.StructField())
	if !ok {
		return strings.ToLower(fe.StructField())
	}
	return strings.Split(f.Tag.Get("json"), ",")[0]
}

// ValidationError lists every field that failed validation. errors.Is matches each
// of the wrapped sentinels.
type ValidationError struct {
	Fields map[string]error
	errs   []error
}

func (e *ValidationError) add(field string, err error) {
	if e.Fields == nil {
		e.Fields = make(map[string]error)
	}
	e.Fields[field] = err
	e.errs = append(e.errs, err)
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.errs))
	for _, err := range e.errs {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() []error { return e.errs }

func (e *ValidationError) empty() bool { return len(e.errs) == 0 }

// RegistrationInput is the checkout form as submitted.
type RegistrationInput struct {
	EventID      string
	EventName    string
	Name         string
	Email        string
	Phone        string
	Participants int
	Notes        string
	Amount       string
	Network      string
}

// IRegistrationUseCase is the registration intake.
//
// Free registrations (amount 0) are stored already confirmed and never reach the
// payment gateway. Paid registrations are stored pending.
type IRegistrationUseCase interface {
	CreateRegistration(ctx context.Context, in RegistrationInput) (entities.Registration, error)
	GetByID(ctx context.Context, id string) (entities.Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]entities.Registration, error)
}

type RegistrationUseCase struct {
	repo       interfaces.IRegistrationRepository
	normalizer mobilemoney.Normalizer
	clock      Clock
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(repo interfaces.IRegistrationRepository, normalizer mobilemoney.Normalizer, clock Clock) *RegistrationUseCase {
	if clock == nil {
		clock = SystemClock()
	}
	return &RegistrationUseCase{repo: repo, normalizer: normalizer, clock: clock}
}

func (u *RegistrationUseCase) CreateRegistration(ctx context.Context, in RegistrationInput) (entities.Registration, error) {
	log.Printf("[checkout][intake] create start event_id=%q phone_digits=%d", in.EventID, mobilemoney.CountDigits(in.Phone))

	reg, err := u.validate(in)
	if err != nil {
		log.Printf("[checkout][intake] validation failed event_id=%q err=%v", in.EventID, err)
		return entities.Registration{}, err
	}
	if u.repo == nil {
		return entities.Registration{}, ErrRepositoryNotConfigured
	}

	now := u.clock.Now()
	reg.CreatedAt = now
	reg.UpdatedAt = now
	reg.PaymentStatus = entities.PaymentStatusPending
	if reg.IsFree() {
		reg.PaymentStatus = entities.PaymentStatusConfirmed
	}

	created, err := u.repo.Create(ctx, reg)
	if err != nil {
		log.Printf("[checkout][intake] repository create failed event_id=%s err=%v", reg.EventID, err)
		return entities.Registration{}, fmt.Errorf("create registration: %w", err)
	}
	log.Printf("[checkout][intake] create success registration_id=%s event_id=%s status=%s amount=%s",
		created.ID, created.EventID, created.PaymentStatus, created.Amount.StringFixed(2))
	return created, nil
}

func (u *RegistrationUseCase) validate(in RegistrationInput) (entities.Registration, error) {
	verr := &ValidationError{}

	participants := in.Participants
	if participants == 0 {
		participants = 1
	}
	fields := registrationFields{
		EventID:      strings.TrimSpace(in.EventID),
		Name:         strings.Join(strings.Fields(in.Name), " "),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Participants: participants,
	}
	if err := fieldValidator.Struct(fields); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return entities.Registration{}, err
		}
		for _, fe := range ves {
			verr.add(fieldKey(fe), fieldSentinels[fe.StructField()])
		}
	}
	eventID, name, email := fields.EventID, fields.Name, fields.Email

	amount, amountErr := parseAmount(in.Amount)
	if amountErr != nil {
		verr.add("amount", amountErr)
	}

	phone := ""
	if mobilemoney.CountDigits(in.Phone) < minPhoneDigits {
		verr.add("phone", ErrInvalidPhone)
	} else if amountErr == nil && !amount.IsZero() {
		// Paid tickets need a number the gateway can collect from.
		p, err := u.normalizer.ValidatePaymentPhone(in.Phone)
		if err != nil {
			verr.add("phone", ErrInvalidPaymentPhone)
		}
		phone = p
	} else {
		phone = u.normalizer.NormalizePhone(in.Phone)
	}

	if !verr.empty() {
		return entities.Registration{}, verr
	}

	reg := entities.Registration{
		EventID:      eventID,
		Name:         name,
		Email:        email,
		Phone:        phone,
		Participants: participants,
		Notes:        strings.TrimSpace(in.Notes),
		Amount:       amount,
	}
	if !amount.IsZero() {
		reg.Network = u.normalizer.NetworkProvider(in.Network)
		reg.Narration = buildNarration(in.EventName, eventID, participants)
	}
	return reg, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	d, err := mobilemoney.ParseAmount(raw)
	switch {
	case errors.Is(err, mobilemoney.ErrMissingAmount):
		return decimal.Zero, ErrMissingAmount
	case err != nil:
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func buildNarration(eventName, eventID string, participants int) string {
	label := strings.TrimSpace(eventName)
	if label == "" {
		label = "event " + eventID
	}
	n := fmt.Sprintf("Ticket payment: %s x%d", label, participants)
	if utf8.RuneCountInString(n) > 100 {
		n = string([]rune(n)[:100])
	}
	return n
}

func (u *RegistrationUseCase) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Registration{}, ErrInvalidRegistrationID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Registration{}, err
	}
	if r.ID == "" {
		return entities.Registration{}, ErrRegistrationNotFound
	}
	return r, nil
}

func (u *RegistrationUseCase) ListByEventID(ctx context.Context, eventID string) ([]entities.Registration, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return nil, ErrInvalidEventID
	}
	return u.repo.ListByEventID(ctx, eventID)
}

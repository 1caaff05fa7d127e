package interfaces

import (
	"context"

	"ticket_checkout/internal/domain/entities"
)

// IRegistrationRepository abstracts persistence for Registration.
//
// The checkout flow must be able to:
//   - insert a registration and get its store-assigned id back
//   - read a registration by id (zero value when it does not exist)
//   - move a pending registration to a terminal status, conditionally
//
// UpdateStatusIfPending is the only way payment_status changes after insert. It applies
// the write only while the stored status is pending and reports whether it did, so two
// concurrent writers can never both make the terminal transition.

type IRegistrationRepository interface {
	Create(ctx context.Context, r entities.Registration) (entities.Registration, error)
	GetByID(ctx context.Context, id string) (entities.Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]entities.Registration, error)
	RecordAttempt(ctx context.Context, id string, attempt entities.PaymentAttempt) error
	UpdateStatusIfPending(ctx context.Context, id string, status entities.PaymentStatus, reason string) (bool, error)
}

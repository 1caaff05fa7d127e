package interfaces

import (
	"context"

	"ticket_checkout/internal/domain/entities"
)

// INotifier tells the participant about the final payment outcome.
// Errors are logged by callers and never change payment state.
type INotifier interface {
	NotifyOutcome(ctx context.Context, r entities.Registration, status entities.PaymentStatus) error
}

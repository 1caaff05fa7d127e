package notification

import (
	"context"
	"log"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/domain/mobilemoney"
	"ticket_checkout/internal/usecase/interfaces"
)

// LogNotifier writes payment outcomes to the process log.
type LogNotifier struct {
	phones mobilemoney.Normalizer
}

var _ interfaces.INotifier = LogNotifier{}

func NewLogNotifier(phones mobilemoney.Normalizer) LogNotifier { return LogNotifier{phones: phones} }

func (n LogNotifier) NotifyOutcome(_ context.Context, r entities.Registration, status entities.PaymentStatus) error {
	log.Printf("[checkout][notify] registration_id=%s event_id=%s phone=%s status=%s reason=%q",
		r.ID, r.EventID, n.phones.FormatPhoneForDisplay(r.Phone), status, r.PaymentReason)
	return nil
}

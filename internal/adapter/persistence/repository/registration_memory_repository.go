package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// RegistrationMemoryRepository keeps registrations in process memory. It backs local
// runs without a database and the checkout tests.
type RegistrationMemoryRepository struct {
	mu    sync.Mutex
	items map[string]entities.Registration
}

var _ interfaces.IRegistrationRepository = (*RegistrationMemoryRepository)(nil)

func NewRegistrationMemoryRepository() *RegistrationMemoryRepository {
	return &RegistrationMemoryRepository{items: make(map[string]entities.Registration)}
}

func (r *RegistrationMemoryRepository) Create(_ context.Context, reg entities.Registration) (entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	reg.PaymentReferences = append([]string(nil), reg.PaymentReferences...)
	r.items[reg.ID] = reg
	return reg, nil
}

func (r *RegistrationMemoryRepository) GetByID(_ context.Context, id string) (entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.items[id], nil
}

func (r *RegistrationMemoryRepository) ListByEventID(_ context.Context, eventID string) ([]entities.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []entities.Registration{}
	for _, reg := range r.items {
		if reg.EventID == eventID {
			out = append(out, reg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *RegistrationMemoryRepository) RecordAttempt(_ context.Context, id string, attempt entities.PaymentAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.items[id]
	if !ok || reg.PaymentStatus != entities.PaymentStatusPending {
		return nil
	}
	reg.Network = attempt.Network
	reg.Narration = attempt.Narration
	reg.PaymentReferences = append([]string(nil), attempt.References...)
	reg.UpdatedAt = time.Now().UTC()
	r.items[id] = reg
	return nil
}

func (r *RegistrationMemoryRepository) UpdateStatusIfPending(_ context.Context, id string, status entities.PaymentStatus, reason string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.items[id]
	if !ok || reg.PaymentStatus != entities.PaymentStatusPending {
		return false, nil
	}
	reg.PaymentStatus = status
	reg.PaymentReason = reason
	reg.UpdatedAt = time.Now().UTC()
	r.items[id] = reg
	return true, nil
}

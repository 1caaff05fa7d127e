package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"ticket_checkout/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRegistration() entities.Registration {
	now := time.Now().UTC()
	return entities.Registration{
		EventID:       "evt-1",
		Name:          "Ama Mensah",
		Phone:         "+233241234567",
		Participants:  1,
		Amount:        decimal.RequireFromString("50.00"),
		PaymentStatus: entities.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestRegistrationMemoryRepository_CreateAssignsID(t *testing.T) {
	repo := NewRegistrationMemoryRepository()
	created, err := repo.Create(context.Background(), pendingRegistration())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, entities.PaymentStatusPending, got.PaymentStatus)
}

func TestRegistrationMemoryRepository_GetByIDMissing(t *testing.T) {
	repo := NewRegistrationMemoryRepository()
	got, err := repo.GetByID(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, got.ID)
}

func TestRegistrationMemoryRepository_UpdateStatusIfPending(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationMemoryRepository()
	created, err := repo.Create(ctx, pendingRegistration())
	require.NoError(t, err)

	applied, err := repo.UpdateStatusIfPending(ctx, created.ID, entities.PaymentStatusConfirmed, "")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = repo.UpdateStatusIfPending(ctx, created.ID, entities.PaymentStatusFailed, "declined")
	require.NoError(t, err)
	assert.False(t, applied)

	got, _ := repo.GetByID(ctx, created.ID)
	assert.Equal(t, entities.PaymentStatusConfirmed, got.PaymentStatus)
	assert.Empty(t, got.PaymentReason)
}

func TestRegistrationMemoryRepository_ConcurrentTerminalWritesApplyOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationMemoryRepository()
	created, err := repo.Create(ctx, pendingRegistration())
	require.NoError(t, err)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		applied int
	)
	statuses := []entities.PaymentStatus{entities.PaymentStatusConfirmed, entities.PaymentStatusFailed}
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(status entities.PaymentStatus) {
			defer wg.Done()
			ok, err := repo.UpdateStatusIfPending(ctx, created.ID, status, "")
			assert.NoError(t, err)
			if ok {
				mu.Lock()
				applied++
				mu.Unlock()
			}
		}(statuses[i%2])
	}
	wg.Wait()

	assert.Equal(t, 1, applied)
	got, _ := repo.GetByID(ctx, created.ID)
	assert.True(t, got.PaymentStatus.IsTerminal())
}

func TestRegistrationMemoryRepository_RecordAttemptOnlyWhilePending(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationMemoryRepository()
	created, _ := repo.Create(ctx, pendingRegistration())

	require.NoError(t, repo.RecordAttempt(ctx, created.ID, entities.PaymentAttempt{
		References: []string{"COL1", "TX1"},
		Network:    "mtn",
		Narration:  "Ticket payment: Gala x1",
	}))
	got, _ := repo.GetByID(ctx, created.ID)
	assert.Equal(t, []string{"COL1", "TX1"}, got.PaymentReferences)
	assert.Equal(t, "mtn", got.Network)

	_, _ = repo.UpdateStatusIfPending(ctx, created.ID, entities.PaymentStatusFailed, "declined")
	require.NoError(t, repo.RecordAttempt(ctx, created.ID, entities.PaymentAttempt{References: []string{"OTHER"}}))
	got, _ = repo.GetByID(ctx, created.ID)
	assert.Equal(t, []string{"COL1", "TX1"}, got.PaymentReferences)
}

func TestRegistrationMemoryRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	repo := NewRegistrationMemoryRepository()
	first := pendingRegistration()
	second := pendingRegistration()
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	other := pendingRegistration()
	other.EventID = "evt-2"

	a, _ := repo.Create(ctx, second)
	b, _ := repo.Create(ctx, first)
	_, _ = repo.Create(ctx, other)

	list, err := repo.ListByEventID(ctx, "evt-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

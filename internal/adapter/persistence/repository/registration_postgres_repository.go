package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticket_checkout/internal/domain/entities"
	"ticket_checkout/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RegistrationsSchema creates the registrations table used by RegistrationPostgresRepository.
const RegistrationsSchema = `
CREATE TABLE IF NOT EXISTS registrations (
	id                 TEXT PRIMARY KEY,
	event_id           TEXT        NOT NULL,
	name               TEXT        NOT NULL,
	email              TEXT        NOT NULL DEFAULT '',
	phone              TEXT        NOT NULL,
	participants       INTEGER     NOT NULL DEFAULT 1,
	notes              TEXT        NOT NULL DEFAULT '',
	amount             NUMERIC(12,2) NOT NULL,
	payment_status     TEXT        NOT NULL,
	payment_reason     TEXT        NOT NULL DEFAULT '',
	network            TEXT        NOT NULL DEFAULT '',
	narration          TEXT        NOT NULL DEFAULT '',
	payment_references TEXT[]      NOT NULL DEFAULT '{}',
	created_at         TIMESTAMPTZ NOT NULL,
	updated_at         TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS registrations_event_id_idx ON registrations (event_id);
`

const registrationColumns = `id, event_id, name, email, phone, participants, notes, amount::text,
	payment_status, payment_reason, network, narration, payment_references, created_at, updated_at`

// RegistrationPostgresRepository persists Registration entities in PostgreSQL using pgx.
//
// The terminal transition is a single conditional UPDATE:
//
//	UPDATE registrations SET payment_status = $2 ... WHERE id = $1 AND payment_status = 'pending'
//
// Row-level locking makes concurrent writers queue on the row; the second one
// re-evaluates the WHERE clause against the committed status and affects no rows.
type RegistrationPostgresRepository struct {
	db *pgxpool.Pool
}

var _ interfaces.IRegistrationRepository = (*RegistrationPostgresRepository)(nil)

func NewRegistrationPostgresRepository(db *pgxpool.Pool) *RegistrationPostgresRepository {
	return &RegistrationPostgresRepository{db: db}
}

// EnsureSchema creates the registrations table if it does not exist.
func (r *RegistrationPostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, RegistrationsSchema); err != nil {
		return fmt.Errorf("create registrations schema: %w", err)
	}
	return nil
}

func (r *RegistrationPostgresRepository) Create(ctx context.Context, reg entities.Registration) (entities.Registration, error) {
	if reg.ID == "" {
		reg.ID = uuid.New().String()
	}
	refs := reg.PaymentReferences
	if refs == nil {
		refs = []string{}
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO registrations (id, event_id, name, email, phone, participants, notes, amount,
			payment_status, payment_reason, network, narration, payment_references, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8::numeric, $9, $10, $11, $12, $13, $14, $15)`,
		reg.ID, reg.EventID, reg.Name, reg.Email, reg.Phone, reg.Participants, reg.Notes, reg.Amount.String(),
		string(reg.PaymentStatus), reg.PaymentReason, reg.Network, reg.Narration, refs, reg.CreatedAt, reg.UpdatedAt,
	)
	if err != nil {
		return entities.Registration{}, fmt.Errorf("insert registration: %w", err)
	}
	return reg, nil
}

func (r *RegistrationPostgresRepository) GetByID(ctx context.Context, id string) (entities.Registration, error) {
	row := r.db.QueryRow(ctx, `SELECT `+registrationColumns+` FROM registrations WHERE id = $1`, id)
	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.Registration{}, nil
		}
		return entities.Registration{}, fmt.Errorf("get registration: %w", err)
	}
	return reg, nil
}

func (r *RegistrationPostgresRepository) ListByEventID(ctx context.Context, eventID string) ([]entities.Registration, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+registrationColumns+` FROM registrations WHERE event_id = $1 ORDER BY created_at ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	defer rows.Close()

	regs := []entities.Registration{}
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

func (r *RegistrationPostgresRepository) RecordAttempt(ctx context.Context, id string, attempt entities.PaymentAttempt) error {
	_, err := r.db.Exec(ctx,
		`UPDATE registrations
		 SET network = $2, narration = $3, payment_references = $4, updated_at = $5
		 WHERE id = $1 AND payment_status = $6`,
		id, attempt.Network, attempt.Narration, attempt.References, time.Now().UTC(), string(entities.PaymentStatusPending),
	)
	if err != nil {
		return fmt.Errorf("record payment attempt: %w", err)
	}
	return nil
}

func (r *RegistrationPostgresRepository) UpdateStatusIfPending(ctx context.Context, id string, status entities.PaymentStatus, reason string) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE registrations
		 SET payment_status = $2, payment_reason = $3, updated_at = $4
		 WHERE id = $1 AND payment_status = $5`,
		id, string(status), reason, time.Now().UTC(), string(entities.PaymentStatusPending),
	)
	if err != nil {
		return false, fmt.Errorf("update payment status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanRegistration(row pgx.Row) (entities.Registration, error) {
	var (
		reg    entities.Registration
		amount string
		status string
	)
	err := row.Scan(
		&reg.ID, &reg.EventID, &reg.Name, &reg.Email, &reg.Phone, &reg.Participants, &reg.Notes, &amount,
		&status, &reg.PaymentReason, &reg.Network, &reg.Narration, &reg.PaymentReferences, &reg.CreatedAt, &reg.UpdatedAt,
	)
	if err != nil {
		return entities.Registration{}, err
	}
	reg.Amount = parseAmount(amount)
	reg.PaymentStatus = entities.PaymentStatus(status)
	return reg, nil
}

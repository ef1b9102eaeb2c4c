package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type rowQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores appointments in the appointments table, whose
// UNIQUE (appointment_date, appointment_time) constraint backs the
// conditional insert.
type PostgresRepository struct {
	pool rowQuerier
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("appointments: pgx pool required")
	}
	return &PostgresRepository{pool: pool}
}

func newPostgresRepositoryWithExec(exec rowQuerier) *PostgresRepository {
	if exec == nil {
		panic("appointments: exec required")
	}
	return &PostgresRepository{pool: exec}
}

// Exists is an advisory check; Insert is the authority on conflicts.
func (r *PostgresRepository) Exists(ctx context.Context, date, clock string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE appointment_date = $1::date AND appointment_time = $2::time
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, date, clock).Scan(&exists); err != nil {
		return false, fmt.Errorf("appointments: check slot: %w", err)
	}
	return exists, nil
}

// Insert writes the row only if the slot is free. No returned row means a
// concurrent booking won the slot.
func (r *PostgresRepository) Insert(ctx context.Context, appt *Appointment) error {
	id := uuid.New()
	query := `
		INSERT INTO appointments (id, name, email, phone, appointment_date, appointment_time, service_id, message)
		VALUES ($1, $2, $3, $4, $5::date, $6::time, $7, $8)
		ON CONFLICT (appointment_date, appointment_time) DO NOTHING
		RETURNING created_at
	`
	var createdAt time.Time
	err := r.pool.QueryRow(ctx, query,
		id,
		appt.Name,
		appt.Email,
		appt.Phone,
		appt.Date,
		appt.Time,
		appt.ServiceID,
		appt.Message,
	).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrSlotTaken
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return ErrSlotTaken
			case pgForeignKeyViolation:
				return ErrUnknownService
			}
		}
		return fmt.Errorf("appointments: insert failed: %w", err)
	}
	appt.ID = id.String()
	appt.CreatedAt = createdAt
	return nil
}

func (r *PostgresRepository) BookedTimes(ctx context.Context, date string) ([]string, error) {
	query := `
		SELECT to_char(appointment_time, 'HH24:MI:SS')
		FROM appointments
		WHERE appointment_date = $1::date
		ORDER BY appointment_time
	`
	rows, err := r.pool.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("appointments: list booked: %w", err)
	}
	times, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("appointments: scan booked: %w", err)
	}
	return times, nil
}

func (r *PostgresRepository) ServiceOptions(ctx context.Context) ([]ServiceOption, error) {
	query := `SELECT id, title_fr, title_en, title_ar FROM services ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("appointments: list services: %w", err)
	}
	defer rows.Close()

	options := make([]ServiceOption, 0)
	for rows.Next() {
		var opt ServiceOption
		if err := rows.Scan(&opt.ID, &opt.TitleFR, &opt.TitleEN, &opt.TitleAR); err != nil {
			return nil, fmt.Errorf("appointments: scan service: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("appointments: iterate services: %w", err)
	}
	return options, nil
}

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medicore/hms-api/internal/domain/entity"
	"github.com/medicore/hms-api/internal/domain/repository"
)

// 23P01: exclusion_violation, raised by the no-overlap constraint when two
// bookings race past the row-lock check.
const pgExclusionViolation = "23P01"

type AppointmentRepository struct {
	pool *pgxpool.Pool
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{pool: pool}
}

const appointmentColumns = `id, patient_id, doctor_id, starts_at, ends_at, status, notes, created_at, updated_at`

func scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	a := &entity.Appointment{}
	if err := row.Scan(&a.ID, &a.PatientID, &a.DoctorID, &a.StartsAt, &a.EndsAt,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a scheduled appointment after locking the doctor's
// non-cancelled rows and checking for overlap. The exclusion constraint is the
// backstop for inserts racing each other.
func (r *AppointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ok, err := slotFree(ctx, tx, a.DoctorID, a.StartsAt, a.EndsAt, "")
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrConflict
	}

	row := tx.QueryRow(ctx, `
		INSERT INTO appointments (patient_id, doctor_id, starts_at, ends_at, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, a.PatientID, a.DoctorID, a.StartsAt, a.EndsAt, a.Status, a.Notes)
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return mapConflict(err)
	}
	return tx.Commit(ctx)
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+appointmentColumns+` FROM appointments WHERE id = $1`, id)
	a, err := scanAppointment(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AppointmentRepository) Reschedule(ctx context.Context, id string, startsAt, endsAt time.Time) (*entity.Appointment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var doctorID string
	if err := tx.QueryRow(ctx, `
		SELECT doctor_id FROM appointments WHERE id = $1 AND status = 'scheduled' FOR UPDATE
	`, id).Scan(&doctorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	ok, err := slotFree(ctx, tx, doctorID, startsAt, endsAt, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrConflict
	}

	row := tx.QueryRow(ctx, `
		UPDATE appointments SET starts_at = $2, ends_at = $3, updated_at = now()
		WHERE id = $1
		RETURNING `+appointmentColumns+`
	`, id, startsAt, endsAt)
	a, err := scanAppointment(row)
	if err != nil {
		return nil, mapConflict(err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE appointments SET status = $2, updated_at = now()
		WHERE id = $1 AND status = 'scheduled'
		RETURNING `+appointmentColumns+`
	`, id, status)
	a, err := scanAppointment(row)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	// Distinguish a missing row from one already in a terminal state.
	if _, gerr := r.GetByID(ctx, id); gerr != nil {
		return nil, gerr
	}
	return nil, repository.ErrConflict
}

func (r *AppointmentRepository) List(ctx context.Context, f repository.AppointmentFilter) ([]*entity.Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE ($1 = '' OR doctor_id::text = $1)
		  AND ($2 = '' OR patient_id::text = $2)
		  AND ($3 = '' OR status = $3)
		  AND ($4::timestamptz IS NULL OR starts_at >= $4)
		  AND ($5::timestamptz IS NULL OR starts_at < $5)
		ORDER BY starts_at
		LIMIT $6 OFFSET $7
	`, f.DoctorID, f.PatientID, string(f.Status), nullableTime(f.From), nullableTime(f.To), f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AppointmentRepository) ListForDoctorOn(ctx context.Context, doctorID string, dayStart, dayEnd time.Time) ([]*entity.Appointment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+appointmentColumns+`
		FROM appointments
		WHERE doctor_id = $1 AND status <> 'cancelled'
		  AND starts_at < $3 AND ends_at > $2
		ORDER BY starts_at
	`, doctorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// slotFree locks the doctor's non-cancelled appointments intersecting the slot
// and reports whether the slot is free. excludeID skips the row being moved.
func slotFree(ctx context.Context, tx pgx.Tx, doctorID string, startsAt, endsAt time.Time, excludeID string) (bool, error) {
	rows, err := tx.Query(ctx, `
		SELECT id FROM appointments
		WHERE doctor_id = $1 AND status <> 'cancelled'
		  AND starts_at < $3 AND ends_at > $2
		  AND ($4 = '' OR id::text <> $4)
		FOR UPDATE
	`, doctorID, startsAt, endsAt, excludeID)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	if rows.Next() {
		return false, nil
	}
	return true, rows.Err()
}

func mapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation {
		return repository.ErrConflict
	}
	return err
}

func nullableTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

var _ repository.AppointmentRepository = (*AppointmentRepository)(nil)

package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medicore/hms-api/internal/domain/entity"
	"github.com/medicore/hms-api/internal/domain/repository"
)

type DoctorRepository struct {
	pool *pgxpool.Pool
}

func NewDoctorRepository(pool *pgxpool.Pool) *DoctorRepository {
	return &DoctorRepository{pool: pool}
}

func (r *DoctorRepository) Create(ctx context.Context, d *entity.Doctor) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO doctors (name, specialty, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, d.Name, d.Specialty, d.Email, d.Phone)
	return row.Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)
}

func (r *DoctorRepository) GetByID(ctx context.Context, id string) (*entity.Doctor, error) {
	d := &entity.Doctor{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, specialty, email, phone, created_at, updated_at, deleted_at
		FROM doctors
		WHERE id = $1
	`, id)
	if err := row.Scan(&d.ID, &d.Name, &d.Specialty, &d.Email, &d.Phone,
		&d.CreatedAt, &d.UpdatedAt, &d.DeletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	avail, err := r.listAvailability(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.Availabilities = avail
	return d, nil
}

func (r *DoctorRepository) Update(ctx context.Context, d *entity.Doctor) error {
	d.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE doctors
		SET name = $1, specialty = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $6 AND deleted_at IS NULL
	`, d.Name, d.Specialty, d.Email, d.Phone, d.UpdatedAt, d.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *DoctorRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE doctors SET deleted_at = now(), updated_at = now()
		WHERE id = $1 AND deleted_at IS NULL
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *DoctorRepository) List(ctx context.Context, f repository.DoctorFilter) ([]*entity.Doctor, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, specialty, email, phone, created_at, updated_at, deleted_at
		FROM doctors
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR specialty = $1)
		ORDER BY name
		LIMIT $2 OFFSET $3
	`, f.Specialty, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Doctor
	for rows.Next() {
		d := &entity.Doctor{}
		if err := rows.Scan(&d.ID, &d.Name, &d.Specialty, &d.Email, &d.Phone,
			&d.CreatedAt, &d.UpdatedAt, &d.DeletedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ReplaceAvailability swaps the doctor's whole weekly schedule in one transaction.
func (r *DoctorRepository) ReplaceAvailability(ctx context.Context, doctorID string, slots []entity.Availability) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM doctor_availability WHERE doctor_id = $1`, doctorID); err != nil {
		return err
	}
	for _, s := range slots {
		if _, err := tx.Exec(ctx, `
			INSERT INTO doctor_availability (doctor_id, weekday, start_time, end_time)
			VALUES ($1, $2, $3, $4)
		`, doctorID, int(s.Weekday), s.Start, s.End); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *DoctorRepository) listAvailability(ctx context.Context, doctorID string) ([]entity.Availability, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, doctor_id, weekday, start_time, end_time
		FROM doctor_availability
		WHERE doctor_id = $1
		ORDER BY weekday, start_time
	`, doctorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Availability
	for rows.Next() {
		var a entity.Availability
		var weekday int
		if err := rows.Scan(&a.ID, &a.DoctorID, &weekday, &a.Start, &a.End); err != nil {
			return nil, err
		}
		a.Weekday = time.Weekday(weekday)
		out = append(out, a)
	}
	return out, rows.Err()
}

var _ repository.DoctorRepository = (*DoctorRepository)(nil)

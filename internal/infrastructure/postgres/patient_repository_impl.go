package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medicore/hms-api/internal/domain/entity"
	"github.com/medicore/hms-api/internal/domain/repository"
)

type PatientRepository struct {
	pool *pgxpool.Pool
}

func NewPatientRepository(pool *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{pool: pool}
}

const patientColumns = `id, name, age, gender, phone, email, address, document_urls, created_at, updated_at, deleted_at`

func scanPatient(row pgx.Row) (*entity.Patient, error) {
	p := &entity.Patient{}
	var docs []byte
	if err := row.Scan(&p.ID, &p.Name, &p.Age, &p.Gender, &p.Phone, &p.Email, &p.Address,
		&docs, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		if err := json.Unmarshal(docs, &p.DocumentURLs); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (r *PatientRepository) Create(ctx context.Context, p *entity.Patient) error {
	docs, err := json.Marshal(p.DocumentURLs)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO patients (name, age, gender, phone, email, address, document_urls)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Age, p.Gender, p.Phone, p.Email, p.Address, docs)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// GetByID resolves soft-deleted patients too; the service decides whether a
// deleted record may be served.
func (r *PatientRepository) GetByID(ctx context.Context, id string) (*entity.Patient, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+patientColumns+` FROM patients WHERE id = $1`, id)
	p, err := scanPatient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *PatientRepository) Update(ctx context.Context, p *entity.Patient) error {
	p.UpdatedAt = time.Now()
	docs, err := json.Marshal(p.DocumentURLs)
	if err != nil {
		return err
	}
	res, err := r.pool.Exec(ctx, `
		UPDATE patients
		SET name = $1, age = $2, gender = $3, phone = $4, email = $5, address = $6,
		    document_urls = $7, updated_at = $8
		WHERE id = $9 AND deleted_at IS NULL
	`, p.Name, p.Age, p.Gender, p.Phone, p.Email, p.Address, docs, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *PatientRepository) SoftDelete(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE patients SET deleted_at = now(), updated_at = now()
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

func (r *PatientRepository) List(ctx context.Context, f repository.PatientFilter) ([]*entity.Patient, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+patientColumns+`
		FROM patients
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR name ILIKE '%' || $1 || '%')
		ORDER BY created_at
		LIMIT $2 OFFSET $3
	`, f.Name, f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ repository.PatientRepository = (*PatientRepository)(nil)

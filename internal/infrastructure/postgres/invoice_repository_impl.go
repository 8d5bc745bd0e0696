package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medicore/hms-api/internal/domain/entity"
	"github.com/medicore/hms-api/internal/domain/repository"
)

type InvoiceRepository struct {
	pool *pgxpool.Pool
}

func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{pool: pool}
}

const invoiceColumns = `id, appointment_id, patient_id, items, total, status, paid_at, created_at, updated_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	inv := &entity.Invoice{}
	var items []byte
	if err := row.Scan(&inv.ID, &inv.AppointmentID, &inv.PatientID, &items, &inv.Total,
		&inv.Status, &inv.PaidAt, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &inv.Items); err != nil {
			return nil, err
		}
	}
	return inv, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *entity.Invoice) error {
	items, err := json.Marshal(inv.Items)
	if err != nil {
		return err
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO invoices (appointment_id, patient_id, items, total, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, inv.AppointmentID, inv.PatientID, items, inv.Total, inv.Status)
	if err := row.Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return repository.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepository) GetByAppointmentID(ctx context.Context, appointmentID string) (*entity.Invoice, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE appointment_id = $1`, appointmentID)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id string, from, to entity.InvoiceStatus, paidAt *time.Time) (*entity.Invoice, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE invoices
		SET status = $3, paid_at = COALESCE($4, paid_at), updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING `+invoiceColumns+`
	`, id, from, to, paidAt)
	inv, err := scanInvoice(row)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	if _, gerr := r.GetByID(ctx, id); gerr != nil {
		return nil, gerr
	}
	return nil, repository.ErrConflict
}

func (r *InvoiceRepository) List(ctx context.Context, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+invoiceColumns+`
		FROM invoices
		WHERE ($1 = '' OR patient_id::text = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`, f.PatientID, string(f.Status), f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

var _ repository.InvoiceRepository = (*InvoiceRepository)(nil)

package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medicore/hms-api/internal/domain/repository"
)

// DashboardRepository runs the read-only aggregate queries behind the admin
// dashboard. Everything here is scoped to non-deleted records.
type DashboardRepository struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

func (r *DashboardRepository) CountPatients(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM patients WHERE deleted_at IS NULL`).Scan(&n)
	return n, err
}

func (r *DashboardRepository) CountDoctors(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM doctors WHERE deleted_at IS NULL`).Scan(&n)
	return n, err
}

func (r *DashboardRepository) AppointmentsByStatus(ctx context.Context, from, to time.Time) ([]repository.StatusCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT status, count(*)
		FROM appointments
		WHERE starts_at >= $1 AND starts_at < $2
		GROUP BY status
		ORDER BY status
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.StatusCount
	for rows.Next() {
		var sc repository.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func (r *DashboardRepository) AppointmentsPerDay(ctx context.Context, from, to time.Time) ([]repository.DayCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('day', starts_at) AS day, count(*)
		FROM appointments
		WHERE starts_at >= $1 AND starts_at < $2
		GROUP BY day
		ORDER BY day
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.DayCount
	for rows.Next() {
		var dc repository.DayCount
		if err := rows.Scan(&dc.Day, &dc.Count); err != nil {
			return nil, err
		}
		out = append(out, dc)
	}
	return out, rows.Err()
}

func (r *DashboardRepository) PaidRevenue(ctx context.Context, from, to time.Time) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(sum(total), 0)
		FROM invoices
		WHERE status = 'paid' AND paid_at >= $1 AND paid_at < $2
	`, from, to).Scan(&total)
	return total, err
}

func (r *DashboardRepository) RevenuePerMonth(ctx context.Context, from, to time.Time) ([]repository.MonthRevenue, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT date_trunc('month', paid_at) AS month, COALESCE(sum(total), 0)
		FROM invoices
		WHERE status = 'paid' AND paid_at >= $1 AND paid_at < $2
		GROUP BY month
		ORDER BY month
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.MonthRevenue
	for rows.Next() {
		var mr repository.MonthRevenue
		if err := rows.Scan(&mr.Month, &mr.Revenue); err != nil {
			return nil, err
		}
		out = append(out, mr)
	}
	return out, rows.Err()
}

func (r *DashboardRepository) RevenuePerDoctor(ctx context.Context, from, to time.Time) ([]repository.DoctorRevenue, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.name,
		       count(DISTINCT a.id),
		       COALESCE(sum(i.total) FILTER (WHERE i.status = 'paid'), 0)
		FROM doctors d
		JOIN appointments a ON a.doctor_id = d.id
		LEFT JOIN invoices i ON i.appointment_id = a.id
		WHERE a.starts_at >= $1 AND a.starts_at < $2
		GROUP BY d.id, d.name
		ORDER BY 4 DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.DoctorRevenue
	for rows.Next() {
		var dr repository.DoctorRevenue
		if err := rows.Scan(&dr.DoctorID, &dr.Name, &dr.Bookings, &dr.Revenue); err != nil {
			return nil, err
		}
		out = append(out, dr)
	}
	return out, rows.Err()
}

func (r *DashboardRepository) RevenuePerSpecialty(ctx context.Context, from, to time.Time) ([]repository.SpecialtyRevenue, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.specialty,
		       count(DISTINCT a.id),
		       COALESCE(sum(i.total) FILTER (WHERE i.status = 'paid'), 0)
		FROM doctors d
		JOIN appointments a ON a.doctor_id = d.id
		LEFT JOIN invoices i ON i.appointment_id = a.id
		WHERE a.starts_at >= $1 AND a.starts_at < $2
		GROUP BY d.specialty
		ORDER BY 3 DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.SpecialtyRevenue
	for rows.Next() {
		var sr repository.SpecialtyRevenue
		if err := rows.Scan(&sr.Specialty, &sr.Bookings, &sr.Revenue); err != nil {
			return nil, err
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

var _ repository.DashboardRepository = (*DashboardRepository)(nil)

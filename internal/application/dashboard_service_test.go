package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hms-api/internal/domain/repository"
)

func TestDashboardService_Summary(t *testing.T) {
	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	dash := &MockDashboardRepository{
		CountPatientsFunc: func(ctx context.Context) (int64, error) { return 120, nil },
		CountDoctorsFunc:  func(ctx context.Context) (int64, error) { return 8, nil },
		AppointmentsByStatusFunc: func(ctx context.Context, f, u time.Time) ([]repository.StatusCount, error) {
			return []repository.StatusCount{
				{Status: "scheduled", Count: 14},
				{Status: "completed", Count: 31},
				{Status: "cancelled", Count: 3},
			}, nil
		},
		PaidRevenueFunc: func(ctx context.Context, f, u time.Time) (float64, error) { return 1550.0, nil },
		RevenuePerDoctorFunc: func(ctx context.Context, f, u time.Time) ([]repository.DoctorRevenue, error) {
			return []repository.DoctorRevenue{
				{DoctorID: "d-smith", Name: "Dr. Smith", Bookings: 31, Revenue: 1550},
			}, nil
		},
	}
	svc := NewDashboardService(dash, nil, 0, nil)

	sum, err := svc.Summary(context.Background(), from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(120), sum.TotalPatients)
	assert.Equal(t, int64(8), sum.TotalDoctors)
	assert.Equal(t, 1550.0, sum.PaidRevenue)
	assert.Len(t, sum.AppointmentsByStatus, 3)
	assert.Equal(t, from, sum.From)
	assert.Equal(t, to, sum.To)
}

func TestDashboardService_Summary_EmptyRange(t *testing.T) {
	svc := NewDashboardService(&MockDashboardRepository{}, nil, 0, nil)
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Summary(context.Background(), day, day)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

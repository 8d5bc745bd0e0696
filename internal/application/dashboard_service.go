package application

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	repo "github.com/medicore/hms-api/internal/domain/repository"
	"github.com/medicore/hms-api/pkg/helpers"
)

// Summary is the read-only aggregate served to the dashboard.
type Summary struct {
	From                 time.Time               `json:"from"`
	To                   time.Time               `json:"to"`
	TotalPatients        int64                   `json:"total_patients"`
	TotalDoctors         int64                   `json:"total_doctors"`
	AppointmentsByStatus []repo.StatusCount      `json:"appointments_by_status"`
	AppointmentsPerDay   []repo.DayCount         `json:"appointments_per_day"`
	PaidRevenue          float64                 `json:"paid_revenue"`
	RevenuePerMonth      []repo.MonthRevenue     `json:"revenue_per_month"`
	RevenuePerDoctor     []repo.DoctorRevenue    `json:"revenue_per_doctor"`
	RevenuePerSpecialty  []repo.SpecialtyRevenue `json:"revenue_per_specialty"`
}

// DashboardService aggregates counts and revenue. It only reads; results are
// cached briefly in redis keyed by the requested range.
type DashboardService struct {
	Dash     repo.DashboardRepository
	Redis    *redis.Client
	CacheTTL time.Duration
	Logger   *logrus.Logger
}

func NewDashboardService(dash repo.DashboardRepository, rdb *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *DashboardService {
	return &DashboardService{Dash: dash, Redis: rdb, CacheTTL: cacheTTL, Logger: logger}
}

func summaryCacheKey(from, to time.Time) string {
	return fmt.Sprintf("dashboard:summary:%s:%s", from.UTC().Format("2006-01-02"), to.UTC().Format("2006-01-02"))
}

func (s *DashboardService) Summary(ctx context.Context, from, to time.Time) (*Summary, error) {
	if !from.Before(to) {
		return nil, fmt.Errorf("%w: empty date range", ErrInvalidInput)
	}

	key := summaryCacheKey(from, to)
	if s.Redis != nil && s.CacheTTL > 0 {
		var cached Summary
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	sum := &Summary{From: from, To: to}
	var err error
	if sum.TotalPatients, err = s.Dash.CountPatients(ctx); err != nil {
		return nil, err
	}
	if sum.TotalDoctors, err = s.Dash.CountDoctors(ctx); err != nil {
		return nil, err
	}
	if sum.AppointmentsByStatus, err = s.Dash.AppointmentsByStatus(ctx, from, to); err != nil {
		return nil, err
	}
	if sum.AppointmentsPerDay, err = s.Dash.AppointmentsPerDay(ctx, from, to); err != nil {
		return nil, err
	}
	if sum.PaidRevenue, err = s.Dash.PaidRevenue(ctx, from, to); err != nil {
		return nil, err
	}
	if sum.RevenuePerMonth, err = s.Dash.RevenuePerMonth(ctx, from, to); err != nil {
		return nil, err
	}
	if sum.RevenuePerDoctor, err = s.Dash.RevenuePerDoctor(ctx, from, to); err != nil {
		return nil, err
	}
	if sum.RevenuePerSpecialty, err = s.Dash.RevenuePerSpecialty(ctx, from, to); err != nil {
		return nil, err
	}

	if s.Redis != nil && s.CacheTTL > 0 {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, sum, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("summary cache write failed")
		}
	}
	return sum, nil
}

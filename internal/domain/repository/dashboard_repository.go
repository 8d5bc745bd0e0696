package repository

import (
	"context"
	"time"
)

// StatusCount is one appointment status with its count in a range.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DayCount is the number of appointments starting on one day.
type DayCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}

// MonthRevenue is paid invoice revenue for one calendar month.
type MonthRevenue struct {
	Month   time.Time `json:"month"`
	Revenue float64   `json:"revenue"`
}

// DoctorRevenue is booking count and paid revenue attributed to one doctor.
type DoctorRevenue struct {
	DoctorID string  `json:"doctor_id"`
	Name     string  `json:"name"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// SpecialtyRevenue aggregates DoctorRevenue by specialty.
type SpecialtyRevenue struct {
	Specialty string  `json:"specialty"`
	Bookings  int64   `json:"bookings"`
	Revenue   float64 `json:"revenue"`
}

// DashboardRepository exposes read-only aggregate queries for reporting.
type DashboardRepository interface {
	CountPatients(ctx context.Context) (int64, error)
	CountDoctors(ctx context.Context) (int64, error)
	AppointmentsByStatus(ctx context.Context, from, to time.Time) ([]StatusCount, error)
	AppointmentsPerDay(ctx context.Context, from, to time.Time) ([]DayCount, error)
	PaidRevenue(ctx context.Context, from, to time.Time) (float64, error)
	RevenuePerMonth(ctx context.Context, from, to time.Time) ([]MonthRevenue, error)
	RevenuePerDoctor(ctx context.Context, from, to time.Time) ([]DoctorRevenue, error)
	RevenuePerSpecialty(ctx context.Context, from, to time.Time) ([]SpecialtyRevenue, error)
}

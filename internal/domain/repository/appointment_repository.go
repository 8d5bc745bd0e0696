package repository

import (
	"context"
	"time"

	"github.com/medicore/hms-api/internal/domain/entity"
)

// AppointmentFilter narrows List results. Zero values mean "no filter".
type AppointmentFilter struct {
	DoctorID  string
	PatientID string
	Status    entity.AppointmentStatus
	From      time.Time
	To        time.Time
	Limit     int
	Offset    int
}

// AppointmentRepository defines database operations for appointments.
//
// Create and Reschedule run inside a transaction that locks the doctor's
// non-cancelled appointments and return ErrConflict when the requested slot
// overlaps one of them. Reschedule excludes the row being moved.
type AppointmentRepository interface {
	Create(ctx context.Context, a *entity.Appointment) error
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)
	Reschedule(ctx context.Context, id string, startsAt, endsAt time.Time) (*entity.Appointment, error)
	// UpdateStatus transitions a scheduled appointment; ErrConflict when the
	// row exists but is already terminal.
	UpdateStatus(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error)
	List(ctx context.Context, f AppointmentFilter) ([]*entity.Appointment, error)
	// ListForDoctorOn returns non-cancelled appointments for one doctor within
	// [dayStart, dayEnd), used for slot listing.
	ListForDoctorOn(ctx context.Context, doctorID string, dayStart, dayEnd time.Time) ([]*entity.Appointment, error)
}

package application

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hms-api/internal/domain/entity"
	"github.com/medicore/hms-api/internal/domain/repository"
)

// memAppointments emulates the repository's transactional overlap check with a
// plain slice, so service-level booking behavior can be exercised end to end.
type memAppointments struct {
	MockAppointmentRepository
	stored []*entity.Appointment
}

func newMemAppointments() *memAppointments {
	m := &memAppointments{}
	m.CreateFunc = func(ctx context.Context, a *entity.Appointment) error {
		for _, ex := range m.stored {
			if ex.DoctorID == a.DoctorID && ex.Status != entity.AppointmentCancelled && ex.Overlaps(a.StartsAt, a.EndsAt) {
				return repository.ErrConflict
			}
		}
		a.ID = fmt.Sprintf("appt-%d", len(m.stored)+1)
		a.CreatedAt = time.Now()
		a.UpdatedAt = a.CreatedAt
		cp := *a
		m.stored = append(m.stored, &cp)
		return nil
	}
	m.GetByIDFunc = func(ctx context.Context, id string) (*entity.Appointment, error) {
		for _, ex := range m.stored {
			if ex.ID == id {
				cp := *ex
				return &cp, nil
			}
		}
		return nil, repository.ErrNotFound
	}
	m.UpdateStatusFunc = func(ctx context.Context, id string, status entity.AppointmentStatus) (*entity.Appointment, error) {
		for _, ex := range m.stored {
			if ex.ID != id {
				continue
			}
			if ex.Status != entity.AppointmentScheduled {
				return nil, repository.ErrConflict
			}
			ex.Status = status
			cp := *ex
			return &cp, nil
		}
		return nil, repository.ErrNotFound
	}
	return m
}

func schedulingFixture() (*memAppointments, *AppointmentService, *entity.Patient, *entity.Doctor) {
	patient := &entity.Patient{ID: "p-jane", Name: "Jane Doe", Email: "jane@clinic.test"}
	doctor := &entity.Doctor{ID: "d-smith", Name: "Dr. Smith", Specialty: "General Medicine"}

	appts := newMemAppointments()
	patients := &MockPatientRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Patient, error) {
			if id == patient.ID {
				return patient, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	doctors := &MockDoctorRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Doctor, error) {
			if id == doctor.ID {
				return doctor, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewAppointmentService(appts, patients, doctors, nil, nil)
	return appts, svc, patient, doctor
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 9, 1, hour, minute, 0, 0, time.UTC)
}

func TestAppointmentService_Book(t *testing.T) {
	ctx := context.Background()
	_, svc, patient, doctor := schedulingFixture()

	a, err := svc.Book(ctx, BookInput{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		StartsAt:  at(10, 0),
		EndsAt:    at(10, 30),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, entity.AppointmentScheduled, a.Status)
}

func TestAppointmentService_Book_OverlapRejected(t *testing.T) {
	ctx := context.Background()
	_, svc, patient, doctor := schedulingFixture()

	_, err := svc.Book(ctx, BookInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		StartsAt: at(10, 0), EndsAt: at(10, 30),
	})
	require.NoError(t, err)

	// 10:15-10:45 overlaps the 10:00-10:30 booking with the same doctor.
	_, err = svc.Book(ctx, BookInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		StartsAt: at(10, 15), EndsAt: at(10, 45),
	})
	assert.ErrorIs(t, err, ErrSchedulingConflict)

	// Back to back is fine: the interval is half-open.
	_, err = svc.Book(ctx, BookInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		StartsAt: at(10, 30), EndsAt: at(11, 0),
	})
	assert.NoError(t, err)
}

func TestAppointmentService_Book_InvalidRange(t *testing.T) {
	_, svc, patient, doctor := schedulingFixture()

	_, err := svc.Book(context.Background(), BookInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		StartsAt: at(11, 0), EndsAt: at(10, 0),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAppointmentService_Book_UnknownOrDeletedParties(t *testing.T) {
	ctx := context.Background()
	_, svc, patient, doctor := schedulingFixture()

	_, err := svc.Book(ctx, BookInput{
		PatientID: "p-ghost", DoctorID: doctor.ID,
		StartsAt: at(9, 0), EndsAt: at(9, 30),
	})
	assert.ErrorIs(t, err, ErrNotFound)

	deleted := time.Now()
	patient.DeletedAt = &deleted
	_, err = svc.Book(ctx, BookInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		StartsAt: at(9, 0), EndsAt: at(9, 30),
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentService_CancelFreesSlot(t *testing.T) {
	ctx := context.Background()
	_, svc, patient, doctor := schedulingFixture()

	a, err := svc.Book(ctx, BookInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		StartsAt: at(10, 0), EndsAt: at(10, 30),
	})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentCancelled, cancelled.Status)

	// The slot is free again once the appointment is cancelled.
	_, err = svc.Book(ctx, BookInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		StartsAt: at(10, 0), EndsAt: at(10, 30),
	})
	assert.NoError(t, err)
}

func TestAppointmentService_TerminalStatesRejectTransitions(t *testing.T) {
	ctx := context.Background()
	_, svc, patient, doctor := schedulingFixture()

	a, err := svc.Book(ctx, BookInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		StartsAt: at(10, 0), EndsAt: at(10, 30),
	})
	require.NoError(t, err)

	_, err = svc.Complete(ctx, a.ID)
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, a.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Complete(ctx, a.ID)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = svc.Reschedule(ctx, a.ID, at(14, 0), at(14, 30))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAppointmentService_Reschedule_Conflict(t *testing.T) {
	ctx := context.Background()
	appts, svc, patient, doctor := schedulingFixture()

	a, err := svc.Book(ctx, BookInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		StartsAt: at(10, 0), EndsAt: at(10, 30),
	})
	require.NoError(t, err)
	_, err = svc.Book(ctx, BookInput{
		PatientID: patient.ID, DoctorID: doctor.ID,
		StartsAt: at(11, 0), EndsAt: at(11, 30),
	})
	require.NoError(t, err)

	appts.RescheduleFunc = func(ctx context.Context, id string, startsAt, endsAt time.Time) (*entity.Appointment, error) {
		for _, ex := range appts.stored {
			if ex.ID == id || ex.Status == entity.AppointmentCancelled {
				continue
			}
			if ex.DoctorID == doctor.ID && ex.Overlaps(startsAt, endsAt) {
				return nil, repository.ErrConflict
			}
		}
		for _, ex := range appts.stored {
			if ex.ID == id {
				ex.StartsAt, ex.EndsAt = startsAt, endsAt
				cp := *ex
				return &cp, nil
			}
		}
		return nil, repository.ErrNotFound
	}

	_, err = svc.Reschedule(ctx, a.ID, at(11, 15), at(11, 45))
	assert.ErrorIs(t, err, ErrSchedulingConflict)

	moved, err := svc.Reschedule(ctx, a.ID, at(12, 0), at(12, 30))
	require.NoError(t, err)
	assert.Equal(t, at(12, 0), moved.StartsAt)
}

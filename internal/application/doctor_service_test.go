package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hms-api/internal/domain/entity"
	"github.com/medicore/hms-api/internal/domain/repository"
)

func doctorFixture(availability []entity.Availability, booked []*entity.Appointment) *DoctorService {
	doctor := &entity.Doctor{
		ID:             "d-smith",
		Name:           "Dr. Smith",
		Specialty:      "General Medicine",
		Availabilities: availability,
	}
	doctors := &MockDoctorRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Doctor, error) {
			if id == doctor.ID {
				cp := *doctor
				return &cp, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	appts := &MockAppointmentRepository{
		ListForDoctorOnFunc: func(ctx context.Context, doctorID string, dayStart, dayEnd time.Time) ([]*entity.Appointment, error) {
			return booked, nil
		},
	}
	return NewDoctorService(doctors, appts, nil)
}

func TestDoctorService_SetAvailability_Validation(t *testing.T) {
	ctx := context.Background()
	svc := doctorFixture(nil, nil)

	_, err := svc.SetAvailability(ctx, "d-smith", []AvailabilityInput{
		{Weekday: time.Monday, Start: "9am", End: "13:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.SetAvailability(ctx, "d-smith", []AvailabilityInput{
		{Weekday: time.Monday, Start: "13:00", End: "09:00"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	d, err := svc.SetAvailability(ctx, "d-smith", []AvailabilityInput{
		{Weekday: time.Monday, Start: "09:00", End: "12:00"},
		{Weekday: time.Tuesday, Start: "14:00", End: "17:00"},
	})
	require.NoError(t, err)
	assert.Len(t, d.Availabilities, 2)
}

func TestDoctorService_AvailableSlots(t *testing.T) {
	// 2026-09-01 is a Tuesday.
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	avail := []entity.Availability{
		{DoctorID: "d-smith", Weekday: time.Tuesday, Start: "10:00", End: "11:30"},
	}
	booked := []*entity.Appointment{
		{DoctorID: "d-smith", StartsAt: at(10, 30), EndsAt: at(11, 0), Status: entity.AppointmentScheduled},
	}
	svc := doctorFixture(avail, booked)

	slots, err := svc.AvailableSlots(context.Background(), "d-smith", day)
	require.NoError(t, err)
	// 10:00-10:30 and 11:00-11:30 remain; 10:30-11:00 is booked.
	require.Len(t, slots, 2)
	assert.Equal(t, at(10, 0), slots[0].StartsAt)
	assert.Equal(t, at(11, 0), slots[1].StartsAt)
}

func TestDoctorService_AvailableSlots_WrongWeekdayYieldsNone(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC) // Tuesday
	avail := []entity.Availability{
		{DoctorID: "d-smith", Weekday: time.Monday, Start: "09:00", End: "17:00"},
	}
	svc := doctorFixture(avail, nil)

	slots, err := svc.AvailableSlots(context.Background(), "d-smith", day)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestDoctorService_Delete_HidesFromGet(t *testing.T) {
	deleted := time.Now()
	doctors := &MockDoctorRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.Doctor, error) {
			return &entity.Doctor{ID: id, DeletedAt: &deleted}, nil
		},
	}
	svc := NewDoctorService(doctors, &MockAppointmentRepository{}, nil)

	_, err := svc.Get(context.Background(), "d-gone")
	assert.ErrorIs(t, err, ErrNotFound)
}

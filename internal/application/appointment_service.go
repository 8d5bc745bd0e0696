package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/medicore/hms-api/internal/domain/entity"
	repo "github.com/medicore/hms-api/internal/domain/repository"
	"github.com/medicore/hms-api/pkg/helpers"
	"github.com/medicore/hms-api/pkg/mailer"
)

// AppointmentService books and transitions appointments. The no-overlap
// invariant itself lives in the repository, inside the booking transaction;
// this layer handles referential checks, the status machine, and notifications.
type AppointmentService struct {
	Appointments repo.AppointmentRepository
	Patients     repo.PatientRepository
	Doctors      repo.DoctorRepository
	Pub          *helpers.RabbitPublisher
	Logger       *logrus.Logger
}

func NewAppointmentService(appointments repo.AppointmentRepository, patients repo.PatientRepository, doctors repo.DoctorRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *AppointmentService {
	return &AppointmentService{Appointments: appointments, Patients: patients, Doctors: doctors, Pub: pub, Logger: logger}
}

type BookInput struct {
	PatientID string
	DoctorID  string
	StartsAt  time.Time
	EndsAt    time.Time
	Notes     string
}

func (s *AppointmentService) Book(ctx context.Context, in BookInput) (*entity.Appointment, error) {
	if !in.StartsAt.Before(in.EndsAt) {
		return nil, fmt.Errorf("%w: appointment must end after it starts", ErrInvalidInput)
	}
	patient, err := s.activePatient(ctx, in.PatientID)
	if err != nil {
		return nil, err
	}
	doctor, err := s.activeDoctor(ctx, in.DoctorID)
	if err != nil {
		return nil, err
	}

	a := &entity.Appointment{
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		StartsAt:  in.StartsAt,
		EndsAt:    in.EndsAt,
		Status:    entity.AppointmentScheduled,
		Notes:     in.Notes,
	}
	if err := s.Appointments.Create(ctx, a); err != nil {
		if errors.Is(err, repo.ErrConflict) {
			return nil, ErrSchedulingConflict
		}
		return nil, err
	}

	s.notify(ctx, mailer.TemplateAppointmentBooked, patient, doctor, a)
	return a, nil
}

func (s *AppointmentService) Get(ctx context.Context, id string) (*entity.Appointment, error) {
	a, err := s.Appointments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Reschedule moves a scheduled appointment to a new slot, re-running the
// overlap check against everything except the appointment itself.
func (s *AppointmentService) Reschedule(ctx context.Context, id string, startsAt, endsAt time.Time) (*entity.Appointment, error) {
	if !startsAt.Before(endsAt) {
		return nil, fmt.Errorf("%w: appointment must end after it starts", ErrInvalidInput)
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != entity.AppointmentScheduled {
		return nil, ErrInvalidTransition
	}
	a, err := s.Appointments.Reschedule(ctx, id, startsAt, endsAt)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrConflict):
			return nil, ErrSchedulingConflict
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

// Complete marks a scheduled appointment as completed (terminal).
func (s *AppointmentService) Complete(ctx context.Context, id string) (*entity.Appointment, error) {
	return s.transition(ctx, id, entity.AppointmentCompleted)
}

// Cancel marks a scheduled appointment as cancelled (terminal) and frees the slot.
func (s *AppointmentService) Cancel(ctx context.Context, id string) (*entity.Appointment, error) {
	a, err := s.transition(ctx, id, entity.AppointmentCancelled)
	if err != nil {
		return nil, err
	}
	if patient, pErr := s.Patients.GetByID(ctx, a.PatientID); pErr == nil {
		if doctor, dErr := s.Doctors.GetByID(ctx, a.DoctorID); dErr == nil {
			s.notify(ctx, mailer.TemplateAppointmentCancelled, patient, doctor, a)
		}
	}
	return a, nil
}

func (s *AppointmentService) transition(ctx context.Context, id string, next entity.AppointmentStatus) (*entity.Appointment, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, ErrInvalidTransition
	}
	a, err := s.Appointments.UpdateStatus(ctx, id, next)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, ErrNotFound
		case errors.Is(err, repo.ErrConflict):
			// Lost the race against a concurrent transition.
			return nil, ErrInvalidTransition
		}
		return nil, err
	}
	return a, nil
}

func (s *AppointmentService) List(ctx context.Context, f repo.AppointmentFilter) ([]*entity.Appointment, error) {
	f.Limit = normalizeLimit(f.Limit)
	return s.Appointments.List(ctx, f)
}

func (s *AppointmentService) activePatient(ctx context.Context, id string) (*entity.Patient, error) {
	p, err := s.Patients.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: patient %s", ErrNotFound, id)
		}
		return nil, err
	}
	if p.Deleted() {
		return nil, fmt.Errorf("%w: patient %s", ErrNotFound, id)
	}
	return p, nil
}

func (s *AppointmentService) activeDoctor(ctx context.Context, id string) (*entity.Doctor, error) {
	d, err := s.Doctors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: doctor %s", ErrNotFound, id)
		}
		return nil, err
	}
	if d.Deleted() {
		return nil, fmt.Errorf("%w: doctor %s", ErrNotFound, id)
	}
	return d, nil
}

// notify enqueues a patient email; booking must not fail because the broker is
// down, so failures are logged and dropped.
func (s *AppointmentService) notify(ctx context.Context, template string, patient *entity.Patient, doctor *entity.Doctor, a *entity.Appointment) {
	if s.Pub == nil || patient.Email == "" {
		return
	}
	job := mailer.EmailJob{
		To:       patient.Email,
		Template: template,
		Data: map[string]any{
			"PatientName": patient.Name,
			"DoctorName":  doctor.Name,
			"StartsAt":    a.StartsAt.Format("02 Jan 2006 15:04"),
			"EndsAt":      a.EndsAt.Format("15:04"),
		},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("appointment_id", a.ID).Warn("notification publish failed")
	}
}

package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/medicore/hms-api/internal/domain/entity"
	repo "github.com/medicore/hms-api/internal/domain/repository"
)

// SlotDuration is the consultation slot length used when deriving free slots
// from a doctor's availability windows.
const SlotDuration = 30 * time.Minute

// DoctorService owns doctor records and availability. All mutations are
// admin-only; the handler layer enforces that.
type DoctorService struct {
	Doctors      repo.DoctorRepository
	Appointments repo.AppointmentRepository
	Logger       *logrus.Logger
}

func NewDoctorService(doctors repo.DoctorRepository, appointments repo.AppointmentRepository, logger *logrus.Logger) *DoctorService {
	return &DoctorService{Doctors: doctors, Appointments: appointments, Logger: logger}
}

type DoctorInput struct {
	Name      string
	Specialty string
	Email     string
	Phone     string
}

func (s *DoctorService) Create(ctx context.Context, in DoctorInput) (*entity.Doctor, error) {
	d := &entity.Doctor{
		Name:      in.Name,
		Specialty: in.Specialty,
		Email:     in.Email,
		Phone:     in.Phone,
	}
	if err := s.Doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DoctorService) Get(ctx context.Context, id string) (*entity.Doctor, error) {
	d, err := s.Doctors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if d.Deleted() {
		return nil, ErrNotFound
	}
	return d, nil
}

func (s *DoctorService) Update(ctx context.Context, id string, in DoctorInput) (*entity.Doctor, error) {
	d, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		d.Name = in.Name
	}
	if in.Specialty != "" {
		d.Specialty = in.Specialty
	}
	if in.Email != "" {
		d.Email = in.Email
	}
	if in.Phone != "" {
		d.Phone = in.Phone
	}
	if err := s.Doctors.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *DoctorService) Delete(ctx context.Context, id string) error {
	if err := s.Doctors.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *DoctorService) List(ctx context.Context, f repo.DoctorFilter) ([]*entity.Doctor, error) {
	f.Limit = normalizeLimit(f.Limit)
	return s.Doctors.List(ctx, f)
}

type AvailabilityInput struct {
	Weekday time.Weekday
	Start   string // "09:00"
	End     string // "13:00"
}

// SetAvailability replaces the doctor's weekly consulting windows.
func (s *DoctorService) SetAvailability(ctx context.Context, doctorID string, windows []AvailabilityInput) (*entity.Doctor, error) {
	d, err := s.Get(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	slots := make([]entity.Availability, 0, len(windows))
	for _, w := range windows {
		start, err := parseClock(w.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: start %q", ErrInvalidInput, w.Start)
		}
		end, err := parseClock(w.End)
		if err != nil {
			return nil, fmt.Errorf("%w: end %q", ErrInvalidInput, w.End)
		}
		if !start.Before(end) {
			return nil, fmt.Errorf("%w: window %s-%s is empty", ErrInvalidInput, w.Start, w.End)
		}
		slots = append(slots, entity.Availability{
			DoctorID: d.ID,
			Weekday:  w.Weekday,
			Start:    w.Start,
			End:      w.End,
		})
	}
	if err := s.Doctors.ReplaceAvailability(ctx, d.ID, slots); err != nil {
		return nil, err
	}
	d.Availabilities = slots
	return d, nil
}

// Slot is one bookable window offered to the reception desk.
type Slot struct {
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}

// AvailableSlots derives free slots for one day: availability windows cut into
// SlotDuration pieces minus the doctor's non-cancelled appointments.
func (s *DoctorService) AvailableSlots(ctx context.Context, doctorID string, day time.Time) ([]Slot, error) {
	d, err := s.Get(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	booked, err := s.Appointments.ListForDoctorOn(ctx, d.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	var slots []Slot
	for _, w := range d.Availabilities {
		if w.Weekday != day.Weekday() {
			continue
		}
		winStart, err := clockOn(dayStart, w.Start)
		if err != nil {
			continue
		}
		winEnd, err := clockOn(dayStart, w.End)
		if err != nil {
			continue
		}
		for cur := winStart; !cur.Add(SlotDuration).After(winEnd); cur = cur.Add(SlotDuration) {
			end := cur.Add(SlotDuration)
			if slotTaken(booked, cur, end) {
				continue
			}
			slots = append(slots, Slot{StartsAt: cur, EndsAt: end})
		}
	}
	return slots, nil
}

func slotTaken(booked []*entity.Appointment, start, end time.Time) bool {
	for _, a := range booked {
		if a.Status == entity.AppointmentCancelled {
			continue
		}
		if a.Overlaps(start, end) {
			return true
		}
	}
	return false
}

func parseClock(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}

func clockOn(day time.Time, clock string) (time.Time, error) {
	t, err := parseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

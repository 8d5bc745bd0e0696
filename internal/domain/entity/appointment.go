package entity

import "time"

// AppointmentStatus is the booking state machine:
// scheduled -> completed | cancelled, both terminal.
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// CanTransitionTo reports whether s may move to next.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s != AppointmentScheduled {
		return false
	}
	return next == AppointmentCompleted || next == AppointmentCancelled
}

// Appointment links one patient and one doctor to a time slot.
// Two non-cancelled appointments for the same doctor must not overlap.
type Appointment struct {
	ID        string
	PatientID string
	DoctorID  string
	StartsAt  time.Time
	EndsAt    time.Time
	Status    AppointmentStatus
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Overlaps reports whether the appointment's time range intersects [start, end).
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartsAt.Before(end) && start.Before(a.EndsAt)
}

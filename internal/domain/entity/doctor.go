package entity

import "time"

// Doctor is a practitioner record managed by admins. A doctor may also hold a
// staff account (Role doctor); the two are linked by email, not by key.
type Doctor struct {
	ID             string
	Name           string
	Specialty      string
	Email          string
	Phone          string
	Availabilities []Availability
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// Availability is a recurring weekly consulting window.
type Availability struct {
	ID       string
	DoctorID string
	Weekday  time.Weekday
	Start    string // "09:00", clinic-local
	End      string // "13:00"
}

// Deleted reports whether the doctor has been soft-deleted.
func (d *Doctor) Deleted() bool { return d.DeletedAt != nil }

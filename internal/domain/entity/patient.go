package entity

import "time"

// Patient holds demographic and contact data. Soft-deleted via DeletedAt so
// historical appointments and invoices keep a valid reference.
type Patient struct {
	ID           string
	Name         string
	Age          int
	Gender       string
	Phone        string
	Email        string
	Address      string
	DocumentURLs []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// Deleted reports whether the patient has been soft-deleted.
func (p *Patient) Deleted() bool { return p.DeletedAt != nil }

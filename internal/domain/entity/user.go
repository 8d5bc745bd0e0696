package entity

import "time"

// Role is the staff role a user authenticates as.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleReceptionist Role = "receptionist"
)

// Valid reports whether r is one of the known staff roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleReceptionist:
		return true
	}
	return false
}

// User is a staff account. Passwords are stored as bcrypt hashes.
// Accounts are deactivated rather than deleted so the audit trail survives.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

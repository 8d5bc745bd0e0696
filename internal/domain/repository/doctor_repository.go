package repository

import (
	"context"

	"github.com/medicore/hms-api/internal/domain/entity"
)

// DoctorFilter narrows List results. Zero values mean "no filter".
type DoctorFilter struct {
	Specialty string
	Limit     int
	Offset    int
}

// DoctorRepository defines database operations for doctors.
// Same soft-delete contract as PatientRepository.
type DoctorRepository interface {
	Create(ctx context.Context, d *entity.Doctor) error
	GetByID(ctx context.Context, id string) (*entity.Doctor, error)
	Update(ctx context.Context, d *entity.Doctor) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, f DoctorFilter) ([]*entity.Doctor, error)
	ReplaceAvailability(ctx context.Context, doctorID string, slots []entity.Availability) error
}

package repository

import (
	"context"

	"github.com/medicore/hms-api/internal/domain/entity"
)

// PatientFilter narrows List results. Zero values mean "no filter".
type PatientFilter struct {
	Name   string
	Limit  int
	Offset int
}

// PatientRepository defines database operations for patients.
// GetByID resolves soft-deleted rows too, so history stays referenceable;
// List never returns them.
type PatientRepository interface {
	Create(ctx context.Context, p *entity.Patient) error
	GetByID(ctx context.Context, id string) (*entity.Patient, error)
	Update(ctx context.Context, p *entity.Patient) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, f PatientFilter) ([]*entity.Patient, error)
}

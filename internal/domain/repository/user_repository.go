package repository

import (
	"context"

	"github.com/medicore/hms-api/internal/domain/entity"
)

// UserRepository defines database operations for staff accounts.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, error)
}

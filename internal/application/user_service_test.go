package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hms-api/internal/domain/entity"
	"github.com/medicore/hms-api/internal/domain/repository"
	"github.com/medicore/hms-api/pkg/helpers"
)

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()
	var created *entity.User
	users := &MockUserRepository{
		CreateFunc: func(ctx context.Context, u *entity.User) error {
			u.ID = "u-1"
			created = u
			return nil
		},
	}
	svc := NewUserService(users, nil, nil)

	u, err := svc.Create(ctx, CreateUserInput{
		Email:    "doc@clinic.test",
		Password: "longenoughpass",
		Name:     "Dr. Smith",
		Role:     entity.RoleDoctor,
	})
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.True(t, u.Active)
	// Stored hash must verify but never equal the plaintext.
	require.NotNil(t, created)
	assert.NotEqual(t, "longenoughpass", created.PasswordHash)
	assert.True(t, helpers.CompareHashAndPassword(created.PasswordHash, "longenoughpass"))
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	svc := NewUserService(&MockUserRepository{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "x@clinic.test",
		Password: "longenoughpass",
		Name:     "X",
		Role:     entity.Role("janitor"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	users := &MockUserRepository{
		CreateFunc: func(ctx context.Context, u *entity.User) error {
			return repository.ErrDuplicate
		},
	}
	svc := NewUserService(users, nil, nil)

	_, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "dup@clinic.test",
		Password: "longenoughpass",
		Name:     "Dup",
		Role:     entity.RoleReceptionist,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_Update(t *testing.T) {
	ctx := context.Background()
	stored := &entity.User{ID: "u-1", Email: "desk@clinic.test", Name: "Desk", Role: entity.RoleReceptionist, Active: true}
	users := &MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
			cp := *stored
			return &cp, nil
		},
		UpdateFunc: func(ctx context.Context, u *entity.User) error {
			stored = u
			return nil
		},
	}
	svc := NewUserService(users, nil, nil)

	off := false
	u, err := svc.Update(ctx, "u-1", UpdateUserInput{Active: &off})
	require.NoError(t, err)
	assert.False(t, u.Active)
	assert.Equal(t, entity.RoleReceptionist, u.Role)

	_, err = svc.Update(ctx, "u-1", UpdateUserInput{Role: entity.Role("janitor")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUserService_ChangePassword(t *testing.T) {
	stored := &entity.User{ID: "u-1", PasswordHash: "old"}
	users := &MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
			cp := *stored
			return &cp, nil
		},
		UpdateFunc: func(ctx context.Context, u *entity.User) error {
			stored = u
			return nil
		},
	}
	svc := NewUserService(users, nil, nil)

	require.NoError(t, svc.ChangePassword(context.Background(), "u-1", "brandnewpass1"))
	assert.True(t, helpers.CompareHashAndPassword(stored.PasswordHash, "brandnewpass1"))
}

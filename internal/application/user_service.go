package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/medicore/hms-api/internal/domain/entity"
	repo "github.com/medicore/hms-api/internal/domain/repository"
	"github.com/medicore/hms-api/pkg/helpers"
)

// UserService covers admin-side account provisioning. Accounts are
// deactivated, never removed.
type UserService struct {
	Users  repo.UserRepository
	Redis  *redis.Client
	Logger *logrus.Logger
}

func NewUserService(users repo.UserRepository, rdb *redis.Client, logger *logrus.Logger) *UserService {
	return &UserService{Users: users, Redis: rdb, Logger: logger}
}

type CreateUserInput struct {
	Email    string
	Password string
	Name     string
	Role     entity.Role
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	if !in.Role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
	}
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{
		Email:        in.Email,
		PasswordHash: hash,
		Name:         in.Name,
		Role:         in.Role,
		Active:       true,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email already registered", ErrInvalidInput)
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	return s.Users.List(ctx, normalizeLimit(limit), offset)
}

type UpdateUserInput struct {
	Name   string
	Role   entity.Role // empty = unchanged
	Active *bool
}

func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Role != "" {
		if !in.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, in.Role)
		}
		u.Role = in.Role
	}
	if in.Active != nil {
		u.Active = *in.Active
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}
	// Deactivation and role changes take effect immediately, not at session expiry.
	if s.Redis != nil && (in.Active != nil || in.Role != "") {
		if err := s.Redis.Del(ctx, sessionKey(u.ID)).Err(); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("session invalidation failed")
		}
	}
	return u, nil
}

func (s *UserService) ChangePassword(ctx context.Context, id, newPassword string) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return s.Users.Update(ctx, u)
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

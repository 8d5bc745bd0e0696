package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medicore/hms-api/internal/domain/entity"
	"github.com/medicore/hms-api/internal/domain/repository"
	"github.com/medicore/hms-api/pkg/helpers"
)

func testJWT() *helpers.JWTManager {
	return helpers.NewJWTManager("access-secret", "refresh-secret", time.Minute, time.Hour)
}

func activeUser(t *testing.T, email, password string) *entity.User {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)
	return &entity.User{
		ID:           "u-1",
		Email:        email,
		PasswordHash: hash,
		Name:         "Front Desk",
		Role:         entity.RoleReceptionist,
		Active:       true,
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	u := activeUser(t, "desk@clinic.test", "s3cretpass")

	users := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			if email == u.Email {
				return u, nil
			}
			return nil, repository.ErrNotFound
		},
	}
	svc := NewAuthService(users, testJWT(), nil, nil, time.Hour)

	got, err := svc.Authenticate(ctx, "desk@clinic.test", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = svc.Authenticate(ctx, "desk@clinic.test", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody@clinic.test", "s3cretpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Authenticate_DisabledAccount(t *testing.T) {
	ctx := context.Background()
	u := activeUser(t, "desk@clinic.test", "s3cretpass")
	u.Active = false

	users := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return u, nil
		},
	}
	svc := NewAuthService(users, testJWT(), nil, nil, time.Hour)

	// Wrong password on a disabled account must still read as bad credentials,
	// not leak the account state.
	_, err := svc.Authenticate(ctx, "desk@clinic.test", "wrongpass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "desk@clinic.test", "s3cretpass")
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestAuthService_Login_IssuesTokenPair(t *testing.T) {
	ctx := context.Background()
	u := activeUser(t, "desk@clinic.test", "s3cretpass")

	users := &MockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return u, nil
		},
	}
	jwt := testJWT()
	svc := NewAuthService(users, jwt, nil, nil, time.Hour)

	res, pair, err := svc.Login(ctx, "desk@clinic.test", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.UserID)
	assert.Equal(t, string(entity.RoleReceptionist), res.Role)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.AccessTokenExpiry.After(time.Now()))

	claims, err := jwt.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, string(u.Role), claims.Role)
	assert.NotEmpty(t, claims.SessionID)
}

func TestAuthService_Refresh_RejectsGarbageToken(t *testing.T) {
	svc := NewAuthService(&MockUserRepository{}, testJWT(), nil, nil, time.Hour)

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Refresh_DisabledAccount(t *testing.T) {
	ctx := context.Background()
	u := activeUser(t, "desk@clinic.test", "s3cretpass")

	users := &MockUserRepository{
		GetByIDFunc: func(ctx context.Context, id string) (*entity.User, error) {
			return u, nil
		},
	}
	jwt := testJWT()
	svc := NewAuthService(users, jwt, nil, nil, time.Hour)

	refresh, _, err := jwt.GenerateRefreshToken(u.ID, string(u.Role), "sid-1")
	require.NoError(t, err)

	u.Active = false
	_, err = svc.Refresh(ctx, refresh)
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

package auth

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"EduPlatform/internal/storage/memory"
	"EduPlatform/pkg/logger"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *AuthService {
	manager := NewJWTManager("test-secret", "edu-test", time.Minute, time.Hour)
	store := memory.New()
	return NewAuthService(logger.NewDiscard(), manager, store, store)
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	session, err := svc.Register(ctx, "Ann", "Ann@Example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", session.User.Email)
	assert.Equal(t, models.UserRole, session.User.Role)
	assert.Equal(t, models.TokenTypeBearer, session.TokenType)
	assert.NotEqual(t, "secret1", session.User.Password)

	claims, err := svc.AccessClaims(ctx, session.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, claims.UserID)
	assert.Equal(t, models.UserRole, claims.Role)

	_, err = svc.Register(ctx, "Ann again", "ann@example.com", "secret2")
	assert.ErrorIs(t, err, app_errors.ErrUserExists)

	_, err = svc.LoginUser(ctx, "ann@example.com", "wrong-password")
	assert.ErrorIs(t, err, app_errors.ErrIncorrectPassword)

	_, err = svc.LoginUser(ctx, "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, app_errors.ErrIncorrectPassword)

	login, err := svc.LoginUser(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, session.User.ID, login.User.ID)
}

func TestRegisterPasswordLength(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), "Bob", "bob@example.com", "12345")
	assert.ErrorIs(t, err, app_errors.ErrPasswordLength)
	assert.Equal(t, app_errors.KindInvalidArgument, app_errors.KindOf(err))
}

func TestRefreshTokensRotates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	session, err := svc.Register(ctx, "Cid", "cid@example.com", "secret1")
	require.NoError(t, err)

	rotated, err := svc.RefreshTokens(ctx, session.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	_, err = svc.RefreshTokens(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, app_errors.ErrTokenNotFound)

	_, err = svc.RefreshTokens(ctx, rotated.AccessToken)
	assert.ErrorIs(t, err, app_errors.ErrInvalidToken)
}

func TestAccessClaimsRejectsRefreshAndExpired(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	session, err := svc.Register(ctx, "Dee", "dee@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.AccessClaims(ctx, session.RefreshToken)
	assert.ErrorIs(t, err, app_errors.ErrInvalidToken)

	expired := NewJWTManager("test-secret", "edu-test", -time.Minute, time.Hour)
	pair, err := expired.GenerateTokenPair(session.User.ID, models.AdminRole)
	require.NoError(t, err)
	_, err = svc.AccessClaims(ctx, pair.AccessToken.Raw)
	assert.ErrorIs(t, err, app_errors.ErrTokenExpired)

	_, err = svc.AccessClaims(ctx, "garbage")
	assert.Equal(t, app_errors.KindUnauthorized, app_errors.KindOf(err))
}

func TestEnsureUserIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	seed := models.User{Name: "Admin", Email: "admin@admin.com", Password: "Start!2345", Role: models.AdminRole}

	first, err := svc.EnsureUser(ctx, seed)
	require.NoError(t, err)
	second, err := svc.EnsureUser(ctx, seed)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.IsAdmin())
}

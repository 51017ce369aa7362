package auth

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"EduPlatform/pkg/logger"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72
)

type AuthRepo interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, token *jwt.Token) (*models.RefreshToken, error)
	ByPrimaryKey(ctx context.Context, userID uuid.UUID, token *jwt.Token) (*models.RefreshToken, error)
	DeleteUserTokens(ctx context.Context, userID uuid.UUID) error
}

type AuthService struct {
	log        logger.Log
	jwtManager *JWTManager
	authRepo   AuthRepo
	tokenRepo  tokenRepo
}

func NewAuthService(l logger.Log, manager *JWTManager, aRepo AuthRepo, tRepo tokenRepo) *AuthService {
	return &AuthService{
		log:        l,
		jwtManager: manager,
		authRepo:   aRepo,
		tokenRepo:  tRepo,
	}
}

// Register creates a user with the default role and opens a session for it.
func (u *AuthService) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	user, err := u.createUser(ctx, models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: password,
		Role:     models.UserRole,
	})
	if err != nil {
		return nil, err
	}
	u.log.Info("user registered", "user_id", user.ID)
	return u.openSession(ctx, user)
}

func (u *AuthService) LoginUser(ctx context.Context, email, password string) (*models.Session, error) {
	user, err := u.authRepo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) {
			return nil, app_errors.ErrIncorrectPassword
		}
		return nil, err
	}

	if !checkPasswordHash(password, user.Password) {
		return nil, app_errors.ErrIncorrectPassword
	}

	return u.openSession(ctx, user)
}

// RefreshTokens rotates the token pair. The presented refresh token must be
// the one currently stored for the user.
func (u *AuthService) RefreshTokens(ctx context.Context, token string) (*models.Session, error) {
	curToken, claims, err := u.jwtManager.RefreshClaims(token)
	if err != nil {
		return nil, err
	}
	tokenRecord, err := u.tokenRepo.ByPrimaryKey(ctx, claims.UserID, curToken)
	if err != nil {
		return nil, err
	}
	if tokenRecord.ExpiresAt.Before(time.Now()) {
		return nil, app_errors.ErrTokenExpired
	}
	user, err := u.authRepo.UserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) {
			return nil, app_errors.ErrInvalidToken
		}
		return nil, err
	}
	return u.openSession(ctx, user)
}

func (u *AuthService) AccessClaims(ctx context.Context, token string) (*AccessTokenClaims, error) {
	return u.jwtManager.AccessClaims(token)
}

func (u *AuthService) User(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return u.authRepo.UserByID(ctx, id)
}

// EnsureUser creates the user unless the email is already registered.
func (u *AuthService) EnsureUser(ctx context.Context, user models.User) (*models.User, error) {
	existing, err := u.authRepo.UserByEmail(ctx, user.Email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, app_errors.ErrUserNotFound) {
		return nil, err
	}

	created, err := u.createUser(ctx, user)
	if errors.Is(err, app_errors.ErrUserExists) {
		return u.authRepo.UserByEmail(ctx, user.Email)
	}
	if err != nil {
		return nil, err
	}
	u.log.Info("seed user created", "email", created.Email, "role", created.Role)
	return created, nil
}

func (u *AuthService) createUser(ctx context.Context, user models.User) (*models.User, error) {
	var err error

	if len(user.Password) > maxPasswordLength || len(user.Password) < minPasswordLength {
		return nil, app_errors.ErrPasswordLength
	}
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	user.Password, err = hashPassword(user.Password)
	if err != nil {
		return nil, err
	}

	return u.authRepo.CreateUser(ctx, user)
}

func (u *AuthService) openSession(ctx context.Context, user *models.User) (*models.Session, error) {
	tokenPair, err := u.jwtManager.GenerateTokenPair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	if err := u.tokenRepo.DeleteUserTokens(ctx, user.ID); err != nil {
		return nil, err
	}
	if _, err := u.tokenRepo.Create(ctx, user.ID, tokenPair.RefreshToken); err != nil {
		return nil, err
	}

	return &models.Session{
		AccessToken:  tokenPair.AccessToken.Raw,
		RefreshToken: tokenPair.RefreshToken.Raw,
		TokenType:    models.TokenTypeBearer,
		User:         *user,
	}, nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

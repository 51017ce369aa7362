package auth

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenType  = "access"
	RefreshTokenType = "refresh"
)

var signingMethod = jwt.SigningMethodHS256

type JWTManager struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	issuer     string
}

func NewJWTManager(secretKey, issuer string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		issuer:     issuer,
	}
}

type AccessTokenClaims struct {
	TokenType string    `json:"token_type"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	jwt.RegisteredClaims
}

type RefreshTokenClaims struct {
	TokenType string    `json:"token_type"`
	UserID    uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

func (j *JWTManager) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method != signingMethod {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return j.secretKey, nil
}

func mapParseError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return app_errors.ErrTokenExpired
	}
	return fmt.Errorf("%w: %v", app_errors.ErrInvalidToken, err)
}

func (j *JWTManager) AccessClaims(tokenStr string) (*AccessTokenClaims, error) {
	claims := &AccessTokenClaims{}
	if _, err := jwt.ParseWithClaims(tokenStr, claims, j.keyFunc, jwt.WithIssuer(j.issuer)); err != nil {
		return nil, mapParseError(err)
	}
	if claims.TokenType != AccessTokenType {
		return nil, fmt.Errorf("%w: expected %q, got %q", app_errors.ErrInvalidToken, AccessTokenType, claims.TokenType)
	}
	return claims, nil
}

func (j *JWTManager) RefreshClaims(tokenStr string) (*jwt.Token, *RefreshTokenClaims, error) {
	claims := &RefreshTokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, j.keyFunc, jwt.WithIssuer(j.issuer))
	if err != nil {
		return nil, nil, mapParseError(err)
	}
	if claims.TokenType != RefreshTokenType {
		return nil, nil, fmt.Errorf("%w: expected %q, got %q", app_errors.ErrInvalidToken, RefreshTokenType, claims.TokenType)
	}
	return token, claims, nil
}

func (j *JWTManager) sign(claims jwt.Claims) (*jwt.Token, error) {
	token := jwt.NewWithClaims(signingMethod, claims)
	signed, err := token.SignedString(j.secretKey)
	if err != nil {
		return nil, err
	}
	token.Raw = signed
	return token, nil
}

func (j *JWTManager) GenerateTokenPair(userID uuid.UUID, role string) (*models.TokenPair, error) {
	now := time.Now()
	registered := func(ttl time.Duration) jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    j.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		}
	}

	accessToken, err := j.sign(AccessTokenClaims{
		TokenType:        AccessTokenType,
		UserID:           userID,
		Role:             role,
		RegisteredClaims: registered(j.accessTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("access token signing failed: %w", err)
	}

	refreshToken, err := j.sign(RefreshTokenClaims{
		TokenType:        RefreshTokenType,
		UserID:           userID,
		RegisteredClaims: registered(j.refreshTTL),
	})
	if err != nil {
		return nil, fmt.Errorf("refresh token signing failed: %w", err)
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeBearer = "bearer"

type RefreshToken struct {
	UserID      uuid.UUID
	HashedToken string
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

type TokenPair struct {
	AccessToken  *jwt.Token
	RefreshToken *jwt.Token
}

// Session is what register, login and refresh hand back to the client.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	User         User   `json:"user"`
}

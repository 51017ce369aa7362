package middleware

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/delivery/http/controllers/response"
	"EduPlatform/internal/models"
	"EduPlatform/internal/service/auth"
	"EduPlatform/pkg/logger"
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthService interface {
	AccessClaims(ctx context.Context, token string) (*auth.AccessTokenClaims, error)
	User(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type AuthMiddlewareProvider struct {
	log     logger.Log
	service AuthService
}

func NewAuthMiddlewareProvider(log logger.Log, s AuthService) *AuthMiddlewareProvider {
	return &AuthMiddlewareProvider{
		log:     log,
		service: s,
	}
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// AuthMiddleware resolves the bearer access token into the current user.
func (h *AuthMiddlewareProvider) AuthMiddleware(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token == "" {
		response.Abort(c, app_errors.ErrInvalidToken)
		return
	}

	claims, err := h.service.AccessClaims(c.Request.Context(), token)
	if err != nil {
		h.log.Debug("failed to parse token", logger.Err(err))
		response.Error(c, err)
		return
	}

	user, err := h.service.User(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) {
			response.Abort(c, app_errors.ErrInvalidToken)
			return
		}
		response.Error(c, err)
		return
	}

	c.Set(ClientCtx, user)
	c.Next()
}

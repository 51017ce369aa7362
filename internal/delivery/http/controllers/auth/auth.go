package auth

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/delivery/http/controllers/middleware"
	"EduPlatform/internal/delivery/http/controllers/response"
	"EduPlatform/internal/delivery/http/dto"
	"EduPlatform/internal/models"
	"EduPlatform/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.Session, error)
	LoginUser(ctx context.Context, email, password string) (*models.Session, error)
	RefreshTokens(ctx context.Context, token string) (*models.Session, error)
}

type AuthHandler struct {
	AuthService AuthService
	log         logger.Log
}

func NewAuthHandler(l logger.Log, auth AuthService) *AuthHandler {
	return &AuthHandler{
		AuthService: auth,
		log:         l,
	}
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Abort(c, app_errors.ErrInvalidToken)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	session, err := h.AuthService.Register(c.Request.Context(), input.Name, input.Email, input.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	session, err := h.AuthService.LoginUser(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	var input dto.RefreshRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	session, err := h.AuthService.RefreshTokens(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

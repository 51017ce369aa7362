package middleware

import (
	"EduPlatform/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ClientCtx = "client"
)

// CurrentUser returns the user stored by the auth middleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	raw, ok := c.Get(ClientCtx)
	if !ok {
		return nil, false
	}
	user, ok := raw.(*models.User)
	return user, ok && user != nil
}

package middleware

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/delivery/http/controllers/response"

	"github.com/gin-gonic/gin"
)

// RequireRoles lets the request through when the current user has one of
// the allowed roles. It must run after AuthMiddleware.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	roleSet := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		roleSet[r] = struct{}{}
	}
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			response.Abort(c, app_errors.ErrInvalidToken)
			return
		}
		if _, allowed := roleSet[user.Role]; !allowed {
			response.Abort(c, app_errors.ErrInsufficientPermissions)
			return
		}
		c.Next()
	}
}

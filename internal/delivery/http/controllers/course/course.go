package course

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/delivery/http/controllers/middleware"
	"EduPlatform/internal/delivery/http/controllers/response"
	"EduPlatform/internal/models"

	"github.com/gin-gonic/gin"
)

func currentUser(c *gin.Context) (*models.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Abort(c, app_errors.ErrInvalidToken)
	}
	return user, ok
}

package course

import (
	"EduPlatform/internal/delivery/http/controllers"
	"EduPlatform/internal/delivery/http/controllers/response"
	"EduPlatform/internal/delivery/http/dto"
	"EduPlatform/internal/models"
	"EduPlatform/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EnrollmentService interface {
	Enroll(ctx context.Context, userID, courseID uuid.UUID, code string) (*models.EnrollmentResult, error)
}

type EnrollmentHandler struct {
	log     logger.Log
	service EnrollmentService
}

func NewEnrollmentHandler(log logger.Log, s EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{
		log:     log,
		service: s,
	}
}

func (h *EnrollmentHandler) Enroll(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	courseID, ok := controllers.CourseID(c)
	if !ok {
		return
	}
	var input dto.EnrollRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}

	result, err := h.service.Enroll(c.Request.Context(), user.ID, courseID, *input.EnrollmentCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

package course

import (
	"EduPlatform/internal/delivery/http/controllers"
	"EduPlatform/internal/delivery/http/controllers/response"
	"EduPlatform/internal/models"
	"EduPlatform/pkg/logger"
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type QueryService interface {
	ListCourses(ctx context.Context, user *models.User) ([]models.CourseView, error)
	CourseByID(ctx context.Context, user *models.User, id uuid.UUID) (*models.CourseView, error)
	SearchCourses(ctx context.Context, user *models.User, query string, limit int) ([]models.CourseView, error)
	EnrolledCourses(ctx context.Context, user *models.User) ([]models.CourseView, error)
}

type QueryHandler struct {
	log     logger.Log
	service QueryService
}

func NewQueryHandler(log logger.Log, s QueryService) *QueryHandler {
	return &QueryHandler{
		log:     log,
		service: s,
	}
}

func (h *QueryHandler) ListCourses(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	courses, err := h.service.ListCourses(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *QueryHandler) CourseByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	courseID, ok := controllers.CourseID(c)
	if !ok {
		return
	}
	course, err := h.service.CourseByID(c.Request.Context(), user, courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *QueryHandler) SearchCourses(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(c, err)
			return
		}
		limit = n
	}
	courses, err := h.service.SearchCourses(c.Request.Context(), user, c.Query("q"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *QueryHandler) EnrolledCourses(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}
	courses, err := h.service.EnrolledCourses(c.Request.Context(), user)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

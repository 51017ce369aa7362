package chapter

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/delivery/http/controllers"
	"EduPlatform/internal/delivery/http/controllers/middleware"
	"EduPlatform/internal/delivery/http/controllers/response"
	"EduPlatform/internal/models"
	"EduPlatform/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContentService interface {
	GetChapter(ctx context.Context, userID, courseID, chapterID uuid.UUID) (*models.ChapterView, error)
}

type ContentHandler struct {
	log     logger.Log
	service ContentService
}

func NewContentHandler(log logger.Log, s ContentService) *ContentHandler {
	return &ContentHandler{
		log:     log,
		service: s,
	}
}

// target resolves the current user and the course/chapter path parameters.
func target(c *gin.Context) (userID, courseID, chapterID uuid.UUID, ok bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Abort(c, app_errors.ErrInvalidToken)
		return
	}
	if courseID, ok = controllers.CourseID(c); !ok {
		return
	}
	if chapterID, ok = controllers.ChapterID(c); !ok {
		return
	}
	return user.ID, courseID, chapterID, true
}

func (h *ContentHandler) GetChapter(c *gin.Context) {
	userID, courseID, chapterID, ok := target(c)
	if !ok {
		return
	}
	chapter, err := h.service.GetChapter(c.Request.Context(), userID, courseID, chapterID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, chapter)
}

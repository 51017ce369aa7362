package chapter

import (
	"EduPlatform/internal/delivery/http/controllers/response"
	"EduPlatform/internal/delivery/http/dto"
	"EduPlatform/internal/models"
	"EduPlatform/pkg/logger"
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const messageChapterCompleted = "Chapter marked as completed"

type ProgressService interface {
	CompleteChapter(ctx context.Context, userID, courseID, chapterID uuid.UUID) error
	SubmitQuiz(ctx context.Context, userID, courseID, chapterID uuid.UUID, answers map[string]int) (*models.QuizResult, error)
	ChapterProgress(ctx context.Context, userID, courseID, chapterID uuid.UUID) (*models.Progress, error)
}

type ProgressHandler struct {
	log     logger.Log
	service ProgressService
}

func NewProgressHandler(log logger.Log, s ProgressService) *ProgressHandler {
	return &ProgressHandler{
		log:     log,
		service: s,
	}
}

func (h *ProgressHandler) CompleteChapter(c *gin.Context) {
	userID, courseID, chapterID, ok := target(c)
	if !ok {
		return
	}
	if err := h.service.CompleteChapter(c.Request.Context(), userID, courseID, chapterID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: messageChapterCompleted})
}

func (h *ProgressHandler) SubmitQuiz(c *gin.Context) {
	userID, courseID, chapterID, ok := target(c)
	if !ok {
		return
	}
	var input dto.QuizSubmission
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}
	result, err := h.service.SubmitQuiz(c.Request.Context(), userID, courseID, chapterID, input.Answers)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ProgressHandler) ChapterProgress(c *gin.Context) {
	userID, courseID, chapterID, ok := target(c)
	if !ok {
		return
	}
	progress, err := h.service.ChapterProgress(c.Request.Context(), userID, courseID, chapterID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

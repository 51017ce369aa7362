package course

import (
	"EduPlatform/internal/delivery/http/controllers"
	"EduPlatform/internal/delivery/http/controllers/response"
	"EduPlatform/internal/delivery/http/dto"
	"EduPlatform/internal/models"
	"EduPlatform/pkg/logger"
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ManagementService interface {
	CreateCourse(ctx context.Context, in models.CourseInput) (*models.CourseView, error)
	UpdateCourse(ctx context.Context, id uuid.UUID, in models.CourseInput) (*models.CourseView, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	UploadCourseImage(ctx context.Context, courseID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error)
}

type ManagementHandler struct {
	log     logger.Log
	service ManagementService
}

func NewManagementHandler(l logger.Log, s ManagementService) *ManagementHandler {
	return &ManagementHandler{
		log:     l,
		service: s,
	}
}

func (h *ManagementHandler) CreateCourse(c *gin.Context) {
	var input dto.CourseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}
	course, err := h.service.CreateCourse(c.Request.Context(), input.Input())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *ManagementHandler) UpdateCourse(c *gin.Context) {
	courseID, ok := controllers.CourseID(c)
	if !ok {
		return
	}
	var input dto.CourseRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err)
		return
	}
	course, err := h.service.UpdateCourse(c.Request.Context(), courseID, input.Input())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *ManagementHandler) DeleteCourse(c *gin.Context) {
	courseID, ok := controllers.CourseID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteCourse(c.Request.Context(), courseID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Course deleted successfully"})
}

func (h *ManagementHandler) UploadCourseImage(c *gin.Context) {
	courseID, ok := controllers.CourseID(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		head := make([]byte, 512)
		n, _ := io.ReadFull(file, head)
		contentType = http.DetectContentType(head[:n])
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			response.Error(c, err)
			return
		}
	}

	url, err := h.service.UploadCourseImage(c.Request.Context(), courseID, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.log.Info("course image uploaded", "course_id", courseID)
	c.JSON(http.StatusOK, dto.ImageResponse{ImageURL: url})
}

package management

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"EduPlatform/internal/service/course"
	"EduPlatform/internal/service/course/view"
	"EduPlatform/pkg/logger"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	maxCodeAttempts   = 5
	MaxImageSizeBytes = 5 << 20
)

var editor = &models.User{Role: models.AdminRole}

type courseRepo interface {
	CreateCourse(ctx context.Context, plan models.CoursePlan) (*models.Course, error)
	UpdateCourse(ctx context.Context, plan models.CoursePlan) (*models.Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	SetImageObjectKey(ctx context.Context, id uuid.UUID, objectKey string) error
}

type chapterRepo interface {
	ChaptersByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Chapter, error)
}

type ManagementService struct {
	log      logger.Log
	courses  courseRepo
	chapters chapterRepo
	search   course.SearchIndex
	images   course.ImageStore
	newCode  func() (string, error)
}

func NewManagementService(
	log logger.Log,
	courses courseRepo,
	chapters chapterRepo,
	search course.SearchIndex,
	images course.ImageStore,
) *ManagementService {
	return &ManagementService{
		log:      log,
		courses:  courses,
		chapters: chapters,
		search:   search,
		images:   images,
		newCode:  GenerateEnrollmentCode,
	}
}

// CreateCourse stores the course tree under a fresh enrollment code,
// retrying when the code collides with an existing one.
func (s *ManagementService) CreateCourse(ctx context.Context, in models.CourseInput) (*models.CourseView, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	base := models.Course{
		Title:       in.Title,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}

	var created *models.Course
	for attempt := 1; ; attempt++ {
		code, err := s.newCode()
		if err != nil {
			return nil, fmt.Errorf("generate enrollment code: %w", err)
		}
		base.EnrollmentCode = code

		created, err = s.courses.CreateCourse(ctx, planCreate(base, in))
		if err == nil {
			break
		}
		if !errors.Is(err, app_errors.ErrDuplicateEnrollmentCode) || attempt >= maxCodeAttempts {
			return nil, err
		}
		s.log.Warn("enrollment code collision, retrying", "attempt", attempt)
	}

	s.log.Info("course created", "course_id", created.ID)
	s.indexCourse(ctx, *created)
	return s.courseView(ctx, *created)
}

func (s *ManagementService) UpdateCourse(ctx context.Context, id uuid.UUID, in models.CourseInput) (*models.CourseView, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	current, err := s.courses.CourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	existing, err := s.chapters.ChaptersByCourse(ctx, id)
	if err != nil {
		return nil, err
	}

	plan := planUpdate(*current, existing, in)
	updated, err := s.courses.UpdateCourse(ctx, plan)
	if err != nil {
		return nil, err
	}

	s.log.Info("course updated", "course_id", id,
		"chapters_updated", len(plan.UpdateChapters),
		"chapters_inserted", len(plan.InsertChapters),
		"chapters_deleted", len(plan.DeleteChapters),
	)
	s.indexCourse(ctx, *updated)
	return s.courseView(ctx, *updated)
}

func (s *ManagementService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	current, err := s.courses.CourseByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.courses.DeleteCourse(ctx, id); err != nil {
		return err
	}
	s.log.Info("course deleted", "course_id", id)

	if s.images != nil && current.ImageObjectKey != "" {
		if err := s.images.DeleteImage(ctx, current.ImageObjectKey); err != nil {
			s.log.ErrorErr("failed to delete course image", err, "course_id", id)
		}
	}
	if s.search != nil {
		if err := s.search.Delete(ctx, id); err != nil {
			s.log.ErrorErr("failed to remove course from search index", err, "course_id", id)
		}
	}
	return nil
}

// UploadCourseImage stores an image for the course and returns its
// presigned URL.
func (s *ManagementService) UploadCourseImage(
	ctx context.Context,
	courseID uuid.UUID,
	filename string,
	reader io.Reader,
	size int64,
	contentType string,
) (string, error) {
	if s.images == nil {
		return "", app_errors.ErrImageStorageDisabled
	}
	if size <= 0 || size > MaxImageSizeBytes {
		return "", app_errors.ErrFileSize
	}
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(filename))
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", app_errors.ErrNotImage
	}

	current, err := s.courses.CourseByID(ctx, courseID)
	if err != nil {
		return "", err
	}

	objectKey, err := s.images.UploadImage(ctx, courseID, filename, reader, size, contentType)
	if err != nil {
		return "", err
	}
	if err := s.courses.SetImageObjectKey(ctx, courseID, objectKey); err != nil {
		return "", err
	}
	if current.ImageObjectKey != "" && current.ImageObjectKey != objectKey {
		if err := s.images.DeleteImage(ctx, current.ImageObjectKey); err != nil {
			s.log.ErrorErr("failed to delete previous course image", err, "course_id", courseID)
		}
	}

	return s.images.ImageURL(ctx, objectKey)
}

func (s *ManagementService) indexCourse(ctx context.Context, c models.Course) {
	if s.search == nil {
		return
	}
	if err := s.search.Index(ctx, c); err != nil {
		s.log.ErrorErr("failed to index course", err, "course_id", c.ID)
	}
}

func (s *ManagementService) courseView(ctx context.Context, c models.Course) (*models.CourseView, error) {
	chapters, err := s.chapters.ChaptersByCourse(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	c = course.WithImageURL(ctx, s.log, s.images, c)
	v := view.Course(c, chapters, view.Viewer{User: editor})
	return &v, nil
}

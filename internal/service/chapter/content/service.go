package content

import (
	"EduPlatform/internal/models"
	"EduPlatform/internal/service/chapter"
	"EduPlatform/internal/service/course/view"
	"EduPlatform/pkg/logger"
	"context"

	"github.com/google/uuid"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
}

type progressRepo interface {
	ByChapter(ctx context.Context, userID, chapterID uuid.UUID) (models.Progress, error)
}

type ContentService struct {
	log         logger.Log
	courses     courseRepo
	chapters    chapter.ChapterFinder
	enrollments chapter.EnrollmentChecker
	progress    progressRepo
}

func NewContentService(
	log logger.Log,
	courses courseRepo,
	chapters chapter.ChapterFinder,
	enrollments chapter.EnrollmentChecker,
	progress progressRepo,
) *ContentService {
	return &ContentService{
		log:         log,
		courses:     courses,
		chapters:    chapters,
		enrollments: enrollments,
		progress:    progress,
	}
}

// GetChapter returns a chapter of a course the user is enrolled in. Checks
// run in order: course exists, user enrolled, chapter belongs to the course.
func (s *ContentService) GetChapter(ctx context.Context, userID, courseID, chapterID uuid.UUID) (*models.ChapterView, error) {
	if _, err := s.courses.CourseByID(ctx, courseID); err != nil {
		return nil, err
	}
	if err := chapter.RequireEnrollment(ctx, s.enrollments, userID, courseID); err != nil {
		return nil, err
	}
	ch, err := s.chapters.ChapterInCourse(ctx, courseID, chapterID)
	if err != nil {
		return nil, err
	}
	p, err := s.progress.ByChapter(ctx, userID, ch.ID)
	if err != nil {
		return nil, err
	}

	v := view.Chapter(*ch, p.Completed)
	return &v, nil
}

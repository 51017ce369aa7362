package query

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"EduPlatform/internal/service/course"
	"EduPlatform/internal/service/course/view"
	"EduPlatform/pkg/logger"
	"context"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

type courseRepo interface {
	ListCourses(ctx context.Context) ([]models.Course, error)
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
	CoursesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Course, error)
}

type chapterRepo interface {
	ChaptersByCourses(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID][]models.Chapter, error)
}

type enrollmentRepo interface {
	EnrolledCourseIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error)
	EnrolledCourses(ctx context.Context, userID uuid.UUID) ([]models.Course, error)
}

type progressRepo interface {
	CompletedChapterIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error)
}

type QueryService struct {
	log         logger.Log
	courses     courseRepo
	chapters    chapterRepo
	enrollments enrollmentRepo
	progress    progressRepo
	search      course.SearchIndex
	images      course.ImageStore
}

func NewQueryService(
	log logger.Log,
	courses courseRepo,
	chapters chapterRepo,
	enrollments enrollmentRepo,
	progress progressRepo,
	search course.SearchIndex,
	images course.ImageStore,
) *QueryService {
	return &QueryService{
		log:         log,
		courses:     courses,
		chapters:    chapters,
		enrollments: enrollments,
		progress:    progress,
		search:      search,
		images:      images,
	}
}

func (s *QueryService) ListCourses(ctx context.Context, user *models.User) ([]models.CourseView, error) {
	courses, err := s.courses.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, user, courses)
}

func (s *QueryService) CourseByID(ctx context.Context, user *models.User, id uuid.UUID) (*models.CourseView, error) {
	c, err := s.courses.CourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	views, err := s.views(ctx, user, []models.Course{*c})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// SearchCourses returns matching courses in relevance order.
func (s *QueryService) SearchCourses(ctx context.Context, user *models.User, query string, limit int) ([]models.CourseView, error) {
	if s.search == nil {
		return nil, app_errors.ErrSearchDisabled
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.CourseView{}, nil
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	ids, err := s.search.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.CoursesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, user, courses)
}

func (s *QueryService) EnrolledCourses(ctx context.Context, user *models.User) ([]models.CourseView, error) {
	courses, err := s.enrollments.EnrolledCourses(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return s.views(ctx, user, courses)
}

func (s *QueryService) views(ctx context.Context, user *models.User, courses []models.Course) ([]models.CourseView, error) {
	result := make([]models.CourseView, 0, len(courses))
	if len(courses) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(courses))
	for _, c := range courses {
		ids = append(ids, c.ID)
	}
	chapters, err := s.chapters.ChaptersByCourses(ctx, ids)
	if err != nil {
		return nil, err
	}
	enrolled, err := s.enrollments.EnrolledCourseIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	completed, err := s.progress.CompletedChapterIDs(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	for _, c := range courses {
		c = course.WithImageURL(ctx, s.log, s.images, c)
		result = append(result, view.Course(c, chapters[c.ID], view.Viewer{
			User:      user,
			Enrolled:  enrolled[c.ID],
			Completed: completed,
		}))
	}
	return result, nil
}

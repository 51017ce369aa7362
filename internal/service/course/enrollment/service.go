package enrollment

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"EduPlatform/pkg/logger"
	"context"
	"strings"

	"github.com/google/uuid"
)

type courseRepo interface {
	CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error)
}

type enrollmentRepo interface {
	IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
	Enroll(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
}

type EnrollmentService struct {
	log         logger.Log
	courses     courseRepo
	enrollments enrollmentRepo
}

func NewEnrollmentService(log logger.Log, courses courseRepo, enrollments enrollmentRepo) *EnrollmentService {
	return &EnrollmentService{
		log:         log,
		courses:     courses,
		enrollments: enrollments,
	}
}

// Enroll adds the user to the course when code matches the course
// enrollment code, ignoring case. Enrolling twice is a successful no-op and
// does not check the code again.
func (s *EnrollmentService) Enroll(ctx context.Context, userID, courseID uuid.UUID, code string) (*models.EnrollmentResult, error) {
	course, err := s.courses.CourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	enrolled, err := s.enrollments.IsEnrolled(ctx, userID, course.ID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return &models.EnrollmentResult{Success: true, Message: models.MessageAlreadyEnrolled}, nil
	}

	if !strings.EqualFold(strings.TrimSpace(code), course.EnrollmentCode) {
		return nil, app_errors.ErrInvalidEnrollmentCode
	}

	created, err := s.enrollments.Enroll(ctx, userID, course.ID)
	if err != nil {
		return nil, err
	}
	if !created {
		return &models.EnrollmentResult{Success: true, Message: models.MessageAlreadyEnrolled}, nil
	}

	s.log.Info("user enrolled", "user_id", userID, "course_id", course.ID)
	return &models.EnrollmentResult{Success: true, Message: models.MessageEnrolled}, nil
}

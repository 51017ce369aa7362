package chapter

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"context"

	"github.com/google/uuid"
)

type EnrollmentChecker interface {
	IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error)
}

type ChapterFinder interface {
	ChapterInCourse(ctx context.Context, courseID, chapterID uuid.UUID) (*models.Chapter, error)
}

// RequireEnrollment fails with ErrNotEnrolled unless the user is enrolled in
// the course.
func RequireEnrollment(ctx context.Context, enrollments EnrollmentChecker, userID, courseID uuid.UUID) error {
	enrolled, err := enrollments.IsEnrolled(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return app_errors.ErrNotEnrolled
	}
	return nil
}

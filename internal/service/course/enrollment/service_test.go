package enrollment

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"EduPlatform/internal/storage/memory"
	"EduPlatform/pkg/logger"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*memory.Store, *EnrollmentService, models.Course) {
	t.Helper()
	store := memory.New()
	course, err := store.CreateCourse(context.Background(), models.CoursePlan{
		Course: models.Course{Title: "Go basics", EnrollmentCode: "ABCD1234"},
	})
	require.NoError(t, err)
	return store, NewEnrollmentService(logger.NewDiscard(), store, store), *course
}

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	store, svc, course := setup(t)
	userID := uuid.New()

	res, err := svc.Enroll(ctx, userID, course.ID, "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, &models.EnrollmentResult{Success: true, Message: models.MessageEnrolled}, res)

	enrolled, err := store.IsEnrolled(ctx, userID, course.ID)
	require.NoError(t, err)
	assert.True(t, enrolled)

	res, err = svc.Enroll(ctx, userID, course.ID, "anything")
	require.NoError(t, err)
	assert.Equal(t, &models.EnrollmentResult{Success: true, Message: models.MessageAlreadyEnrolled}, res)
	assert.Equal(t, 1, store.EnrollmentCount())
}

func TestEnrollWrongCode(t *testing.T) {
	ctx := context.Background()
	store, svc, course := setup(t)

	_, err := svc.Enroll(ctx, uuid.New(), course.ID, "WRONG000")
	assert.ErrorIs(t, err, app_errors.ErrInvalidEnrollmentCode)
	assert.Equal(t, 0, store.EnrollmentCount())
}

func TestEnrollUnknownCourse(t *testing.T) {
	_, svc, _ := setup(t)

	_, err := svc.Enroll(context.Background(), uuid.New(), uuid.New(), "ABCD1234")
	assert.ErrorIs(t, err, app_errors.ErrCourseNotFound)
}

func TestEnrollLosesRace(t *testing.T) {
	ctx := context.Background()
	store, svc, course := setup(t)
	userID := uuid.New()

	store.EnrollHook = func(u, c uuid.UUID) {
		store.EnrollHook = nil
		_, err := store.Enroll(ctx, u, c)
		require.NoError(t, err)
	}

	res, err := svc.Enroll(ctx, userID, course.ID, "ABCD1234")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, models.MessageAlreadyEnrolled, res.Message)
	assert.Equal(t, 1, store.EnrollmentCount())
}

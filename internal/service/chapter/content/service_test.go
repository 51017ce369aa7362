package content

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"EduPlatform/internal/storage/memory"
	"EduPlatform/pkg/logger"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetChapter(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewContentService(logger.NewDiscard(), store, store, store, store)

	course, err := store.CreateCourse(ctx, models.CoursePlan{
		Course: models.Course{Title: "Go", EnrollmentCode: "ABCD1234"},
		InsertChapters: []models.Chapter{{Title: "Intro", Content: "hello", Quizzes: []models.Quiz{
			{Question: "q", Options: []string{"a", "b"}, CorrectOption: 1},
		}}},
	})
	require.NoError(t, err)
	other, err := store.CreateCourse(ctx, models.CoursePlan{
		Course:         models.Course{Title: "Rust", EnrollmentCode: "EFGH5678"},
		InsertChapters: []models.Chapter{{Title: "Ownership"}},
	})
	require.NoError(t, err)

	chapters, err := store.ChaptersByCourse(ctx, course.ID)
	require.NoError(t, err)
	intro := chapters[0]
	otherChapters, err := store.ChaptersByCourse(ctx, other.ID)
	require.NoError(t, err)

	userID := uuid.New()

	_, err = svc.GetChapter(ctx, userID, uuid.New(), intro.ID)
	assert.ErrorIs(t, err, app_errors.ErrCourseNotFound)

	_, err = svc.GetChapter(ctx, userID, course.ID, intro.ID)
	assert.ErrorIs(t, err, app_errors.ErrNotEnrolled)

	_, err = store.Enroll(ctx, userID, course.ID)
	require.NoError(t, err)

	_, err = svc.GetChapter(ctx, userID, course.ID, otherChapters[0].ID)
	assert.ErrorIs(t, err, app_errors.ErrChapterNotFound)

	v, err := svc.GetChapter(ctx, userID, course.ID, intro.ID)
	require.NoError(t, err)
	assert.Equal(t, "Intro", v.Title)
	assert.Equal(t, "hello", v.Content)
	assert.False(t, v.Completed)
	require.Len(t, v.Quiz, 1)
	assert.Equal(t, 1, v.Quiz[0].CorrectOption)

	_, err = store.Upsert(ctx, models.ProgressUpdate{UserID: userID, CourseID: course.ID, ChapterID: intro.ID, Completed: true, At: time.Now()})
	require.NoError(t, err)

	v, err = svc.GetChapter(ctx, userID, course.ID, intro.ID)
	require.NoError(t, err)
	assert.True(t, v.Completed)
}

package postgres

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"context"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDSNEnv names a postgres URL (postgres://...) of a disposable database.
// The tests in this file are skipped when it is unset.
const testDSNEnv = "EDU_TEST_POSTGRES_DSN"

type testDB struct {
	storage     *Storage
	users       *UserPostgres
	courses     *CoursePostgres
	chapters    *ChapterPostgres
	enrollments *EnrollmentPostgres
	progress    *ProgressPostgres
}

func openTestDB(t *testing.T) *testDB {
	t.Helper()
	dsn := os.Getenv(testDSNEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDSNEnv)
	}

	_, rest, ok := strings.Cut(dsn, "://")
	require.True(t, ok, "dsn must be a URL")
	require.NoError(t, Migrate("pgx5://"+rest))

	storage, err := NewPostgresPool(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(storage.Close)

	return &testDB{
		storage:     storage,
		users:       NewUserPostgres(storage.Pool),
		courses:     NewCoursePostgres(storage.Pool),
		chapters:    NewChapterPostgres(storage.Pool),
		enrollments: NewEnrollmentPostgres(storage.Pool),
		progress:    NewProgressPostgres(storage.Pool),
	}
}

func randomCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:models.EnrollmentCodeLength])
}

// seedCourse stores a user enrolled in a course with a quizzed and a plain
// chapter.
func (db *testDB) seedCourse(t *testing.T) (models.User, models.Course, []models.Chapter) {
	t.Helper()
	ctx := context.Background()

	user, err := db.users.CreateUser(ctx, models.User{
		Name: "Student", Email: uuid.NewString() + "@example.com", Password: "hash",
	})
	require.NoError(t, err)

	course, err := db.courses.CreateCourse(ctx, models.CoursePlan{
		Course: models.Course{Title: "Go", EnrollmentCode: randomCode()},
		InsertChapters: []models.Chapter{
			{Title: "Types", Order: 0, Quizzes: []models.Quiz{
				{Question: "q1", Options: []string{"a", "b"}, CorrectOption: 1, Order: 0},
			}},
			{Title: "Interfaces", Order: 1},
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.courses.DeleteCourse(context.Background(), course.ID) })

	chapters, err := db.chapters.ChaptersByCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, chapters, 2)

	created, err := db.enrollments.Enroll(ctx, user.ID, course.ID)
	require.NoError(t, err)
	require.True(t, created)

	return *user, *course, chapters
}

func score(v int) *int {
	return &v
}

func TestProgressUpsert_NeverClearsCompletion(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user, course, chapters := db.seedCourse(t)
	at := time.Now().UTC().Truncate(time.Second)

	p, err := db.progress.Upsert(ctx, models.ProgressUpdate{
		UserID: user.ID, CourseID: course.ID, ChapterID: chapters[0].ID,
		Completed: true, QuizScore: score(80), At: at,
	})
	require.NoError(t, err)
	assert.True(t, p.Completed)

	p, err = db.progress.Upsert(ctx, models.ProgressUpdate{
		UserID: user.ID, CourseID: course.ID, ChapterID: chapters[0].ID,
		QuizScore: score(20), At: at.Add(time.Minute),
	})
	require.NoError(t, err)
	assert.True(t, p.Completed)
	require.NotNil(t, p.QuizScore)
	assert.Equal(t, 20, *p.QuizScore)

	stored, err := db.progress.ByChapter(ctx, user.ID, chapters[0].ID)
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	require.NotNil(t, stored.CompletedAt)
	assert.True(t, at.Equal(stored.CompletedAt.UTC()))
}

func TestProgressUpsert_Concurrent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user, course, chapters := db.seedCourse(t)

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := db.progress.Upsert(ctx, models.ProgressUpdate{
				UserID: user.ID, CourseID: course.ID, ChapterID: chapters[1].ID,
				Completed: i == 0, At: time.Now().UTC(),
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	var rows int
	require.NoError(t, db.storage.Pool.QueryRow(ctx,
		`SELECT count(*) FROM progress WHERE user_id = $1 AND chapter_id = $2`, user.ID, chapters[1].ID,
	).Scan(&rows))
	assert.Equal(t, 1, rows)

	completed, err := db.progress.CompletedChapterIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, completed[chapters[1].ID])
}

func TestUpdateCourse_DeletesChapterProgress(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user, course, chapters := db.seedCourse(t)

	for _, ch := range chapters {
		_, err := db.progress.Upsert(ctx, models.ProgressUpdate{
			UserID: user.ID, CourseID: course.ID, ChapterID: ch.ID, Completed: true, At: time.Now().UTC(),
		})
		require.NoError(t, err)
	}

	kept := chapters[1]
	kept.Title = "Interfaces v2"
	kept.Order = 0
	updated, err := db.courses.UpdateCourse(ctx, models.CoursePlan{
		Course:         models.Course{ID: course.ID, Title: "Go v2"},
		UpdateChapters: []models.Chapter{kept},
		DeleteChapters: []uuid.UUID{chapters[0].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, "Go v2", updated.Title)
	assert.Equal(t, course.EnrollmentCode, updated.EnrollmentCode)

	remaining, err := db.chapters.ChaptersByCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
	assert.Equal(t, "Interfaces v2", remaining[0].Title)

	_, err = db.chapters.ChapterInCourse(ctx, course.ID, chapters[0].ID)
	assert.ErrorIs(t, err, app_errors.ErrChapterNotFound)

	completed, err := db.progress.CompletedChapterIDs(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, completed[chapters[0].ID])
	assert.True(t, completed[kept.ID])
}

func TestCreateCourse_DuplicateCodeIgnoresCase(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	_, course, _ := db.seedCourse(t)

	_, err := db.courses.CreateCourse(ctx, models.CoursePlan{
		Course: models.Course{Title: "Copy", EnrollmentCode: strings.ToLower(course.EnrollmentCode)},
	})
	assert.ErrorIs(t, err, app_errors.ErrDuplicateEnrollmentCode)
}

func TestDeleteCourse(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	user, course, chapters := db.seedCourse(t)

	_, err := db.progress.Upsert(ctx, models.ProgressUpdate{
		UserID: user.ID, CourseID: course.ID, ChapterID: chapters[0].ID, Completed: true, At: time.Now().UTC(),
	})
	require.NoError(t, err)

	require.NoError(t, db.courses.DeleteCourse(ctx, course.ID))
	assert.ErrorIs(t, db.courses.DeleteCourse(ctx, course.ID), app_errors.ErrCourseNotFound)

	enrolled, err := db.enrollments.IsEnrolled(ctx, user.ID, course.ID)
	require.NoError(t, err)
	assert.False(t, enrolled)

	p, err := db.progress.ByChapter(ctx, user.ID, chapters[0].ID)
	require.NoError(t, err)
	assert.False(t, p.Completed)
}

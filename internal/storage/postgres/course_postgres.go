package postgres

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CoursePostgres struct {
	db *pgxpool.Pool
}

func NewCoursePostgres(db *pgxpool.Pool) *CoursePostgres {
	return &CoursePostgres{db: db}
}

const courseColumns = `id, title, description, image_url, image_object_key, enrollment_code, created_at, updated_at`

func scanCourse(row pgx.Row) (*models.Course, error) {
	course := &models.Course{}
	err := row.Scan(
		&course.ID,
		&course.Title,
		&course.Description,
		&course.ImageURL,
		&course.ImageObjectKey,
		&course.EnrollmentCode,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return course, nil
}

func collectCourses(rows pgx.Rows) ([]models.Course, error) {
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, rows.Err()
}

// CreateCourse inserts the course together with plan.InsertChapters and
// their quizzes.
func (r *CoursePostgres) CreateCourse(ctx context.Context, plan models.CoursePlan) (*models.Course, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	course := plan.Course
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	now := time.Now().UTC()
	course.CreatedAt = now
	course.UpdatedAt = now

	query := `
		INSERT INTO courses (
			id, title, description, image_url, image_object_key,
			enrollment_code, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = tx.Exec(ctx, query,
		course.ID, course.Title, course.Description, course.ImageURL, course.ImageObjectKey,
		course.EnrollmentCode, course.CreatedAt, course.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, app_errors.ErrDuplicateEnrollmentCode
		}
		return nil, fmt.Errorf("failed to insert course: %w", err)
	}

	for _, chapter := range plan.InsertChapters {
		chapter.CourseID = course.ID
		if err := insertChapter(ctx, tx, chapter, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse applies a reconciliation plan in one transaction.
func (r *CoursePostgres) UpdateCourse(ctx context.Context, plan models.CoursePlan) (*models.Course, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	query := `
		UPDATE courses
		   SET title = $2,
		       description = $3,
		       image_url = $4,
		       updated_at = $5
		 WHERE id = $1
		RETURNING ` + courseColumns
	course, err := scanCourse(tx.QueryRow(ctx, query,
		plan.Course.ID, plan.Course.Title, plan.Course.Description, plan.Course.ImageURL, now,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	if len(plan.DeleteChapters) > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM progress WHERE chapter_id = ANY($1)`, plan.DeleteChapters); err != nil {
			return nil, fmt.Errorf("failed to delete chapter progress: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM chapters WHERE course_id = $1 AND id = ANY($2)`, course.ID, plan.DeleteChapters); err != nil {
			return nil, fmt.Errorf("failed to delete chapters: %w", err)
		}
	}

	for _, chapter := range plan.UpdateChapters {
		chapter.CourseID = course.ID
		if err := updateChapter(ctx, tx, chapter, now); err != nil {
			return nil, err
		}
	}

	for _, chapter := range plan.InsertChapters {
		chapter.CourseID = course.ID
		if err := insertChapter(ctx, tx, chapter, now); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return course, nil
}

// DeleteCourse removes progress explicitly; chapters, quizzes and
// enrollments follow through foreign key cascades.
func (r *CoursePostgres) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM progress WHERE course_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete course progress: %w", err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return tx.Commit(ctx)
}

func (r *CoursePostgres) CourseByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE id = $1`
	course, err := scanCourse(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrCourseNotFound
		}
		return nil, err
	}
	return course, nil
}

func (r *CoursePostgres) ListCourses(ctx context.Context) ([]models.Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	return collectCourses(rows)
}

// CoursesByIDs returns the courses in the order of ids, skipping unknown ones.
func (r *CoursePostgres) CoursesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Course, error) {
	if len(ids) == 0 {
		return []models.Course{}, nil
	}
	query := `
		SELECT ` + courseColumns + `
		  FROM courses
		 WHERE id = ANY($1)
		 ORDER BY array_position($1, id)
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query courses: %w", err)
	}
	return collectCourses(rows)
}

func (r *CoursePostgres) SetImageObjectKey(ctx context.Context, id uuid.UUID, objectKey string) error {
	query := `
		UPDATE courses
		   SET image_object_key = $2,
		       updated_at = NOW()
		 WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, id, objectKey)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrCourseNotFound
	}
	return nil
}

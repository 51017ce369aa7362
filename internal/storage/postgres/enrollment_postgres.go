package postgres

import (
	"EduPlatform/internal/models"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EnrollmentPostgres struct {
	db *pgxpool.Pool
}

func NewEnrollmentPostgres(db *pgxpool.Pool) *EnrollmentPostgres {
	return &EnrollmentPostgres{db: db}
}

// Enroll reports whether a new enrollment row was written. A second call for
// the same pair is a no-op.
func (r *EnrollmentPostgres) Enroll(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	query := `
		INSERT INTO enrollments (user_id, course_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, course_id) DO NOTHING
	`
	cmdTag, err := r.db.Exec(ctx, query, userID, courseID)
	if err != nil {
		return false, fmt.Errorf("failed to enroll: %w", err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

func (r *EnrollmentPostgres) IsEnrolled(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2
		)
	`, userID, courseID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *EnrollmentPostgres) EnrolledCourseIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := r.db.Query(ctx, `SELECT course_id FROM enrollments WHERE user_id = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrollments: %w", err)
	}
	defer rows.Close()

	ids := make(map[uuid.UUID]bool)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

func (r *EnrollmentPostgres) EnrolledCourses(ctx context.Context, userID uuid.UUID) ([]models.Course, error) {
	query := `
		SELECT c.id, c.title, c.description, c.image_url, c.image_object_key,
		       c.enrollment_code, c.created_at, c.updated_at
		  FROM courses c
		 INNER JOIN enrollments e ON e.course_id = c.id
		 WHERE e.user_id = $1
		 ORDER BY e.enrolled_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query enrolled courses: %w", err)
	}
	return collectCourses(rows)
}

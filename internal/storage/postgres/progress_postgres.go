package postgres

import (
	"EduPlatform/internal/models"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProgressPostgres struct {
	db *pgxpool.Pool
}

func NewProgressPostgres(db *pgxpool.Pool) *ProgressPostgres {
	return &ProgressPostgres{db: db}
}

const progressColumns = `id, user_id, course_id, chapter_id, completed, quiz_score, completed_at`

func scanProgress(row pgx.Row) (models.Progress, error) {
	var p models.Progress
	err := row.Scan(&p.ID, &p.UserID, &p.CourseID, &p.ChapterID, &p.Completed, &p.QuizScore, &p.CompletedAt)
	return p, err
}

// Upsert merges u into the (user, chapter) record under a row lock so that
// concurrent writers cannot lose each other's updates.
func (r *ProgressPostgres) Upsert(ctx context.Context, u models.ProgressUpdate) (models.Progress, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.Progress{}, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO progress (user_id, course_id, chapter_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, chapter_id) DO NOTHING
	`, u.UserID, u.CourseID, u.ChapterID)
	if err != nil {
		return models.Progress{}, fmt.Errorf("failed to init progress: %w", err)
	}

	current, err := scanProgress(tx.QueryRow(ctx, `
		SELECT `+progressColumns+`
		  FROM progress
		 WHERE user_id = $1 AND chapter_id = $2
		   FOR UPDATE
	`, u.UserID, u.ChapterID))
	if err != nil {
		return models.Progress{}, fmt.Errorf("failed to lock progress: %w", err)
	}

	next := current.Apply(u)
	_, err = tx.Exec(ctx, `
		UPDATE progress
		   SET completed = $2,
		       quiz_score = $3,
		       completed_at = $4
		 WHERE id = $1
	`, next.ID, next.Completed, next.QuizScore, next.CompletedAt)
	if err != nil {
		return models.Progress{}, fmt.Errorf("failed to update progress: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return models.Progress{}, err
	}
	return next, nil
}

// ByChapter returns the stored record, or a blank one when the user has not
// touched the chapter yet.
func (r *ProgressPostgres) ByChapter(ctx context.Context, userID, chapterID uuid.UUID) (models.Progress, error) {
	p, err := scanProgress(r.db.QueryRow(ctx, `
		SELECT `+progressColumns+`
		  FROM progress
		 WHERE user_id = $1 AND chapter_id = $2
	`, userID, chapterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Progress{UserID: userID, ChapterID: chapterID}, nil
		}
		return models.Progress{}, err
	}
	return p, nil
}

func (r *ProgressPostgres) CompletedChapterIDs(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := r.db.Query(ctx, `
		SELECT chapter_id FROM progress WHERE user_id = $1 AND completed
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
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

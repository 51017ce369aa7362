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

type ChapterPostgres struct {
	db *pgxpool.Pool
}

func NewChapterPostgres(db *pgxpool.Pool) *ChapterPostgres {
	return &ChapterPostgres{db: db}
}

const chapterColumns = `id, course_id, title, content, chapter_order, created_at, updated_at`

func scanChapter(row pgx.Row) (models.Chapter, error) {
	var ch models.Chapter
	err := row.Scan(&ch.ID, &ch.CourseID, &ch.Title, &ch.Content, &ch.Order, &ch.CreatedAt, &ch.UpdatedAt)
	return ch, err
}

// ChapterInCourse returns the chapter with its quizzes when it belongs to
// courseID.
func (r *ChapterPostgres) ChapterInCourse(ctx context.Context, courseID, chapterID uuid.UUID) (*models.Chapter, error) {
	query := `SELECT ` + chapterColumns + ` FROM chapters WHERE id = $1 AND course_id = $2`
	chapter, err := scanChapter(r.db.QueryRow(ctx, query, chapterID, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrChapterNotFound
		}
		return nil, err
	}

	quizzes, err := r.quizzesByChapters(ctx, []uuid.UUID{chapter.ID})
	if err != nil {
		return nil, err
	}
	chapter.Quizzes = quizzes[chapter.ID]
	return &chapter, nil
}

func (r *ChapterPostgres) ChaptersByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Chapter, error) {
	byCourse, err := r.ChaptersByCourses(ctx, []uuid.UUID{courseID})
	if err != nil {
		return nil, err
	}
	return byCourse[courseID], nil
}

// ChaptersByCourses loads ordered chapters and quizzes for several courses
// with two queries.
func (r *ChapterPostgres) ChaptersByCourses(ctx context.Context, courseIDs []uuid.UUID) (map[uuid.UUID][]models.Chapter, error) {
	result := make(map[uuid.UUID][]models.Chapter, len(courseIDs))
	if len(courseIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT ` + chapterColumns + `
		  FROM chapters
		 WHERE course_id = ANY($1)
		 ORDER BY course_id, chapter_order, created_at
	`
	rows, err := r.db.Query(ctx, query, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query chapters: %w", err)
	}
	defer rows.Close()

	var chapters []models.Chapter
	var chapterIDs []uuid.UUID
	for rows.Next() {
		ch, err := scanChapter(rows)
		if err != nil {
			return nil, err
		}
		chapters = append(chapters, ch)
		chapterIDs = append(chapterIDs, ch.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	quizzes, err := r.quizzesByChapters(ctx, chapterIDs)
	if err != nil {
		return nil, err
	}
	for _, ch := range chapters {
		ch.Quizzes = quizzes[ch.ID]
		result[ch.CourseID] = append(result[ch.CourseID], ch)
	}
	return result, nil
}

func (r *ChapterPostgres) quizzesByChapters(ctx context.Context, chapterIDs []uuid.UUID) (map[uuid.UUID][]models.Quiz, error) {
	result := make(map[uuid.UUID][]models.Quiz, len(chapterIDs))
	if len(chapterIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT id, chapter_id, question, options, correct_option, quiz_order, created_at, updated_at
		  FROM quizzes
		 WHERE chapter_id = ANY($1)
		 ORDER BY chapter_id, quiz_order, created_at
	`
	rows, err := r.db.Query(ctx, query, chapterIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query quizzes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var q models.Quiz
		if err := rows.Scan(
			&q.ID, &q.ChapterID, &q.Question, &q.Options,
			&q.CorrectOption, &q.Order, &q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result[q.ChapterID] = append(result[q.ChapterID], q)
	}
	return result, rows.Err()
}

func insertChapter(ctx context.Context, tx pgx.Tx, chapter models.Chapter, now time.Time) error {
	if chapter.ID == uuid.Nil {
		chapter.ID = uuid.New()
	}
	query := `
		INSERT INTO chapters (
			id, course_id, title, content, chapter_order, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $6)
	`
	_, err := tx.Exec(ctx, query, chapter.ID, chapter.CourseID, chapter.Title, chapter.Content, chapter.Order, now)
	if err != nil {
		return fmt.Errorf("failed to insert chapter: %w", err)
	}

	for _, quiz := range chapter.Quizzes {
		quiz.ID = uuid.Nil
		quiz.ChapterID = chapter.ID
		if err := upsertQuiz(ctx, tx, quiz, now); err != nil {
			return err
		}
	}
	return nil
}

func updateChapter(ctx context.Context, tx pgx.Tx, chapter models.Chapter, now time.Time) error {
	query := `
		UPDATE chapters
		   SET title = $3,
		       content = $4,
		       chapter_order = $5,
		       updated_at = $6
		 WHERE id = $1 AND course_id = $2
	`
	cmdTag, err := tx.Exec(ctx, query, chapter.ID, chapter.CourseID, chapter.Title, chapter.Content, chapter.Order, now)
	if err != nil {
		return fmt.Errorf("failed to update chapter: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return app_errors.ErrChapterNotFound
	}

	for _, quiz := range chapter.Quizzes {
		quiz.ChapterID = chapter.ID
		if err := upsertQuiz(ctx, tx, quiz, now); err != nil {
			return err
		}
	}
	return nil
}

// upsertQuiz inserts quizzes with a nil ID and updates the rest in place.
func upsertQuiz(ctx context.Context, tx pgx.Tx, quiz models.Quiz, now time.Time) error {
	if quiz.Options == nil {
		quiz.Options = []string{}
	}
	if quiz.ID == uuid.Nil {
		query := `
			INSERT INTO quizzes (
				id, chapter_id, question, options, correct_option, quiz_order, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		`
		_, err := tx.Exec(ctx, query, uuid.New(), quiz.ChapterID, quiz.Question, quiz.Options, quiz.CorrectOption, quiz.Order, now)
		if err != nil {
			return fmt.Errorf("failed to insert quiz: %w", err)
		}
		return nil
	}

	query := `
		UPDATE quizzes
		   SET question = $3,
		       options = $4,
		       correct_option = $5,
		       quiz_order = $6,
		       updated_at = $7
		 WHERE id = $1 AND chapter_id = $2
	`
	_, err := tx.Exec(ctx, query, quiz.ID, quiz.ChapterID, quiz.Question, quiz.Options, quiz.CorrectOption, quiz.Order, now)
	if err != nil {
		return fmt.Errorf("failed to update quiz: %w", err)
	}
	return nil
}

package progress

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"EduPlatform/internal/service/chapter"
	"EduPlatform/pkg/logger"
	"context"
	"time"

	"github.com/google/uuid"
)

type progressRepo interface {
	Upsert(ctx context.Context, u models.ProgressUpdate) (models.Progress, error)
	ByChapter(ctx context.Context, userID, chapterID uuid.UUID) (models.Progress, error)
}

type ProgressService struct {
	log         logger.Log
	chapters    chapter.ChapterFinder
	enrollments chapter.EnrollmentChecker
	progress    progressRepo
	now         func() time.Time
}

func NewProgressService(
	log logger.Log,
	chapters chapter.ChapterFinder,
	enrollments chapter.EnrollmentChecker,
	progress progressRepo,
) *ProgressService {
	return &ProgressService{
		log:         log,
		chapters:    chapters,
		enrollments: enrollments,
		progress:    progress,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *ProgressService) resolve(ctx context.Context, userID, courseID, chapterID uuid.UUID) (*models.Chapter, error) {
	if err := chapter.RequireEnrollment(ctx, s.enrollments, userID, courseID); err != nil {
		return nil, err
	}
	return s.chapters.ChapterInCourse(ctx, courseID, chapterID)
}

// CompleteChapter marks the chapter completed. The stored quiz score is
// left as is.
func (s *ProgressService) CompleteChapter(ctx context.Context, userID, courseID, chapterID uuid.UUID) error {
	ch, err := s.resolve(ctx, userID, courseID, chapterID)
	if err != nil {
		return err
	}
	_, err = s.progress.Upsert(ctx, models.ProgressUpdate{
		UserID:    userID,
		CourseID:  courseID,
		ChapterID: ch.ID,
		Completed: true,
		At:        s.now(),
	})
	if err != nil {
		return err
	}
	s.log.Debug("chapter completed", "user_id", userID, "chapter_id", ch.ID)
	return nil
}

// SubmitQuiz grades the answers and records the score. A passing score
// completes the chapter; a failing one never reverts a completion.
func (s *ProgressService) SubmitQuiz(ctx context.Context, userID, courseID, chapterID uuid.UUID, answers map[string]int) (*models.QuizResult, error) {
	ch, err := s.resolve(ctx, userID, courseID, chapterID)
	if err != nil {
		return nil, err
	}
	if len(ch.Quizzes) == 0 {
		return nil, app_errors.ErrNoQuizzes
	}

	result := Score(ch.Quizzes, answers)
	score := result.Score
	_, err = s.progress.Upsert(ctx, models.ProgressUpdate{
		UserID:    userID,
		CourseID:  courseID,
		ChapterID: ch.ID,
		Completed: result.Passed,
		QuizScore: &score,
		At:        s.now(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Debug("quiz submitted", "user_id", userID, "chapter_id", ch.ID, "score", score, "passed", result.Passed)
	return &result, nil
}

func (s *ProgressService) ChapterProgress(ctx context.Context, userID, courseID, chapterID uuid.UUID) (*models.Progress, error) {
	ch, err := s.resolve(ctx, userID, courseID, chapterID)
	if err != nil {
		return nil, err
	}
	p, err := s.progress.ByChapter(ctx, userID, ch.ID)
	if err != nil {
		return nil, err
	}
	p.CourseID = courseID
	return &p, nil
}

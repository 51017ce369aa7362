package models

import (
	"time"

	"github.com/google/uuid"
)

// PassingScore is the minimal quiz score that completes a chapter.
const PassingScore = 70

type Progress struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	CourseID    uuid.UUID  `json:"courseId"`
	ChapterID   uuid.UUID  `json:"chapterId"`
	Completed   bool       `json:"completed"`
	QuizScore   *int       `json:"quizScore"`
	CompletedAt *time.Time `json:"completedAt"`
}

// ProgressUpdate describes one write to a progress record. Completed only
// ever raises the flag; a nil QuizScore leaves the stored score alone.
type ProgressUpdate struct {
	UserID    uuid.UUID
	CourseID  uuid.UUID
	ChapterID uuid.UUID
	Completed bool
	QuizScore *int
	At        time.Time
}

// Apply merges u into p. A completed record stays completed.
func (p Progress) Apply(u ProgressUpdate) Progress {
	if u.QuizScore != nil {
		score := *u.QuizScore
		p.QuizScore = &score
	}
	if u.Completed {
		at := u.At
		p.Completed = true
		p.CompletedAt = &at
	}
	return p
}

type QuizResult struct {
	Score          int  `json:"score"`
	Passed         bool `json:"passed"`
	CorrectAnswers int  `json:"correctAnswers"`
	TotalQuestions int  `json:"totalQuestions"`
}

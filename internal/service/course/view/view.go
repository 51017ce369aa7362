// Package view turns stored courses and chapters into the shapes returned to
// clients, applying viewer specific fields such as progress and the
// enrollment code.
package view

import (
	"EduPlatform/internal/models"

	"github.com/google/uuid"
)

// Viewer describes who looks at a course and what they have done in it.
type Viewer struct {
	User      *models.User
	Enrolled  bool
	Completed map[uuid.UUID]bool
}

func Quiz(q models.Quiz) models.QuizView {
	options := q.Options
	if options == nil {
		options = []string{}
	}
	return models.QuizView{
		ID:            q.ID,
		Question:      q.Question,
		Options:       options,
		CorrectOption: q.CorrectOption,
	}
}

func Chapter(ch models.Chapter, completed bool) models.ChapterView {
	quizzes := make([]models.QuizView, 0, len(ch.Quizzes))
	for _, q := range ch.Quizzes {
		quizzes = append(quizzes, Quiz(q))
	}
	return models.ChapterView{
		ID:        ch.ID,
		Title:     ch.Title,
		Content:   ch.Content,
		Quiz:      quizzes,
		Completed: completed,
	}
}

// Progress is the percentage of chapters completed, rounded down. Records
// for chapters no longer in the course are ignored.
func Progress(chapters []models.Chapter, completed map[uuid.UUID]bool) int {
	if len(chapters) == 0 {
		return 0
	}
	done := 0
	for _, ch := range chapters {
		if completed[ch.ID] {
			done++
		}
	}
	return 100 * done / len(chapters)
}

func Course(c models.Course, chapters []models.Chapter, v Viewer) models.CourseView {
	views := make([]models.ChapterView, 0, len(chapters))
	for _, ch := range chapters {
		views = append(views, Chapter(ch, v.Completed[ch.ID]))
	}

	progress := 0
	if v.Enrolled {
		progress = Progress(chapters, v.Completed)
	}

	var code *string
	if v.User.IsAdmin() {
		enrollmentCode := c.EnrollmentCode
		code = &enrollmentCode
	}

	return models.CourseView{
		ID:             c.ID,
		Title:          c.Title,
		Description:    c.Description,
		ImageURL:       c.ImageURL,
		Chapters:       views,
		Progress:       progress,
		Enrolled:       v.Enrolled,
		EnrollmentCode: code,
	}
}

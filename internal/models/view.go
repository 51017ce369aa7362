package models

import "github.com/google/uuid"

// QuizView carries the correct option to every viewer, as the course
// editor and the quiz page both read it.
type QuizView struct {
	ID            uuid.UUID `json:"id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"correctOption"`
}

type ChapterView struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Quiz      []QuizView `json:"quiz"`
	Completed bool       `json:"completed"`
}

type CourseView struct {
	ID             uuid.UUID     `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	ImageURL       string        `json:"imageUrl"`
	Chapters       []ChapterView `json:"chapters"`
	Progress       int           `json:"progress"`
	Enrolled       bool          `json:"enrolled"`
	EnrollmentCode *string       `json:"enrollmentCode"`
}

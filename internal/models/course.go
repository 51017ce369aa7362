package models

import (
	"time"

	"github.com/google/uuid"
)

const EnrollmentCodeLength = 8

type Course struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"image_url"`
	ImageObjectKey string    `json:"image_object_key"`
	EnrollmentCode string    `json:"enrollment_code"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type Chapter struct {
	ID        uuid.UUID `json:"id"`
	CourseID  uuid.UUID `json:"course_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Order     int       `json:"order"`
	Quizzes   []Quiz    `json:"quizzes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Quiz struct {
	ID            uuid.UUID `json:"id"`
	ChapterID     uuid.UUID `json:"chapter_id"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectOption int       `json:"correct_option"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CourseInput is the admin-supplied course tree. Chapter and quiz IDs are
// optional; unknown or empty IDs denote new entities.
type CourseInput struct {
	Title       string
	Description string
	ImageURL    string
	Chapters    []ChapterInput
}

type ChapterInput struct {
	ID      string
	Title   string
	Content string
	Quizzes []QuizInput
}

type QuizInput struct {
	ID            string
	Question      string
	Options       []string
	CorrectOption int
}

// CoursePlan is the set of writes that turns a stored course tree into the
// tree described by a CourseInput. Quizzes with a nil ID are inserted.
type CoursePlan struct {
	Course         Course
	UpdateChapters []Chapter
	InsertChapters []Chapter
	DeleteChapters []uuid.UUID
}

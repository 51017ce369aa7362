package dto

import "EduPlatform/internal/models"

// EnrollRequest carries the code as a pointer so that a missing field is
// rejected while an empty code still reaches the enrollment check.
type EnrollRequest struct {
	EnrollmentCode *string `json:"enrollmentCode" binding:"required"`
}

type QuizSubmission struct {
	Answers map[string]int `json:"answers" binding:"required"`
}

type QuizRequest struct {
	ID            string   `json:"id"`
	Question      string   `json:"question" binding:"required"`
	Options       []string `json:"options" binding:"required"`
	CorrectOption int      `json:"correctOption" binding:"min=0"`
}

type ChapterRequest struct {
	ID      string        `json:"id"`
	Title   string        `json:"title" binding:"required"`
	Content string        `json:"content"`
	Quiz    []QuizRequest `json:"quiz" binding:"dive"`
}

type CourseRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
	Chapters    []ChapterRequest `json:"chapters" binding:"dive"`
}

func (r CourseRequest) Input() models.CourseInput {
	in := models.CourseInput{
		Title:       r.Title,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Chapters:    make([]models.ChapterInput, 0, len(r.Chapters)),
	}
	for _, ch := range r.Chapters {
		chIn := models.ChapterInput{
			ID:      ch.ID,
			Title:   ch.Title,
			Content: ch.Content,
			Quizzes: make([]models.QuizInput, 0, len(ch.Quiz)),
		}
		for _, q := range ch.Quiz {
			chIn.Quizzes = append(chIn.Quizzes, models.QuizInput{
				ID:            q.ID,
				Question:      q.Question,
				Options:       q.Options,
				CorrectOption: q.CorrectOption,
			})
		}
		in.Chapters = append(in.Chapters, chIn)
	}
	return in
}

type ImageResponse struct {
	ImageURL string `json:"imageUrl"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

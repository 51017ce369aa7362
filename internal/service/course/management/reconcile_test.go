package management

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/models"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quizInput(id string) models.QuizInput {
	return models.QuizInput{ID: id, Question: "2+2?", Options: []string{"3", "4"}, CorrectOption: 1}
}

func TestPlanCreateOrdersByPosition(t *testing.T) {
	plan := planCreate(models.Course{Title: "Go"}, models.CourseInput{
		Title: "Go",
		Chapters: []models.ChapterInput{
			{ID: "chapter-1", Title: "Intro", Quizzes: []models.QuizInput{quizInput("q-1"), quizInput("q-2")}},
			{Title: "Types"},
		},
	})

	require.Len(t, plan.InsertChapters, 2)
	assert.Equal(t, 0, plan.InsertChapters[0].Order)
	assert.Equal(t, 1, plan.InsertChapters[1].Order)
	assert.Equal(t, uuid.Nil, plan.InsertChapters[0].ID)
	require.Len(t, plan.InsertChapters[0].Quizzes, 2)
	assert.Equal(t, 1, plan.InsertChapters[0].Quizzes[1].Order)
	assert.Empty(t, plan.UpdateChapters)
	assert.Empty(t, plan.DeleteChapters)
}

func TestPlanUpdate(t *testing.T) {
	courseID := uuid.New()
	keepQuiz := models.Quiz{ID: uuid.New(), Question: "old", Options: []string{"a", "b"}}
	omittedQuiz := models.Quiz{ID: uuid.New(), Question: "untouched", Options: []string{"a", "b"}}
	a := models.Chapter{ID: uuid.New(), CourseID: courseID, Title: "A", Order: 0, Quizzes: []models.Quiz{keepQuiz, omittedQuiz}}
	b := models.Chapter{ID: uuid.New(), CourseID: courseID, Title: "B", Order: 1}
	c := models.Chapter{ID: uuid.New(), CourseID: courseID, Title: "C", Order: 2}

	in := models.CourseInput{
		Title:       "Renamed",
		Description: "new description",
		Chapters: []models.ChapterInput{
			{ID: c.ID.String(), Title: "C2"},
			{ID: "chapter-new", Title: "New"},
			{ID: a.ID.String(), Title: "A2", Quizzes: []models.QuizInput{quizInput(keepQuiz.ID.String()), quizInput("")}},
		},
	}

	plan := planUpdate(models.Course{ID: courseID, Title: "Old"}, []models.Chapter{a, b, c}, in)

	assert.Equal(t, "Renamed", plan.Course.Title)
	assert.Equal(t, "new description", plan.Course.Description)
	assert.Equal(t, []uuid.UUID{b.ID}, plan.DeleteChapters)

	require.Len(t, plan.InsertChapters, 1)
	assert.Equal(t, "New", plan.InsertChapters[0].Title)
	assert.Equal(t, 1, plan.InsertChapters[0].Order)

	require.Len(t, plan.UpdateChapters, 2)
	assert.Equal(t, c.ID, plan.UpdateChapters[0].ID)
	assert.Equal(t, 0, plan.UpdateChapters[0].Order)
	assert.Equal(t, "C2", plan.UpdateChapters[0].Title)

	updatedA := plan.UpdateChapters[1]
	assert.Equal(t, a.ID, updatedA.ID)
	assert.Equal(t, 2, updatedA.Order)
	require.Len(t, updatedA.Quizzes, 2)
	assert.Equal(t, keepQuiz.ID, updatedA.Quizzes[0].ID)
	assert.Equal(t, uuid.Nil, updatedA.Quizzes[1].ID)
}

func TestPlanUpdateDuplicateIDInsertsSecond(t *testing.T) {
	a := models.Chapter{ID: uuid.New(), Title: "A"}
	plan := planUpdate(models.Course{}, []models.Chapter{a}, models.CourseInput{
		Title: "x",
		Chapters: []models.ChapterInput{
			{ID: a.ID.String(), Title: "first"},
			{ID: a.ID.String(), Title: "second"},
		},
	})

	require.Len(t, plan.UpdateChapters, 1)
	require.Len(t, plan.InsertChapters, 1)
	assert.Equal(t, "second", plan.InsertChapters[0].Title)
	assert.Empty(t, plan.DeleteChapters)
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name string
		in   models.CourseInput
		want error
	}{
		{"ok", models.CourseInput{Title: "Go", Chapters: []models.ChapterInput{{Title: "c", Quizzes: []models.QuizInput{quizInput("")}}}}, nil},
		{"empty title", models.CourseInput{Title: "  "}, app_errors.ErrEmptyTitle},
		{"empty chapter title", models.CourseInput{Title: "Go", Chapters: []models.ChapterInput{{}}}, app_errors.ErrEmptyTitle},
		{"correct option out of range", models.CourseInput{Title: "Go", Chapters: []models.ChapterInput{{Title: "c", Quizzes: []models.QuizInput{
			{Question: "q", Options: []string{"a", "b"}, CorrectOption: 2},
		}}}}, app_errors.ErrInvalidQuiz},
		{"single option", models.CourseInput{Title: "Go", Chapters: []models.ChapterInput{{Title: "c", Quizzes: []models.QuizInput{
			{Question: "q", Options: []string{"a"}},
		}}}}, nil},
		{"no options", models.CourseInput{Title: "Go", Chapters: []models.ChapterInput{{Title: "c", Quizzes: []models.QuizInput{
			{Question: "q", Options: []string{}},
		}}}}, app_errors.ErrInvalidQuiz},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput(tt.in)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGenerateEnrollmentCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateEnrollmentCode()
		require.NoError(t, err)
		assert.Regexp(t, `^[A-Z0-9]{8}$`, code)
		seen[code] = true
	}
	assert.Greater(t, len(seen), 45)
}

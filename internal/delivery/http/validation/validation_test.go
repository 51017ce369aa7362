package validation

import (
	"EduPlatform/internal/delivery/http/dto"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	Apply(v)
	return v
}

func TestQuizCorrectOption(t *testing.T) {
	v := newValidator()

	ok := dto.CourseRequest{
		Title: "Go",
		Chapters: []dto.ChapterRequest{{
			Title: "Intro",
			Quiz:  []dto.QuizRequest{{Question: "q", Options: []string{"a", "b"}, CorrectOption: 1}},
		}},
	}
	assert.NoError(t, v.Struct(ok))

	bad := ok
	bad.Chapters = []dto.ChapterRequest{{
		Title: "Intro",
		Quiz:  []dto.QuizRequest{{Question: "q", Options: []string{"a", "b"}, CorrectOption: 2}},
	}}
	err := v.Struct(bad)
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "correct_option", verrs[0].Tag())
}

func TestCourseRequestRequiresTitles(t *testing.T) {
	v := newValidator()

	assert.Error(t, v.Struct(dto.CourseRequest{}))
	assert.Error(t, v.Struct(dto.CourseRequest{Title: "Go", Chapters: []dto.ChapterRequest{{}}}))
	assert.Error(t, v.Struct(dto.CourseRequest{Title: "Go", Chapters: []dto.ChapterRequest{{
		Title: "c",
		Quiz:  []dto.QuizRequest{{Question: "q"}},
	}}}))
}

func TestSingleOptionQuizAllowed(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(dto.CourseRequest{Title: "Go", Chapters: []dto.ChapterRequest{{
		Title: "c",
		Quiz:  []dto.QuizRequest{{Question: "q", Options: []string{"a"}}},
	}}}))
	assert.Error(t, v.Struct(dto.CourseRequest{Title: "Go", Chapters: []dto.ChapterRequest{{
		Title: "c",
		Quiz:  []dto.QuizRequest{{Question: "q", Options: []string{"a"}, CorrectOption: 1}},
	}}}))
}

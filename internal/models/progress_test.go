package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestProgressApply(t *testing.T) {
	chapterID := uuid.New()
	t0 := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.Add(time.Hour)

	t.Run("failing score on fresh record", func(t *testing.T) {
		p := Progress{ChapterID: chapterID}.Apply(ProgressUpdate{QuizScore: intPtr(33), At: t0})
		assert.False(t, p.Completed)
		assert.Nil(t, p.CompletedAt)
		require.NotNil(t, p.QuizScore)
		assert.Equal(t, 33, *p.QuizScore)
	})

	t.Run("passing score completes", func(t *testing.T) {
		p := Progress{}.Apply(ProgressUpdate{QuizScore: intPtr(80), Completed: true, At: t0})
		assert.True(t, p.Completed)
		require.NotNil(t, p.CompletedAt)
		assert.Equal(t, t0, *p.CompletedAt)
	})

	t.Run("failing resubmission keeps completion", func(t *testing.T) {
		p := Progress{}.Apply(ProgressUpdate{QuizScore: intPtr(100), Completed: true, At: t0})
		p = p.Apply(ProgressUpdate{QuizScore: intPtr(0), At: t1})
		assert.True(t, p.Completed)
		assert.Equal(t, 0, *p.QuizScore)
		assert.Equal(t, t0, *p.CompletedAt)
	})

	t.Run("explicit completion keeps score", func(t *testing.T) {
		p := Progress{}.Apply(ProgressUpdate{QuizScore: intPtr(50), At: t0})
		p = p.Apply(ProgressUpdate{Completed: true, At: t1})
		assert.True(t, p.Completed)
		assert.Equal(t, 50, *p.QuizScore)
		assert.Equal(t, t1, *p.CompletedAt)
	})

	t.Run("score is copied", func(t *testing.T) {
		score := 90
		p := Progress{}.Apply(ProgressUpdate{QuizScore: &score, Completed: true, At: t0})
		score = 10
		assert.Equal(t, 90, *p.QuizScore)
	})
}

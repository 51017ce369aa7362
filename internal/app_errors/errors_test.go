package app_errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"sentinel", ErrCourseNotFound, KindNotFound},
		{"wrapped", fmt.Errorf("load chapter: %w", ErrChapterNotFound), KindNotFound},
		{"forbidden", ErrNotEnrolled, KindForbidden},
		{"invalid argument", ErrInvalidEnrollmentCode, KindInvalidArgument},
		{"unauthorized", ErrTokenExpired, KindUnauthorized},
		{"plain error", errors.New("boom"), KindInternal},
		{"nil", nil, KindInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestSentinelsMatchWithErrorsIs(t *testing.T) {
	err := fmt.Errorf("enroll: %w", ErrInvalidEnrollmentCode)
	assert.True(t, errors.Is(err, ErrInvalidEnrollmentCode))
	assert.False(t, errors.Is(err, ErrNotEnrolled))
	assert.Equal(t, "invalid enrollment code", ErrInvalidEnrollmentCode.Error())
}

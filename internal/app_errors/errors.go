package app_errors

import "errors"

type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindInvalidArgument Kind = "invalid_argument"
	KindForbidden       Kind = "forbidden"
	KindUnauthorized    Kind = "unauthorized"
	KindUnavailable     Kind = "unavailable"
	KindInternal        Kind = "internal"
)

// Error is a terminal application error with a stable kind that the delivery
// layer maps to a transport status.
type Error struct {
	kind Kind
	msg  string
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

// KindOf reports the kind of the first *Error in err's chain, KindInternal otherwise.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

var ErrUserExists = New(KindInvalidArgument, "email already registered")
var ErrUserNotFound = New(KindNotFound, "user not found")
var ErrIncorrectPassword = New(KindUnauthorized, "incorrect email or password")
var ErrPasswordLength = New(KindInvalidArgument, "password must be between 6 and 72 characters")
var ErrTokenNotFound = New(KindUnauthorized, "token not found")
var ErrTokenExpired = New(KindUnauthorized, "token expired")
var ErrInvalidToken = New(KindUnauthorized, "invalid token")

var ErrCourseNotFound = New(KindNotFound, "course not found")
var ErrChapterNotFound = New(KindNotFound, "chapter not found")
var ErrNoQuizzes = New(KindNotFound, "no quizzes found for this chapter")
var ErrNotEnrolled = New(KindForbidden, "you must be enrolled in this course")
var ErrInvalidEnrollmentCode = New(KindInvalidArgument, "invalid enrollment code")
var ErrDuplicateEnrollmentCode = New(KindInternal, "enrollment code already in use")
var ErrInsufficientPermissions = New(KindForbidden, "insufficient permissions")
var ErrEmptyTitle = New(KindInvalidArgument, "title must not be empty")
var ErrInvalidQuiz = New(KindInvalidArgument, "quiz needs a question and a correct option within its options")

var ErrNotImage = New(KindInvalidArgument, "not image")
var ErrFileSize = New(KindInvalidArgument, "file size error")
var ErrImageStorageDisabled = New(KindUnavailable, "image storage is not configured")
var ErrSearchDisabled = New(KindUnavailable, "course search is not configured")

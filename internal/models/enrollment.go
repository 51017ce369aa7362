package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	MessageEnrolled        = "Successfully enrolled in course"
	MessageAlreadyEnrolled = "You are already enrolled in this course"
)

type Enrollment struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	CourseID   uuid.UUID `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

type EnrollmentResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

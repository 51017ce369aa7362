package controllers

import (
	"EduPlatform/internal/app_errors"
	"EduPlatform/internal/delivery/http/controllers/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UUIDParam parses a path parameter. A malformed id cannot name a stored
// entity, so the request is aborted with notFound.
func UUIDParam(c *gin.Context, name string, notFound *app_errors.Error) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.Abort(c, notFound)
		return uuid.Nil, false
	}
	return id, true
}

func CourseID(c *gin.Context) (uuid.UUID, bool) {
	return UUIDParam(c, "course_id", app_errors.ErrCourseNotFound)
}

func ChapterID(c *gin.Context) (uuid.UUID, bool) {
	return UUIDParam(c, "chapter_id", app_errors.ErrChapterNotFound)
}

package service

import (
	"EduPlatform/internal/service/auth"
	"EduPlatform/internal/service/chapter/content"
	"EduPlatform/internal/service/chapter/progress"
	"EduPlatform/internal/service/course/enrollment"
	"EduPlatform/internal/service/course/management"
	"EduPlatform/internal/service/course/query"
)

type CourseService struct {
	*query.QueryService
	*enrollment.EnrollmentService
	*management.ManagementService
}

type ChapterService struct {
	*content.ContentService
	*progress.ProgressService
}

type Collection struct {
	*auth.AuthService
	*CourseService
	*ChapterService
}

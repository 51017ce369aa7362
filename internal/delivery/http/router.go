package http

import (
	"EduPlatform/internal/config"
	"EduPlatform/internal/delivery/http/controllers"
	"EduPlatform/internal/delivery/http/controllers/auth"
	"EduPlatform/internal/delivery/http/controllers/chapter"
	"EduPlatform/internal/delivery/http/controllers/course"
	"EduPlatform/internal/delivery/http/controllers/middleware"
	"EduPlatform/internal/models"
	"EduPlatform/internal/service"
	"EduPlatform/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func InitRoutes(l logger.Log, u service.Collection, db controllers.Pinger, corsCfg config.CORS) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     corsCfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           corsCfg.MaxAge,
	}))

	statusController := controllers.NewStatusHandler(db)
	authController := auth.NewAuthHandler(l, u.AuthService)
	authProvider := middleware.NewAuthMiddlewareProvider(l, u.AuthService)
	queryController := course.NewQueryHandler(l, u.CourseService)
	enrollmentController := course.NewEnrollmentHandler(l, u.CourseService)
	managementController := course.NewManagementHandler(l, u.CourseService)
	contentController := chapter.NewContentHandler(l, u.ChapterService)
	progressController := chapter.NewProgressHandler(l, u.ChapterService)

	v1 := r.Group("/v1", middleware.LoggingMiddleware(l))
	{
		v1.GET("/status", statusController.Status)

		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authController.Register)
			authGroup.POST("/login", authController.Login)
			authGroup.POST("/refresh", authController.Refresh)
			authGroup.GET("/me", authProvider.AuthMiddleware, authController.Me)
		}

		courses := v1.Group("/courses", authProvider.AuthMiddleware)
		{
			courses.GET("", queryController.ListCourses)
			courses.GET("/search", queryController.SearchCourses)
			courses.GET("/enrolled", queryController.EnrolledCourses)
			courses.GET("/:course_id", queryController.CourseByID)
			courses.POST("/:course_id/enroll", enrollmentController.Enroll)

			chapters := courses.Group("/:course_id/chapters/:chapter_id")
			{
				chapters.GET("", contentController.GetChapter)
				chapters.POST("/complete", progressController.CompleteChapter)
				chapters.POST("/quiz", progressController.SubmitQuiz)
				chapters.GET("/progress", progressController.ChapterProgress)
			}
		}

		admin := v1.Group("/admin", authProvider.AuthMiddleware, middleware.RequireRoles(models.AdminRole))
		{
			admin.POST("/courses", managementController.CreateCourse)
			admin.PUT("/courses/:course_id", managementController.UpdateCourse)
			admin.DELETE("/courses/:course_id", managementController.DeleteCourse)
			admin.PUT("/courses/:course_id/image", managementController.UploadCourseImage)
		}
	}
	return r
}

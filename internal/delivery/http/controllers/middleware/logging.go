package middleware

import (
	"EduPlatform/pkg/logger"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

func LoggingMiddleware(log logger.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		method := c.Request.Method
		path := c.Request.URL.Path
		if rawQuery := c.Request.URL.RawQuery; rawQuery != "" {
			path = fmt.Sprintf("%s?%s", path, rawQuery)
		}
		status := c.Writer.Status()

		args := []any{
			"status", status,
			"latency", latency,
			"client_ip", c.ClientIP(),
		}
		if user, ok := CurrentUser(c); ok {
			args = append(args, "user_id", user.ID)
		}
		log.Info(fmt.Sprintf("%s %s", method, path), args...)

		for _, ginErr := range c.Errors {
			log.ErrorErr("HTTP request error", ginErr.Err,
				"status", status,
				"method", method,
				"path", path,
			)
		}
	}
}

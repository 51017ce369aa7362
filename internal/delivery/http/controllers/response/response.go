package response

import (
	"EduPlatform/internal/app_errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

var statusByKind = map[app_errors.Kind]int{
	app_errors.KindNotFound:        http.StatusNotFound,
	app_errors.KindInvalidArgument: http.StatusBadRequest,
	app_errors.KindForbidden:       http.StatusForbidden,
	app_errors.KindUnauthorized:    http.StatusUnauthorized,
	app_errors.KindUnavailable:     http.StatusServiceUnavailable,
	app_errors.KindInternal:        http.StatusInternalServerError,
}

func Status(kind app_errors.Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error aborts the request with the status matching err's kind. Internal
// errors are attached to the context for the logging middleware and their
// message is hidden from the client.
func Error(c *gin.Context, err error) {
	kind := app_errors.KindOf(err)
	msg := err.Error()
	if kind == app_errors.KindInternal {
		_ = c.Error(err)
		msg = "internal server error"
	}
	c.AbortWithStatusJSON(Status(kind), ErrorBody{Error: msg, Kind: string(kind)})
}

// BadRequest reports a malformed request body or parameter.
func BadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{
		Error: err.Error(),
		Kind:  string(app_errors.KindInvalidArgument),
	})
}

func Abort(c *gin.Context, appErr *app_errors.Error) {
	c.AbortWithStatusJSON(Status(appErr.Kind()), ErrorBody{Error: appErr.Error(), Kind: string(appErr.Kind())})
}

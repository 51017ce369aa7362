package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const statusCheckTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusHandler struct {
	db Pinger
}

func NewStatusHandler(db Pinger) *StatusHandler {
	return &StatusHandler{db: db}
}

func (h *StatusHandler) Status(c *gin.Context) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), statusCheckTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "Unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "Available"})
}

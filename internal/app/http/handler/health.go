package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Health(c *gin.Context) {
	var failures int64
	if h.Failures != nil {
		failures = h.Failures.Load()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"event_failures": failures,
	})
}

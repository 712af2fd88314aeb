package ui

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cmb-sy/Data-Science-Knowledge-System-Visualization/internal/logging"
)

const requestIDKey = "request_id"

// requestID tags every request so error responses and log lines can be
// correlated from the frontend.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func requestLogger(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("%s %s -> %d (%s) id=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start), c.GetString(requestIDKey))
	}
}

// errorBody is the uniform error response shape.
func errorBody(c *gin.Context, message, code string) gin.H {
	return gin.H{
		"error":      message,
		"code":       code,
		"request_id": c.GetString(requestIDKey),
	}
}

package middleware

import (
	"log/slog"
	"net/http"

	"hotelier-hub/internal/handler/httperr"
	"hotelier-hub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors attached via httperr.Attach and logs any
// private errors the handlers recorded on the context.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ginErr := range c.Errors.ByType(gin.ErrorTypePrivate) {
			slog.Error("request failed",
				"path", c.Request.URL.Path,
				"error", ginErr.Err.Error(),
				"stack", errs.ExtractStackLines(ginErr.Err, 8))
		}

		if c.Writer.Written() {
			return
		}

		// Newest public error wins.
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}

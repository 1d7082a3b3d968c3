package middleware

import (
	"net/http"

	"github.com/fatflowers/coursehub/pkg/logctx"
	"github.com/fatflowers/coursehub/pkg/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error a handler pushed with c.Error as the
// JSON envelope. Handlers that already wrote a body are left alone.
func ErrorHandler(base *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		status, body := response.FromError(last.Err)
		log := logctx.FromGin(c, base)
		if status >= http.StatusInternalServerError {
			log.Errorw("request failed", "status", status, "error", last.Err)
		} else {
			log.Debugw("request rejected", "status", status, "error", last.Err)
		}
		if c.Writer.Written() {
			return
		}
		c.JSON(status, body)
	}
}

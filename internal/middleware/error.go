package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "personalfinance/internal/errors"
	"personalfinance/internal/logger"
)

// ErrorHandler renders the last error a handler reported with c.Error as
// {"error":{"code","message"}}. AppErrors keep their status, code and
// message. Anything else is logged and answered with a generic internal
// error. Nothing is written if the handler already sent a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.FromContext(c.Request.Context())

		appErr := apperrors.ErrInternalServer
		if !errors.As(err, &appErr) {
			log.Errorw("unexpected error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
		} else if appErr.Internal != nil {
			log.Errorw("app error",
				"code", appErr.Code,
				"message", appErr.Message,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}

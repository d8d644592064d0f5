package middleware

import (
	"errors"
	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders the last error a handler attached with c.Error.
// AppErrors keep their status; anything else becomes a generic 500.
func ErrorHandler(alerts response.Alerts, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			// Never expose internal error details to clients
			log.Error("Internal Server Error",
				zap.String("request_id", c.GetString("RequestID")),
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
			appErr = apperror.Internal(err)
		}

		if appErr.IsAlert() {
			alerts.Failure(c, appErr.EntityName, appErr.ErrorKey)
		}
		var details interface{}
		if len(appErr.Details) > 0 {
			details = appErr.Details
		}
		response.Error(c, appErr.Code, appErr.Message, details)
	}
}

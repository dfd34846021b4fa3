package shared

import (
	"github.com/rpg-companion/api/internal/http/response"
	"github.com/rpg-companion/api/internal/i18n"
	"github.com/rpg-companion/api/internal/logger"
	"github.com/rpg-companion/api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog returns a logger tagged with the request_id.
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError writes a localized error and logs err when present.
func RespondError(c *gin.Context, code int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	RespondErrorWithMsg(c, code, i18n.T(locale, key), err)
}

// RespondErrorWithMsg writes msg as the error and logs err when present.
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondValidationError writes the field message of a validation error.
// It reports false when err is not one.
func RespondValidationError(c *gin.Context, err error) bool {
	key, args, ok := service.ValidationMessage(err)
	if !ok {
		return false
	}
	msg := i18n.Sprintf(i18n.ResolveLocale(c), key, args...)
	RespondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
	return true
}

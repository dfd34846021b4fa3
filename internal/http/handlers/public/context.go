package public

import (
	handlershared "github.com/rpg-companion/api/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func getUserID(c *gin.Context) (string, bool) {
	return handlershared.GetUserID(c)
}

func requestID(c *gin.Context) string {
	if rid, ok := c.Get("request_id"); ok {
		if value, ok := rid.(string); ok {
			return value
		}
	}
	return ""
}

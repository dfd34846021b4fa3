package shared

import (
	"strings"

	"github.com/rpg-companion/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey gin context key set by the session middleware
const ContextUserIDKey = "user_id"

// GetUserID reads the authenticated user id, answering 401 when absent.
func GetUserID(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return "", false
	}
	id, ok := value.(string)
	if !ok || strings.TrimSpace(id) == "" {
		RespondError(c, response.CodeUnauthorized, "error.unauthorized", nil)
		return "", false
	}
	return id, true
}

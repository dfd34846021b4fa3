package public

import (
	handlershared "github.com/rpg-companion/api/internal/http/handlers/shared"
	"github.com/rpg-companion/api/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetMyLoginLogs lists the caller's login attempts
func (h *Handler) GetMyLoginLogs(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, pageSize := handlershared.PaginationFromQuery(c)
	logs, total, err := h.LoginAttemptService.ListByUser(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.SuccessWithPage(c, logs, response.NewPagination(page, pageSize, total))
}

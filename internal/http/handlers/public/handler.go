package public

import "github.com/rpg-companion/api/internal/provider"

// Handler API handlers for players and guests
type Handler struct {
	*provider.Container
}

// New creates the handler
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

// exposeResetToken reports whether forgot-password may echo the raw token
func (h *Handler) exposeResetToken() bool {
	if h == nil || h.Config == nil {
		return false
	}
	return h.Config.Auth.ExposeResetToken && !h.Config.Server.IsRelease()
}

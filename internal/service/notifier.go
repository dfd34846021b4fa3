package service

import (
	"context"

	"github.com/rpg-companion/api/internal/logger"
	"github.com/rpg-companion/api/internal/queue"
)

// ResetNotifier delivers password reset instructions
type ResetNotifier interface {
	NotifyPasswordReset(ctx context.Context, payload queue.PasswordResetPayload) error
}

// LogResetNotifier writes reset instructions to the log instead of sending mail
type LogResetNotifier struct {
	includeLink bool
}

// NewLogResetNotifier creates a log notifier. The reset link is only logged
// when includeLink is set.
func NewLogResetNotifier(includeLink bool) *LogResetNotifier {
	return &LogResetNotifier{includeLink: includeLink}
}

// NotifyPasswordReset logs the notification
func (n *LogResetNotifier) NotifyPasswordReset(_ context.Context, payload queue.PasswordResetPayload) error {
	fields := []interface{}{
		"user_id", payload.UserID,
		"nickname", payload.Nickname,
		"email", payload.Email,
		"expires_at", payload.ExpiresAt,
	}
	if n != nil && n.includeLink {
		fields = append(fields, "reset_url", payload.ResetURL)
	}
	logger.Infow("password_reset_notification", fields...)
	return nil
}

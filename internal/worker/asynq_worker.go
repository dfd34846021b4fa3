package worker

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rpg-companion/api/internal/logger"
	"github.com/rpg-companion/api/internal/provider"
	"github.com/rpg-companion/api/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer async task handlers
type Consumer struct {
	*provider.Container
	now func() time.Time
}

// NewConsumer creates the consumer
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Register binds task handlers to mux
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskPasswordResetNotify, c.handlePasswordReset)
}

func (c *Consumer) handlePasswordReset(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_password_reset_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParsePasswordResetPayload(task)
	if err != nil {
		logger.Warnw("worker_password_reset_unmarshal_failed", "error", err)
		// a malformed body never becomes valid on retry
		return errors.Join(err, asynq.SkipRetry)
	}
	if strings.TrimSpace(payload.UserID) == "" {
		logger.Debugw("worker_password_reset_skip_invalid_payload")
		return nil
	}
	if !payload.ExpiresAt.IsZero() && c.now().After(payload.ExpiresAt) {
		logger.Debugw("worker_password_reset_skip_expired", "user_id", payload.UserID, "expires_at", payload.ExpiresAt)
		return nil
	}
	if c.ResetNotifier == nil || c.UserRepo == nil {
		logger.Warnw("worker_password_reset_skip_unwired", "user_id", payload.UserID)
		return nil
	}
	current, err := c.resetStillPending(payload)
	if err != nil {
		logger.Warnw("worker_password_reset_load_user_failed", "user_id", payload.UserID, "error", err)
		return err
	}
	if !current {
		logger.Debugw("worker_password_reset_skip_stale", "user_id", payload.UserID)
		return nil
	}
	if err := c.ResetNotifier.NotifyPasswordReset(ctx, payload); err != nil {
		logger.Warnw("worker_password_reset_notify_failed", "user_id", payload.UserID, "error", err)
		return err
	}
	return nil
}

// resetStillPending reports whether the token announced by payload is still
// the user's outstanding one: not consumed, not expired and not replaced by
// a newer request.
func (c *Consumer) resetStillPending(payload queue.PasswordResetPayload) (bool, error) {
	user, err := c.UserRepo.GetByID(payload.UserID)
	if err != nil {
		return false, err
	}
	if !user.HasActiveResetToken(c.now()) {
		return false, nil
	}
	if payload.ExpiresAt.IsZero() {
		return true, nil
	}
	drift := user.ResetTokenExpiry.Sub(payload.ExpiresAt)
	if drift < 0 {
		drift = -drift
	}
	return drift < time.Second, nil
}

package queue

import (
	"encoding/json"
	"time"

	"github.com/rpg-companion/api/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskPasswordResetNotify password reset notification
	TaskPasswordResetNotify = constants.TaskPasswordResetNotify
)

// PasswordResetPayload password reset notification payload
type PasswordResetPayload struct {
	UserID    string    `json:"user_id"`
	Nickname  string    `json:"nickname"`
	Email     string    `json:"email"`
	ResetURL  string    `json:"reset_url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewPasswordResetTask creates a password reset notification task
func NewPasswordResetTask(payload PasswordResetPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskPasswordResetNotify, body), nil
}

// ParsePasswordResetPayload decodes a task body
func ParsePasswordResetPayload(task *asynq.Task) (PasswordResetPayload, error) {
	var payload PasswordResetPayload
	if task == nil {
		return payload, nil
	}
	err := json.Unmarshal(task.Payload(), &payload)
	return payload, err
}

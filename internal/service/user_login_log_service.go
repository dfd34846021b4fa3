package service

import (
	"strings"
	"time"

	"github.com/rpg-companion/api/internal/constants"
	"github.com/rpg-companion/api/internal/models"
	"github.com/rpg-companion/api/internal/repository"
)

// LoginAttemptService login audit log
type LoginAttemptService struct {
	repo repository.LoginAttemptRepository
}

// NewLoginAttemptService creates the login audit service
func NewLoginAttemptService(repo repository.LoginAttemptRepository) *LoginAttemptService {
	return &LoginAttemptService{repo: repo}
}

// RecordLoginInput one login attempt
type RecordLoginInput struct {
	UserID      string
	Identifier  string
	Status      string
	FailReason  string
	ClientIP    string
	UserAgent   string
	LoginSource string
	RequestID   string
}

// Record stores a login attempt
func (s *LoginAttemptService) Record(input RecordLoginInput) error {
	if s == nil || s.repo == nil {
		return nil
	}

	status := strings.ToLower(strings.TrimSpace(input.Status))
	if status != constants.LoginLogStatusSuccess {
		status = constants.LoginLogStatusFailed
	}

	failReason := strings.ToLower(strings.TrimSpace(input.FailReason))
	if status == constants.LoginLogStatusSuccess {
		failReason = ""
	} else if failReason == "" {
		failReason = constants.LoginLogFailReasonInternalError
	}

	source := strings.ToLower(strings.TrimSpace(input.LoginSource))
	if source == "" {
		source = constants.LoginLogSourceWeb
	}

	identifier := strings.TrimSpace(input.Identifier)
	if len(identifier) > 255 {
		identifier = identifier[:255]
	}

	return s.repo.Create(&models.LoginAttempt{
		UserID:      strings.TrimSpace(input.UserID),
		Identifier:  identifier,
		Status:      status,
		FailReason:  failReason,
		ClientIP:    strings.TrimSpace(input.ClientIP),
		UserAgent:   strings.TrimSpace(input.UserAgent),
		LoginSource: source,
		RequestID:   strings.TrimSpace(input.RequestID),
		CreatedAt:   time.Now().UTC(),
	})
}

// ListByUser lists the caller's own attempts
func (s *LoginAttemptService) ListByUser(userID string, page, pageSize int) ([]models.LoginAttempt, int64, error) {
	if s == nil || s.repo == nil || strings.TrimSpace(userID) == "" {
		return []models.LoginAttempt{}, 0, nil
	}
	page, pageSize = normalizePage(page, pageSize)
	return s.repo.ListByUser(repository.LoginAttemptListFilter{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
}

// PurgeOlderThan removes attempts older than retention
func (s *LoginAttemptService) PurgeOlderThan(retention time.Duration, now time.Time) (int64, error) {
	if s == nil || s.repo == nil || retention <= 0 {
		return 0, nil
	}
	return s.repo.DeleteBefore(now.Add(-retention))
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

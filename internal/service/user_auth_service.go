package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rpg-companion/api/internal/config"
	"github.com/rpg-companion/api/internal/logger"
	"github.com/rpg-companion/api/internal/models"
	"github.com/rpg-companion/api/internal/queue"
	"github.com/rpg-companion/api/internal/repository"

	"gorm.io/gorm"
)

const (
	resetTokenBytes      = 32
	defaultResetTokenTTL = time.Hour
)

// UserAuthService account registration, login and password reset
type UserAuthService struct {
	cfg         config.AuthConfig
	userRepo    repository.UserRepository
	hasher      *PasswordHasher
	tokens      *TokenIssuer
	queueClient *queue.Client
	notifier    ResetNotifier
	now         func() time.Time
}

// NewUserAuthService creates the user auth service
func NewUserAuthService(cfg config.AuthConfig, userRepo repository.UserRepository, hasher *PasswordHasher, tokens *TokenIssuer, queueClient *queue.Client, notifier ResetNotifier) *UserAuthService {
	if hasher == nil {
		hasher = NewPasswordHasher()
	}
	return &UserAuthService{
		cfg:         cfg,
		userRepo:    userRepo,
		hasher:      hasher,
		tokens:      tokens,
		queueClient: queueClient,
		notifier:    notifier,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// RegisterInput register request
type RegisterInput struct {
	Name     string `json:"nome" validate:"required,min=2,max=100"`
	Nickname string `json:"nickname" validate:"required,min=3,max=50,excludes=@"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"senha" validate:"required,min=6,password"`
}

// LoginInput login request
type LoginInput struct {
	EmailOrNickname string `json:"emailOrNickname" validate:"required"`
	Password        string `json:"senha" validate:"required"`
}

// ForgotPasswordInput forgot password request
type ForgotPasswordInput struct {
	EmailOrNickname string `json:"emailOrNickname" validate:"required"`
	// ExposeResetToken returns the raw token and link to the caller
	ExposeResetToken bool `json:"-"`
}

// ResetPasswordInput reset password request
type ResetPasswordInput struct {
	Token           string `json:"token" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,password"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=NewPassword"`
}

// AuthResult authenticated user and session token
type AuthResult struct {
	User      *models.User
	Token     string
	ExpiresAt time.Time
}

// ForgotPasswordResult holds the raw token only when exposure was requested
// and the account exists.
type ForgotPasswordResult struct {
	ResetToken string
	ResetURL   string
}

// Register creates an account and signs it in
func (s *UserAuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Nickname = strings.TrimSpace(input.Nickname)
	input.Email = strings.TrimSpace(input.Email)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	exist, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrEmailExists
	}
	exist, err = s.userRepo.GetByNickname(input.Nickname)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrNicknameExists
	}

	hashed, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &models.User{
		DisplayName:  input.Name,
		Nickname:     input.Nickname,
		Email:        input.Email,
		PasswordHash: hashed,
		LastLoginAt:  &now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, s.resolveDuplicate(input.Email)
		}
		return nil, err
	}

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	logger.Infow("user_registered", "user_id", user.ID, "nickname", user.Nickname)
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// resolveDuplicate maps a unique violation lost to a concurrent writer
func (s *UserAuthService) resolveDuplicate(email string) error {
	exist, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if exist != nil {
		return ErrEmailExists
	}
	return ErrNicknameExists
}

// Login authenticates by email or nickname
func (s *UserAuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.EmailOrNickname = strings.TrimSpace(input.EmailOrNickname)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	user, err := s.findByIdentifier(ParseIdentifier(input.EmailOrNickname))
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.hasher.VerifyAbsent(input.Password)
		return nil, ErrInvalidCredentials
	}
	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	if err := s.userRepo.TouchLastLogin(user.ID, now); err != nil {
		return nil, err
	}
	user.LastLoginAt = &now
	user.UpdatedAt = now

	token, expiresAt, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

// ForgotPassword issues a reset token when the account exists. The outcome
// is indistinguishable to the caller unless ExposeResetToken is set.
func (s *UserAuthService) ForgotPassword(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordResult, error) {
	input.EmailOrNickname = strings.TrimSpace(input.EmailOrNickname)
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	result := &ForgotPasswordResult{}
	user, err := s.findByIdentifier(ParseIdentifier(input.EmailOrNickname))
	if err != nil {
		return nil, err
	}
	if user == nil {
		logger.Debugw("password_reset_unknown_account")
		return result, nil
	}

	rawToken, err := generateResetToken()
	if err != nil {
		return nil, err
	}
	expiresAt := s.now().Add(s.resetTokenTTL())
	if err := s.userRepo.SetResetToken(user.ID, digestResetToken(rawToken), expiresAt); err != nil {
		return nil, err
	}
	resetURL := s.buildResetURL(rawToken)
	logger.Infow("reset_token_issued", "user_id", user.ID, "expires_at", expiresAt)

	s.dispatchResetNotification(ctx, queue.PasswordResetPayload{
		UserID:    user.ID,
		Nickname:  user.Nickname,
		Email:     user.Email,
		ResetURL:  resetURL,
		ExpiresAt: expiresAt,
	})

	if input.ExposeResetToken {
		result.ResetToken = rawToken
		result.ResetURL = resetURL
	}
	return result, nil
}

// ResetPassword replaces the password of the account holding token
func (s *UserAuthService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	input.Token = strings.TrimSpace(input.Token)
	if err := validateStruct(input); err != nil {
		return err
	}

	hashed, err := s.hasher.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	ok, err := s.userRepo.ConsumeResetToken(digestResetToken(input.Token), hashed, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return ErrResetTokenInvalid
	}
	logger.Infow("password_reset_completed")
	return nil
}

// GetUserByID loads the authenticated user
func (s *UserAuthService) GetUserByID(id string) (*models.User, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrNotFound
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *UserAuthService) findByIdentifier(id Identifier) (*models.User, error) {
	switch id.Kind {
	case IdentifierEmail:
		return s.userRepo.GetByEmail(id.Value)
	case IdentifierNickname:
		return s.userRepo.GetByNickname(id.Value)
	default:
		return nil, fmt.Errorf("unsupported identifier kind %d", id.Kind)
	}
}

func (s *UserAuthService) dispatchResetNotification(ctx context.Context, payload queue.PasswordResetPayload) {
	if s.queueClient.Enabled() {
		if err := s.queueClient.EnqueuePasswordReset(payload); err != nil {
			logger.Warnw("password_reset_enqueue_failed", "user_id", payload.UserID, "error", err)
		}
		return
	}
	if s.notifier == nil {
		return
	}
	if err := s.notifier.NotifyPasswordReset(ctx, payload); err != nil {
		logger.Warnw("password_reset_notify_failed", "user_id", payload.UserID, "error", err)
	}
}

func (s *UserAuthService) resetTokenTTL() time.Duration {
	if s.cfg.ResetTokenTTLMinutes > 0 {
		return time.Duration(s.cfg.ResetTokenTTLMinutes) * time.Minute
	}
	return defaultResetTokenTTL
}

func (s *UserAuthService) buildResetURL(rawToken string) string {
	base := strings.TrimSpace(s.cfg.ResetURL)
	if base == "" {
		return ""
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return ""
	}
	query := parsed.Query()
	query.Set("token", rawToken)
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// digestResetToken is what gets stored; the raw token only leaves the process
// through the notification and the optional response.
func digestResetToken(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

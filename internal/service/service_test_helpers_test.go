package service

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/rpg-companion/api/internal/config"
	"github.com/rpg-companion/api/internal/models"
	"github.com/rpg-companion/api/internal/queue"
	"github.com/rpg-companion/api/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := models.Open("sqlite", dsn, logger.Silent)
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

type recordingNotifier struct {
	mu       sync.Mutex
	payloads []queue.PasswordResetPayload
}

func (n *recordingNotifier) NotifyPasswordReset(_ context.Context, payload queue.PasswordResetPayload) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.payloads = append(n.payloads, payload)
	return nil
}

func (n *recordingNotifier) last(t *testing.T) queue.PasswordResetPayload {
	t.Helper()
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.payloads) == 0 {
		t.Fatalf("expected a reset notification")
	}
	return n.payloads[len(n.payloads)-1]
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.payloads)
}

func tokenFromResetURL(t *testing.T, raw string) string {
	t.Helper()
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse reset url failed: %v", err)
	}
	token := parsed.Query().Get("token")
	if token == "" {
		t.Fatalf("reset url carries no token: %s", raw)
	}
	return token
}

func newTestAuthService(t *testing.T) (*UserAuthService, *recordingNotifier, *gorm.DB) {
	t.Helper()
	db := setupServiceTestDB(t, "auth_service")
	queueClient, _ := queue.NewClient(nil)
	notifier := &recordingNotifier{}
	svc := NewUserAuthService(
		config.AuthConfig{ResetURL: "http://localhost:5173/reset-password", ResetTokenTTLMinutes: 60},
		repository.NewUserRepository(db),
		NewPasswordHasher(WithHashCost(bcrypt.MinCost)),
		NewTokenIssuer(config.JWTConfig{SecretKey: "test-secret-key-with-enough-length", ExpireHours: 168}),
		queueClient,
		notifier,
	)
	return svc, notifier, db
}

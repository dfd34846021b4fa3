package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rpg-companion/api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRepositoryTestDB(t *testing.T, name string) *gorm.DB {
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

func createTestUser(t *testing.T, repo *GormUserRepository, nickname, email string) *models.User {
	t.Helper()
	user := &models.User{
		DisplayName:  "Aventureiro",
		Nickname:     nickname,
		Email:        email,
		PasswordHash: "hash",
	}
	if err := repo.Create(user); err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func TestUserRepositoryLookups(t *testing.T) {
	repo := NewUserRepository(setupRepositoryTestDB(t, "user_repo_lookup"))
	user := createTestUser(t, repo, "gandalf", "gandalf@example.com")
	if user.ID == "" {
		t.Fatalf("expected generated id")
	}

	byEmail, err := repo.GetByEmail("gandalf@example.com")
	if err != nil || byEmail == nil || byEmail.ID != user.ID {
		t.Fatalf("get by email failed: %+v %v", byEmail, err)
	}
	byNickname, err := repo.GetByNickname("gandalf")
	if err != nil || byNickname == nil || byNickname.ID != user.ID {
		t.Fatalf("get by nickname failed: %+v %v", byNickname, err)
	}
	byID, err := repo.GetByID(user.ID)
	if err != nil || byID == nil || byID.Email != user.Email {
		t.Fatalf("get by id failed: %+v %v", byID, err)
	}

	missing, err := repo.GetByEmail("GANDALF@example.com")
	if err != nil {
		t.Fatalf("missing lookup returned error: %v", err)
	}
	if missing != nil {
		t.Fatalf("email lookup must be exact")
	}
}

func TestUserRepositoryCreateDuplicateIsTranslated(t *testing.T) {
	repo := NewUserRepository(setupRepositoryTestDB(t, "user_repo_dup"))
	createTestUser(t, repo, "frodo", "frodo@example.com")

	err := repo.Create(&models.User{DisplayName: "Outro", Nickname: "frodo", Email: "other@example.com", PasswordHash: "hash"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate nickname want ErrDuplicatedKey got %v", err)
	}
	err = repo.Create(&models.User{DisplayName: "Outro", Nickname: "sam", Email: "frodo@example.com", PasswordHash: "hash"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("duplicate email want ErrDuplicatedKey got %v", err)
	}
}

func TestUserRepositoryConsumeResetToken(t *testing.T) {
	repo := NewUserRepository(setupRepositoryTestDB(t, "user_repo_reset"))
	user := createTestUser(t, repo, "aragorn", "aragorn@example.com")
	now := time.Now().UTC()

	if err := repo.SetResetToken(user.ID, "digest-1", now.Add(time.Hour)); err != nil {
		t.Fatalf("set reset token failed: %v", err)
	}

	ok, err := repo.ConsumeResetToken("wrong", "new-hash", now)
	if err != nil || ok {
		t.Fatalf("wrong digest must not match: ok=%v err=%v", ok, err)
	}

	ok, err = repo.ConsumeResetToken("digest-1", "new-hash", now)
	if err != nil || !ok {
		t.Fatalf("consume failed: ok=%v err=%v", ok, err)
	}

	stored, err := repo.GetByID(user.ID)
	if err != nil || stored == nil {
		t.Fatalf("reload failed: %v", err)
	}
	if stored.PasswordHash != "new-hash" {
		t.Fatalf("password hash not replaced")
	}
	if stored.ResetToken != nil || stored.ResetTokenExpiry != nil {
		t.Fatalf("reset fields must be cleared together")
	}

	ok, err = repo.ConsumeResetToken("digest-1", "again", now)
	if err != nil || ok {
		t.Fatalf("token must be single use: ok=%v err=%v", ok, err)
	}
}

func TestUserRepositoryConsumeExpiredResetToken(t *testing.T) {
	repo := NewUserRepository(setupRepositoryTestDB(t, "user_repo_reset_expired"))
	user := createTestUser(t, repo, "boromir", "boromir@example.com")
	now := time.Now().UTC()

	if err := repo.SetResetToken(user.ID, "digest-2", now.Add(-time.Second)); err != nil {
		t.Fatalf("set reset token failed: %v", err)
	}
	ok, err := repo.ConsumeResetToken("digest-2", "new-hash", now)
	if err != nil || ok {
		t.Fatalf("expired token must not match: ok=%v err=%v", ok, err)
	}

	stored, _ := repo.GetByID(user.ID)
	if stored.PasswordHash != "hash" {
		t.Fatalf("password must stay unchanged")
	}
	if stored.ResetToken == nil {
		t.Fatalf("expired token stays stored until replaced")
	}
}

func TestUserRepositoryTouchLastLogin(t *testing.T) {
	repo := NewUserRepository(setupRepositoryTestDB(t, "user_repo_touch"))
	user := createTestUser(t, repo, "legolas", "legolas@example.com")
	at := time.Now().UTC().Truncate(time.Second)

	if err := repo.TouchLastLogin(user.ID, at); err != nil {
		t.Fatalf("touch failed: %v", err)
	}
	stored, _ := repo.GetByID(user.ID)
	if stored.LastLoginAt == nil || !stored.LastLoginAt.Equal(at) {
		t.Fatalf("last login want %v got %v", at, stored.LastLoginAt)
	}
}

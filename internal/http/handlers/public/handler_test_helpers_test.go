package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rpg-companion/api/internal/authz"
	"github.com/rpg-companion/api/internal/config"
	handlershared "github.com/rpg-companion/api/internal/http/handlers/shared"
	"github.com/rpg-companion/api/internal/models"
	"github.com/rpg-companion/api/internal/provider"
	"github.com/rpg-companion/api/internal/queue"
	"github.com/rpg-companion/api/internal/repository"
	"github.com/rpg-companion/api/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testUserHeader = "X-Test-User"

type testServer struct {
	t       *testing.T
	db      *gorm.DB
	cfg     *config.Config
	handler *Handler
	engine  *gin.Engine
}

func newTestServer(t *testing.T, mode string) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:public_handler_%d?mode=memory&cache=shared", time.Now().UnixNano())
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
	if err := models.SeedCatalog(db); err != nil {
		t.Fatalf("seed catalog failed: %v", err)
	}

	authzService, err := authz.NewService(db)
	if err != nil {
		t.Fatalf("init authz failed: %v", err)
	}
	if err := authzService.BootstrapOwnerPolicies(); err != nil {
		t.Fatalf("bootstrap policies failed: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: mode},
		JWT:    config.JWTConfig{SecretKey: "handler-test-secret-with-length", ExpireHours: 168},
		Auth: config.AuthConfig{
			ExposeResetToken:     mode != config.ModeRelease,
			ResetURL:             "http://localhost:5173/reset-password",
			ResetTokenTTLMinutes: 60,
		},
	}
	queueClient, _ := queue.NewClient(nil)
	c := &provider.Container{
		Config:           cfg,
		QueueClient:      queueClient,
		UserRepo:         repository.NewUserRepository(db),
		LoginAttemptRepo: repository.NewLoginAttemptRepository(db),
		CatalogRepo:      repository.NewCatalogRepository(db),
		CharacterRepo:    repository.NewCharacterRepository(db),
		AuthzService:     authzService,
		PasswordHasher:   service.NewPasswordHasher(service.WithHashCost(bcrypt.MinCost)),
		TokenIssuer:      service.NewTokenIssuer(cfg.JWT),
		ResetNotifier:    service.NewLogResetNotifier(false),
		CaptchaService:   service.NewCaptchaService(cfg.Captcha),
	}
	c.UserAuthService = service.NewUserAuthService(cfg.Auth, c.UserRepo, c.PasswordHasher, c.TokenIssuer, c.QueueClient, c.ResetNotifier)
	c.LoginAttemptService = service.NewLoginAttemptService(c.LoginAttemptRepo)
	c.CatalogService = service.NewCatalogService(c.CatalogRepo)
	c.CharacterService = service.NewCharacterService(c.CharacterRepo, c.CatalogRepo, c.AuthzService)

	h := New(c)
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		ctx.Set("request_id", "test-request")
		ctx.Next()
	})
	auth := r.Group("/auth")
	auth.POST("/register", h.UserRegister)
	auth.POST("/login", h.UserLogin)
	auth.POST("/forgot-password", h.UserForgotPassword)
	auth.POST("/reset-password", h.UserResetPassword)
	r.GET("/races", h.ListRaces)
	r.GET("/races/:id", h.GetRace)
	r.GET("/classes", h.ListClasses)
	r.GET("/classes/:id", h.GetClass)
	r.GET("/classes/:id/skills", h.ListClassSkills)
	r.GET("/skills", h.ListSkills)

	me := r.Group("")
	me.Use(func(ctx *gin.Context) {
		if uid := ctx.GetHeader(testUserHeader); uid != "" {
			ctx.Set(handlershared.ContextUserIDKey, uid)
		}
		ctx.Next()
	})
	me.GET("/me", h.GetCurrentUser)
	me.GET("/me/login-logs", h.GetMyLoginLogs)
	me.GET("/characters", h.ListMyCharacters)
	me.POST("/characters", h.CreateCharacter)
	me.GET("/characters/:id", h.GetCharacter)
	me.PUT("/characters/:id", h.UpdateCharacter)
	me.DELETE("/characters/:id", h.DeleteCharacter)

	return &testServer{t: t, db: db, cfg: cfg, handler: h, engine: r}
}

func (s *testServer) do(method, path string, body interface{}, userID string) (int, map[string]interface{}) {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			s.t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(testUserHeader, userID)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			s.t.Fatalf("decode response failed: %v body=%s", err, w.Body.String())
		}
	}
	return w.Code, decoded
}

func (s *testServer) register(nome, nickname, email, senha string) map[string]interface{} {
	s.t.Helper()
	code, body := s.do(http.MethodPost, "/auth/register", gin.H{
		"nome":     nome,
		"nickname": nickname,
		"email":    email,
		"senha":    senha,
	}, "")
	if code != http.StatusOK {
		s.t.Fatalf("register want 200 got %d body=%v", code, body)
	}
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		s.t.Fatalf("register response has no user: %v", body)
	}
	return user
}

package provider

import (
	"errors"

	"github.com/rpg-companion/api/internal/authz"
	"github.com/rpg-companion/api/internal/cache"
	"github.com/rpg-companion/api/internal/config"
	"github.com/rpg-companion/api/internal/logger"
	"github.com/rpg-companion/api/internal/models"
	"github.com/rpg-companion/api/internal/queue"
	"github.com/rpg-companion/api/internal/repository"
	"github.com/rpg-companion/api/internal/service"
)

// Container dependency container shared by handlers and the worker
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo         repository.UserRepository
	LoginAttemptRepo repository.LoginAttemptRepository
	CatalogRepo      repository.CatalogRepository
	CharacterRepo    repository.CharacterRepository

	// Services
	AuthzService        *authz.Service
	PasswordHasher      *service.PasswordHasher
	TokenIssuer         *service.TokenIssuer
	ResetNotifier       service.ResetNotifier
	UserAuthService     *service.UserAuthService
	CaptchaService      *service.CaptchaService
	LoginAttemptService *service.LoginAttemptService
	CatalogService      *service.CatalogService
	CharacterService    *service.CharacterService
}

// NewContainer wires repositories and services on top of models.DB
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.LoginAttemptRepo = repository.NewLoginAttemptRepository(db)
	c.CatalogRepo = repository.NewCatalogRepository(db)
	c.CharacterRepo = repository.NewCharacterRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapOwnerPolicies(); err != nil {
		logger.Errorw("provider_bootstrap_owner_policies_failed", "error", err)
		panic(err)
	}

	c.PasswordHasher = service.NewPasswordHasher()
	c.TokenIssuer = service.NewTokenIssuer(c.Config.JWT)
	c.ResetNotifier = service.NewLogResetNotifier(!c.Config.Server.IsRelease())
	c.UserAuthService = service.NewUserAuthService(c.Config.Auth, c.UserRepo, c.PasswordHasher, c.TokenIssuer, c.QueueClient, c.ResetNotifier)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.LoginAttemptService = service.NewLoginAttemptService(c.LoginAttemptRepo)
	c.CatalogService = service.NewCatalogService(c.CatalogRepo)
	c.CharacterService = service.NewCharacterService(c.CharacterRepo, c.CatalogRepo, c.AuthzService)
}

// CheckSessionKey refuses the built-in session signing key in release mode
// and warns about it otherwise.
func (c *Container) CheckSessionKey() error {
	if c == nil || c.TokenIssuer == nil || !c.TokenIssuer.UsingFallbackKey() {
		return nil
	}
	if c.Config != nil && c.Config.Server.IsRelease() {
		return errors.New("jwt.secret is not set; release mode cannot sign sessions with the built-in key")
	}
	logger.Warnw("session_fallback_key_in_use", "mode", "debug")
	return nil
}

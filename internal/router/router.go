package router

import (
	"github.com/rpg-companion/api/internal/cache"
	"github.com/rpg-companion/api/internal/config"
	publichandlers "github.com/rpg-companion/api/internal/http/handlers/public"
	"github.com/rpg-companion/api/internal/logger"
	"github.com/rpg-companion/api/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP engine
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.Z()
	r := gin.New()

	h := publichandlers.New(c)
	redisClient := cache.Client()
	loginRule := NewRateLimitRule(cfg.Redis.Prefix, "login", cfg.Security.LoginRateLimit)
	forgotRule := NewRateLimitRule(cfg.Redis.Prefix, "forgot_password", cfg.Security.ForgotRateLimit)

	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(RecoveryMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/captcha", h.GetImageCaptcha)
		}

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", h.UserRegister)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("emailOrNickname")), h.UserLogin)
			auth.POST("/forgot-password", RateLimitMiddleware(redisClient, forgotRule, KeyByIP), h.UserForgotPassword)
			auth.POST("/reset-password", h.UserResetPassword)
		}

		// game catalog, read-only
		apiV1.GET("/races", h.ListRaces)
		apiV1.GET("/races/:id", h.GetRace)
		apiV1.GET("/classes", h.ListClasses)
		apiV1.GET("/classes/:id", h.GetClass)
		apiV1.GET("/classes/:id/skills", h.ListClassSkills)
		apiV1.GET("/skills", h.ListSkills)

		authorized := apiV1.Group("")
		authorized.Use(UserJWTAuthMiddleware(c.TokenIssuer))
		{
			authorized.GET("/me", h.GetCurrentUser)
			authorized.GET("/me/login-logs", h.GetMyLoginLogs)

			authorized.GET("/characters", h.ListMyCharacters)
			authorized.POST("/characters", h.CreateCharacter)
			authorized.GET("/characters/:id", h.GetCharacter)
			authorized.PUT("/characters/:id", h.UpdateCharacter)
			authorized.DELETE("/characters/:id", h.DeleteCharacter)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}

package service

import (
	"strings"

	"github.com/rpg-companion/api/internal/config"
	"github.com/rpg-companion/api/internal/constants"
)

// CaptchaSceneSetting per-endpoint captcha switches
type CaptchaSceneSetting struct {
	Login          bool `json:"login"`
	ForgotPassword bool `json:"forgotPassword"`
}

// CaptchaImageSetting image captcha settings
type CaptchaImageSetting struct {
	Length        int `json:"-"`
	Width         int `json:"-"`
	Height        int `json:"-"`
	NoiseCount    int `json:"-"`
	ShowLine      int `json:"-"`
	ExpireSeconds int `json:"-"`
	MaxStore      int `json:"-"`
}

// CaptchaSetting normalized captcha settings
type CaptchaSetting struct {
	Provider string              `json:"provider"`
	Scenes   CaptchaSceneSetting `json:"scenes"`
	Image    CaptchaImageSetting `json:"-"`
}

// IsSceneEnabled reports whether scene requires a captcha
func (s CaptchaSetting) IsSceneEnabled(scene string) bool {
	if s.Provider == constants.CaptchaProviderNone {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scene)) {
	case constants.CaptchaSceneLogin:
		return s.Scenes.Login
	case constants.CaptchaSceneForgotPassword:
		return s.Scenes.ForgotPassword
	default:
		return false
	}
}

// NormalizeCaptchaSetting converts config into a usable setting, clamping
// image parameters to sane bounds.
func NormalizeCaptchaSetting(cfg config.CaptchaConfig) CaptchaSetting {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider != constants.CaptchaProviderImage {
		provider = constants.CaptchaProviderNone
	}
	return CaptchaSetting{
		Provider: provider,
		Scenes: CaptchaSceneSetting{
			Login:          cfg.Scenes.Login,
			ForgotPassword: cfg.Scenes.ForgotPassword,
		},
		Image: CaptchaImageSetting{
			Length:        clampInt(cfg.Image.Length, 4, 8, 5),
			Width:         clampInt(cfg.Image.Width, 80, 600, 240),
			Height:        clampInt(cfg.Image.Height, 30, 200, 80),
			NoiseCount:    clampInt(cfg.Image.NoiseCount, 0, 20, 2),
			ShowLine:      clampInt(cfg.Image.ShowLine, 0, 20, 2),
			ExpireSeconds: clampInt(cfg.Image.ExpireSeconds, 30, 3600, 300),
			MaxStore:      clampInt(cfg.Image.MaxStore, 100, 100000, 10240),
		},
	}
}

func clampInt(value, minValue, maxValue, fallback int) int {
	if value == 0 {
		return fallback
	}
	if value < minValue {
		return minValue
	}
	if value > maxValue {
		return maxValue
	}
	return value
}

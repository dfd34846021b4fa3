package service

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrEmailExists        = errors.New("email in use")
	ErrNicknameExists     = errors.New("nickname in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")

	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")

	ErrRaceNotFound      = errors.New("race not found")
	ErrClassNotFound     = errors.New("class not found")
	ErrSkillNotFound     = errors.New("skill not found")
	ErrSkillInvalid      = errors.New("skill not available for class or level")
	ErrCharacterNotFound = errors.New("character not found")
)

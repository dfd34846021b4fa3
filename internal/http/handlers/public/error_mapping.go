package public

import (
	"errors"

	handlershared "github.com/rpg-companion/api/internal/http/handlers/shared"
	"github.com/rpg-companion/api/internal/http/response"
	"github.com/rpg-companion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError maps a service error to a response status and message.
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

// respondWithMappedError answers validation errors with their field message,
// then walks rules, then falls back. Only the fallback logs the cause.
func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	if handlershared.RespondValidationError(c, err) {
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var captchaErrorRules = []mappedHandlerError{
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, key: "error.captcha_required"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, key: "error.captcha_invalid"},
}

var registerErrorRules = []mappedHandlerError{
	{target: service.ErrEmailExists, code: response.CodeBadRequest, key: "error.email_exists"},
	{target: service.ErrNicknameExists, code: response.CodeBadRequest, key: "error.nickname_exists"},
}

var loginErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.login_invalid"},
}

var resetPasswordErrorRules = []mappedHandlerError{
	{target: service.ErrResetTokenInvalid, code: response.CodeBadRequest, key: "error.reset_token_invalid"},
}

var catalogErrorRules = []mappedHandlerError{
	{target: service.ErrRaceNotFound, code: response.CodeNotFound, key: "error.race_not_found"},
	{target: service.ErrClassNotFound, code: response.CodeNotFound, key: "error.class_not_found"},
}

var characterErrorRules = []mappedHandlerError{
	{target: service.ErrCharacterNotFound, code: response.CodeNotFound, key: "error.character_not_found"},
}

// catalog references inside a character payload are client errors
var characterCatalogErrorRules = []mappedHandlerError{
	{target: service.ErrRaceNotFound, code: response.CodeBadRequest, key: "error.race_not_found"},
	{target: service.ErrClassNotFound, code: response.CodeBadRequest, key: "error.class_not_found"},
	{target: service.ErrSkillNotFound, code: response.CodeBadRequest, key: "error.skill_not_found"},
	{target: service.ErrSkillInvalid, code: response.CodeBadRequest, key: "error.skill_invalid"},
}

func respondCaptchaError(c *gin.Context, err error) {
	respondWithMappedError(c, err, captchaErrorRules, response.CodeInternal, "error.captcha_config_invalid")
}

func respondRegisterError(c *gin.Context, err error) {
	respondWithMappedError(c, err, registerErrorRules, response.CodeInternal, "error.internal")
}

func respondLoginError(c *gin.Context, err error) {
	respondWithMappedError(c, err, loginErrorRules, response.CodeInternal, "error.internal")
}

func respondForgotPasswordError(c *gin.Context, err error) {
	respondWithMappedError(c, err, nil, response.CodeInternal, "error.internal")
}

func respondResetPasswordError(c *gin.Context, err error) {
	respondWithMappedError(c, err, resetPasswordErrorRules, response.CodeInternal, "error.internal")
}

func respondCatalogError(c *gin.Context, err error) {
	respondWithMappedError(c, err, catalogErrorRules, response.CodeInternal, "error.internal")
}

func respondCharacterError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(characterErrorRules, characterCatalogErrorRules), response.CodeInternal, "error.internal")
}

package public

import (
	"errors"
	"strings"

	"github.com/rpg-companion/api/internal/constants"
	handlershared "github.com/rpg-companion/api/internal/http/handlers/shared"
	"github.com/rpg-companion/api/internal/http/response"
	"github.com/rpg-companion/api/internal/i18n"
	"github.com/rpg-companion/api/internal/service"

	"github.com/gin-gonic/gin"
)

// UserLoginRequest login body
type UserLoginRequest struct {
	service.LoginInput
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captchaPayload"`
}

// UserForgotPasswordRequest forgot password body
type UserForgotPasswordRequest struct {
	EmailOrNickname string                              `json:"emailOrNickname"`
	CaptchaPayload  handlershared.CaptchaPayloadRequest `json:"captchaPayload"`
}

// UserRegister creates an account and returns a session
func (h *Handler) UserRegister(c *gin.Context) {
	var req service.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	result, err := h.UserAuthService.Register(c.Request.Context(), req)
	if err != nil {
		respondRegisterError(c, err)
		return
	}

	response.Message(c, i18n.T(i18n.ResolveLocale(c), "msg.register_success"), gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// UserLogin authenticates by email or nickname
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.recordUserLogin(c, "", "", constants.LoginLogStatusFailed, constants.LoginLogFailReasonBadRequest)
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if h.CaptchaService != nil {
		if captchaErr := h.CaptchaService.Verify(constants.CaptchaSceneLogin, req.CaptchaPayload.ToServicePayload()); captchaErr != nil {
			h.recordUserLogin(c, req.EmailOrNickname, "", constants.LoginLogStatusFailed, captchaFailReason(captchaErr))
			respondCaptchaError(c, captchaErr)
			return
		}
	}

	result, err := h.UserAuthService.Login(c.Request.Context(), req.LoginInput)
	if err != nil {
		h.recordUserLogin(c, req.EmailOrNickname, "", constants.LoginLogStatusFailed, loginFailReason(err))
		respondLoginError(c, err)
		return
	}

	h.recordUserLogin(c, req.EmailOrNickname, result.User.ID, constants.LoginLogStatusSuccess, "")
	response.Message(c, i18n.T(i18n.ResolveLocale(c), "msg.login_success"), gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// UserForgotPassword issues a reset token. The reply is the same whether the
// account exists or not.
func (h *Handler) UserForgotPassword(c *gin.Context) {
	var req UserForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if h.CaptchaService != nil {
		if captchaErr := h.CaptchaService.Verify(constants.CaptchaSceneForgotPassword, req.CaptchaPayload.ToServicePayload()); captchaErr != nil {
			respondCaptchaError(c, captchaErr)
			return
		}
	}

	result, err := h.UserAuthService.ForgotPassword(c.Request.Context(), service.ForgotPasswordInput{
		EmailOrNickname:  req.EmailOrNickname,
		ExposeResetToken: h.exposeResetToken(),
	})
	if err != nil {
		respondForgotPasswordError(c, err)
		return
	}

	extra := gin.H{}
	if result != nil && result.ResetToken != "" {
		extra["resetToken"] = result.ResetToken
		if result.ResetURL != "" {
			extra["resetUrl"] = result.ResetURL
		}
	}
	response.Message(c, i18n.T(i18n.ResolveLocale(c), "msg.forgot_password_sent"), extra)
}

// UserResetPassword sets a new password from a reset token
func (h *Handler) UserResetPassword(c *gin.Context) {
	var req service.ResetPasswordInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	if err := h.UserAuthService.ResetPassword(c.Request.Context(), req); err != nil {
		respondResetPasswordError(c, err)
		return
	}

	response.Message(c, i18n.T(i18n.ResolveLocale(c), "msg.reset_password_success"), nil)
}

// GetCurrentUser returns the authenticated user
func (h *Handler) GetCurrentUser(c *gin.Context) {
	id, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.UserAuthService.GetUserByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"user": user})
}

func (h *Handler) recordUserLogin(c *gin.Context, identifier, userID, status, failReason string) {
	if h == nil || h.LoginAttemptService == nil {
		return
	}
	err := h.LoginAttemptService.Record(service.RecordLoginInput{
		UserID:      userID,
		Identifier:  identifier,
		Status:      status,
		FailReason:  failReason,
		ClientIP:    c.ClientIP(),
		UserAgent:   c.GetHeader("User-Agent"),
		LoginSource: constants.LoginLogSourceWeb,
		RequestID:   strings.TrimSpace(requestID(c)),
	})
	if err != nil {
		requestLog(c).Warnw("login_attempt_record_failed", "error", err)
	}
}

func captchaFailReason(err error) string {
	switch {
	case errors.Is(err, service.ErrCaptchaRequired):
		return constants.LoginLogFailReasonCaptchaRequired
	case errors.Is(err, service.ErrCaptchaInvalid):
		return constants.LoginLogFailReasonCaptchaInvalid
	default:
		return constants.LoginLogFailReasonInternalError
	}
}

func loginFailReason(err error) string {
	switch {
	case errors.Is(err, service.ErrValidation):
		return constants.LoginLogFailReasonValidation
	case errors.Is(err, service.ErrInvalidCredentials):
		return constants.LoginLogFailReasonInvalidCredentials
	default:
		return constants.LoginLogFailReasonInternalError
	}
}

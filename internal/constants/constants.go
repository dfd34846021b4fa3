package constants

// Login audit status
const (
	LoginLogStatusSuccess = "success"
	LoginLogStatusFailed  = "failed"
)

// Login audit failure reasons
const (
	LoginLogFailReasonBadRequest         = "bad_request"
	LoginLogFailReasonValidation         = "validation"
	LoginLogFailReasonInvalidCredentials = "invalid_credentials"
	LoginLogFailReasonCaptchaRequired    = "captcha_required"
	LoginLogFailReasonCaptchaInvalid     = "captcha_invalid"
	LoginLogFailReasonInternalError      = "internal_error"
)

// Login audit sources
const (
	LoginLogSourceWeb = "web"
)

// Captcha providers
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// Captcha scenes
const (
	CaptchaSceneLogin          = "login"
	CaptchaSceneForgotPassword = "forgot_password"
)

// Queue names
const (
	QueueDefault = "default"
)

// Task types
const (
	TaskPasswordResetNotify = "user:password_reset"
)

// Character owner actions
const (
	CharacterActionRead   = "read"
	CharacterActionUpdate = "update"
	CharacterActionDelete = "delete"
)

// Character level bounds
const (
	CharacterMinLevel = 1
	CharacterMaxLevel = 20
)

package i18n

var catalogs = map[string]map[string]string{
	LocaleEN: {
		"msg.register_success":       "user registered successfully",
		"msg.login_success":          "login successful",
		"msg.forgot_password_sent":   "if this account exists, instructions were sent",
		"msg.reset_password_success": "password reset successfully",
		"msg.character_created":      "character created",
		"msg.character_updated":      "character updated",
		"msg.character_deleted":      "character deleted",

		"error.bad_request":            "invalid request body",
		"error.internal":               "internal server error",
		"error.unauthorized":           "unauthorized",
		"error.auth_header_missing":    "authorization header missing",
		"error.auth_header_invalid":    "authorization header malformed",
		"error.token_invalid":          "invalid or expired session",
		"error.validation_required":    "%s is required",
		"error.validation_min_length":  "%s must be at least %s characters",
		"error.validation_max_length":  "%s must be at most %s characters",
		"error.validation_email":       "%s must be a valid email address",
		"error.validation_range":       "%s must be between %d and %d",
		"error.validation_invalid":     "%s is invalid",
		"error.validation_excludes":    "%s must not contain %s",
		"error.passwords_mismatch":     "passwords do not match",
		"error.email_exists":           "email in use",
		"error.nickname_exists":        "nickname in use",
		"error.login_invalid":          "email/nickname or password incorrect",
		"error.reset_token_invalid":    "invalid or expired token",
		"error.user_not_found":         "user not found",
		"error.rate_limited":           "too many requests, try again in %d seconds",
		"error.rate_limit_unavailable": "rate limiter unavailable",
		"error.captcha_required":       "captcha required",
		"error.captcha_invalid":        "captcha invalid",
		"error.captcha_config_invalid": "captcha is not configured",
		"error.race_not_found":         "race not found",
		"error.class_not_found":        "class not found",
		"error.skill_not_found":        "skill not found",
		"error.skill_invalid":          "skill is not available for this class or level",
		"error.character_not_found":    "character not found",
	},
	LocalePT: {
		"msg.register_success":       "usuário cadastrado com sucesso",
		"msg.login_success":          "login realizado com sucesso",
		"msg.forgot_password_sent":   "se esta conta existir, as instruções foram enviadas",
		"msg.reset_password_success": "senha redefinida com sucesso",
		"msg.character_created":      "personagem criado",
		"msg.character_updated":      "personagem atualizado",
		"msg.character_deleted":      "personagem removido",

		"error.bad_request":            "corpo da requisição inválido",
		"error.internal":               "erro interno do servidor",
		"error.unauthorized":           "não autorizado",
		"error.auth_header_missing":    "cabeçalho de autorização ausente",
		"error.auth_header_invalid":    "cabeçalho de autorização malformado",
		"error.token_invalid":          "sessão inválida ou expirada",
		"error.validation_required":    "%s é obrigatório",
		"error.validation_min_length":  "%s deve ter pelo menos %s caracteres",
		"error.validation_max_length":  "%s deve ter no máximo %s caracteres",
		"error.validation_email":       "%s deve ser um email válido",
		"error.validation_range":       "%s deve estar entre %d e %d",
		"error.validation_invalid":     "%s é inválido",
		"error.validation_excludes":    "%s não pode conter %s",
		"error.passwords_mismatch":     "as senhas não coincidem",
		"error.email_exists":           "email já está em uso",
		"error.nickname_exists":        "nickname já está em uso",
		"error.login_invalid":          "email/nickname ou senha incorretos",
		"error.reset_token_invalid":    "token inválido ou expirado",
		"error.user_not_found":         "usuário não encontrado",
		"error.rate_limited":           "muitas requisições, tente novamente em %d segundos",
		"error.rate_limit_unavailable": "limitador de requisições indisponível",
		"error.captcha_required":       "captcha obrigatório",
		"error.captcha_invalid":        "captcha inválido",
		"error.captcha_config_invalid": "captcha não configurado",
		"error.race_not_found":         "raça não encontrada",
		"error.class_not_found":        "classe não encontrada",
		"error.skill_not_found":        "habilidade não encontrada",
		"error.skill_invalid":          "habilidade indisponível para esta classe ou nível",
		"error.character_not_found":    "personagem não encontrado",
	},
}

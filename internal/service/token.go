package service

import (
	"errors"
	"strings"
	"time"

	"github.com/rpg-companion/api/internal/config"
	"github.com/rpg-companion/api/internal/logger"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL session token lifetime
const DefaultSessionTTL = 7 * 24 * time.Hour

// FallbackSigningKey is used when jwt.secret is empty. Local use only.
const FallbackSigningKey = "rpg-companion-insecure-local-key"

// SessionClaims session token claims
type SessionClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and verifies HS256 session tokens
type TokenIssuer struct {
	secret   []byte
	ttl      time.Duration
	fallback bool
	now      func() time.Time
}

// NewTokenIssuer creates a token issuer from the jwt config section
func NewTokenIssuer(cfg config.JWTConfig) *TokenIssuer {
	secret := strings.TrimSpace(cfg.SecretKey)
	fallback := secret == ""
	if fallback {
		secret = FallbackSigningKey
		logger.Warnw("session_signing_key_fallback",
			"hint", "set jwt.secret before exposing this server",
		)
	}
	ttl := DefaultSessionTTL
	if cfg.ExpireHours > 0 {
		ttl = time.Duration(cfg.ExpireHours) * time.Hour
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		ttl:      ttl,
		fallback: fallback,
		now:      time.Now,
	}
}

// UsingFallbackKey reports whether tokens are signed with the built-in key
func (t *TokenIssuer) UsingFallbackKey() bool {
	return t != nil && t.fallback
}

// Issue signs a token for userID
func (t *TokenIssuer) Issue(userID string) (string, time.Time, error) {
	now := t.now()
	expiresAt := now.Add(t.ttl)
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Verify returns the user id carried by a valid token. Expired, forged and
// malformed tokens all return false.
func (t *TokenIssuer) Verify(tokenString string) (string, bool) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	claims := &SessionClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			logger.Debugw("session_token_expired")
		} else {
			logger.Debugw("session_token_rejected", "error", err)
		}
		return "", false
	}
	if !token.Valid || strings.TrimSpace(claims.UserID) == "" {
		return "", false
	}
	return claims.UserID, true
}

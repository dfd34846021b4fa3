package service

import (
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher bcrypt password hashing
type PasswordHasher struct {
	cost int

	dummyOnce sync.Once
	dummy     []byte
}

// PasswordHasherOption configures a PasswordHasher
type PasswordHasherOption func(*PasswordHasher)

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func WithHashCost(cost int) PasswordHasherOption {
	return func(h *PasswordHasher) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			h.cost = cost
		}
	}
}

// NewPasswordHasher creates a hasher with bcrypt.DefaultCost
func NewPasswordHasher(opts ...PasswordHasherOption) *PasswordHasher {
	h := &PasswordHasher{cost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Cost configured bcrypt cost
func (h *PasswordHasher) Cost() int {
	return h.cost
}

// Hash salts and hashes plaintext
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hashed. Malformed hashes never
// match, and neither does plaintext longer than bcrypt reads, since its
// 72-byte prefix alone would otherwise be enough.
func (h *PasswordHasher) Verify(plaintext, hashed string) bool {
	if len(plaintext) > maxPasswordBytes {
		h.VerifyAbsent(plaintext[:maxPasswordBytes])
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext)) == nil
}

// VerifyAbsent burns one comparison against a throwaway hash so unknown
// accounts take as long to reject as wrong passwords.
func (h *PasswordHasher) VerifyAbsent(plaintext string) {
	h.dummyOnce.Do(func() {
		h.dummy, _ = bcrypt.GenerateFromPassword([]byte("absent-account"), h.cost)
	})
	if len(plaintext) > maxPasswordBytes {
		plaintext = plaintext[:maxPasswordBytes]
	}
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(plaintext))
}

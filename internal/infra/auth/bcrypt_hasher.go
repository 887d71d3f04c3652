// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"unicode"
	"unicode/utf8"

	"makan/config"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxBytes is the input length bcrypt actually reads.
const bcryptMaxBytes = 72

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost   int
	policy config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from auth.bcryptCost and the passwordStrength policy.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	var policy config.PasswordStrengthConfig
	if cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &bcryptHasher{cost: cost, policy: policy}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength applies the configured policy. Only the minimum length is enforced by default.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := utf8.RuneCountInString(password)

	switch {
	case length < h.policy.MinLength:
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too short")
	case h.policy.MaxLength > 0 && length > h.policy.MaxLength, len(password) > bcryptMaxBytes:
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too long")
	case h.policy.RequireUppercase && !hasRune(password, unicode.IsUpper):
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain an uppercase letter")
	case h.policy.RequireLowercase && !hasRune(password, unicode.IsLower):
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain a lowercase letter")
	case h.policy.RequireNumbers && !hasRune(password, unicode.IsDigit):
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain a number")
	case h.policy.RequireSpecial && !hasRune(password, isSpecial):
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain a special character")
	}

	return nil
}

func hasRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}

	return false
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

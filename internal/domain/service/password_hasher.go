// Package service declares the ports the usecases call out through:
// hashing, tokens, storage, AI providers, mail and messaging.
package service

// PasswordHasher hashes account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that break the configured policy.
	ValidatePasswordStrength(password string) error
}

package auth

import (
	"strings"
	"testing"

	"makan/config"
	domainerrors "makan/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(policy config.PasswordStrengthConfig) *config.Config {
	return &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &policy,
	}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(config.PasswordStrengthConfig{MinLength: 6}))

	password := "nasi lemak"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("roti canai", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_UsesConfiguredCost(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(config.PasswordStrengthConfig{}))

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_DefaultCostWhenOutOfRange(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 99}})

	assert.Equal(t, bcrypt.DefaultCost, hasher.(*bcryptHasher).cost)
}

func TestBcryptHasher_ValidatePasswordStrength_MinimumOnly(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(config.PasswordStrengthConfig{MinLength: 6}))

	assert.NoError(t, hasher.ValidatePasswordStrength("abcdef"))
	assert.NoError(t, hasher.ValidatePasswordStrength("Pässphräse"))

	err := hasher.ValidatePasswordStrength("abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	assert.Contains(t, err.Error(), "too short")
}

func TestBcryptHasher_ValidatePasswordStrength_Policy(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(config.PasswordStrengthConfig{
		MinLength:        8,
		MaxLength:        20,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
		RequireSpecial:   true,
	}))

	assert.NoError(t, hasher.ValidatePasswordStrength("Sambal#2024"))

	testCases := []struct {
		password    string
		expectedErr string
	}{
		{"Ab1!", "too short"},
		{"Abcdefgh1!" + strings.Repeat("x", 20), "too long"},
		{"sambal#2024", "uppercase"},
		{"SAMBAL#2024", "lowercase"},
		{"Sambal#Hijau", "number"},
		{"Sambal2024", "special"},
	}

	for _, tc := range testCases {
		t.Run(tc.password, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tc.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestBcryptHasher_RejectsInputBeyondBcryptLimit(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(config.PasswordStrengthConfig{MinLength: 6}))

	err := hasher.ValidatePasswordStrength(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too long")
}

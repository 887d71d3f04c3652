// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"maps"
	"time"

	"makan/config"
	"makan/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
	defaultResetTTL   = 30 * time.Minute
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secrets map[string][]byte // Signing secret per token type.
	ttls    map[string]time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	resetSecret := cfg.SecretKey.Reset
	if resetSecret == "" {
		// Reset tokens must never validate as access tokens, so derive a distinct key.
		resetSecret = cfg.SecretKey.Access + ".reset"
	}

	accessTTL, refreshTTL, resetTTL := defaultAccessTTL, defaultRefreshTTL, defaultResetTTL
	if cfg.Auth != nil {
		accessTTL = durationOr(cfg.Auth.AccessTTL, accessTTL)
		refreshTTL = durationOr(cfg.Auth.RefreshTTL, refreshTTL)
		resetTTL = durationOr(cfg.Auth.ResetTTL, resetTTL)
	}

	return &jwtService{
		secrets: map[string][]byte{
			service.TokenTypeAccess:  []byte(cfg.SecretKey.Access),
			service.TokenTypeRefresh: []byte(cfg.SecretKey.Refresh),
			service.TokenTypeReset:   []byte(resetSecret),
		},
		ttls: map[string]time.Duration{
			service.TokenTypeAccess:  accessTTL,
			service.TokenTypeRefresh: refreshTTL,
			service.TokenTypeReset:   resetTTL,
		},
	}, nil
}

func durationOr(d, fallback time.Duration) time.Duration {
	if d > 0 {
		return d
	}

	return fallback
}

// GenerateTokens creates a new access token and refresh token for a given account and roles.
func (s *jwtService) GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error) {
	var roleClaims jwt.MapClaims
	// Only access tokens carry roles, for stateless authorization.
	if roles != nil {
		roleClaims = jwt.MapClaims{"roles": roles}
	}

	accessToken, err = s.generateToken(userID, service.TokenTypeAccess, roleClaims)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, service.TokenTypeRefresh, nil)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// GenerateResetToken creates a short-lived password reset token carrying the credential fingerprint.
func (s *jwtService) GenerateResetToken(userID uuid.UUID, fingerprint string) (string, error) {
	return s.generateToken(userID, service.TokenTypeReset, jwt.MapClaims{"fpr": fingerprint})
}

// ValidateToken parses a token signed with the secret of tokenType and returns its claims.
func (s *jwtService) ValidateToken(tokenString, tokenType string) (*service.Claims, error) {
	secret, ok := s.secrets[tokenType]
	if !ok {
		return nil, errors.Errorf("unknown token type %q", tokenType)
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, errors.Wrap(err, "failed to parse token structure")
		}

		return nil, errors.Wrap(err, "invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	claimedType, _ := mapClaims["type"].(string)
	if claimedType != tokenType {
		return nil, errors.Errorf("unexpected token type %q", claimedType)
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "missing subject")
	}
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject")
	}

	claims := &service.Claims{
		UserID: userID,
		Type:   claimedType,
	}
	if rawRoles, ok := mapClaims["roles"].([]any); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				claims.Roles = append(claims.Roles, role)
			}
		}
	}
	claims.Fingerprint, _ = mapClaims["fpr"].(string)
	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}
	if iat, err := mapClaims.GetIssuedAt(); err == nil {
		claims.IssuedAt = iat
	}
	claims.Subject = sub

	return claims, nil
}

// GetRefreshTokenDuration returns the configured duration for refresh tokens.
func (s *jwtService) GetRefreshTokenDuration() time.Duration {
	return s.ttls[service.TokenTypeRefresh]
}

// HashToken returns the hex SHA-256 digest stored in place of a raw refresh token.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// generateToken is a private helper to create a JWT with specific claims.
func (s *jwtService) generateToken(userID uuid.UUID, tokenType string, extra jwt.MapClaims) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttls[tokenType]).Unix(),
		"type": tokenType,
		"jti":  uuid.NewString(), // Two tokens minted in the same second must still differ.
	}
	maps.Copy(claims, extra)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secrets[tokenType])
}

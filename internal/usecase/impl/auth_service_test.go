package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"makan/config"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/domain/service"
	mockRepo "makan/internal/mocks/repository"
	mockService "makan/internal/mocks/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service          usecase.AuthUsecase
	txManager        *mockRepo.MockTransactionManager
	repoFactory      *mockRepo.MockRepositoryFactory
	accountRepo      *mockRepo.MockAccountRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockService.MockPasswordHasher
	tokenService     *mockService.MockTokenService
	mailer           *mockService.MockMailer
}

func createTestAuthService(t *testing.T, cfg *config.Config) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		repoFactory:      mockRepo.NewMockRepositoryFactory(t),
		accountRepo:      mockRepo.NewMockAccountRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockService.NewMockPasswordHasher(t),
		tokenService:     mockService.NewMockTokenService(t),
		mailer:           mockService.NewMockMailer(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:        fx.txManager,
		AccountRepo:      fx.accountRepo,
		AuthRepo:         fx.authRepo,
		RefreshTokenRepo: fx.refreshTokenRepo,
		Hasher:           fx.hasher,
		TokenService:     fx.tokenService,
		Mailer:           fx.mailer,
		Config:           cfg,
		Logger:           newDiscardLogger(),
	})

	return fx
}

// runInTransaction makes the transaction manager hand the repository factory mock to the callback.
func (fx authServiceFixtures) runInTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().AccountRepo().Return(fx.accountRepo).Maybe()
	fx.repoFactory.EXPECT().AuthRepo().Return(fx.authRepo).Maybe()
	fx.repoFactory.EXPECT().RefreshTokenRepo().Return(fx.refreshTokenRepo).Maybe()
}

func TestAuthService_RegisterPersonal_Success(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	fx.runInTransaction()
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret123").Return(nil)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "aisyah@example.com").Return(nil, repository.ErrAuthNotFound)
	fx.accountRepo.EXPECT().Create(ctx, mock.MatchedBy(func(account *entity.Account) bool {
		return account.Kind == entity.AccountKindPersonal &&
			account.Personal.FullName == "Aisyah" &&
			account.Email == "aisyah@example.com" &&
			account.ID != uuid.Nil
	})).Return(nil)
	fx.authRepo.EXPECT().CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.PasswordHash == "hashed" && auth.ProviderUserID == "aisyah@example.com"
	})).Return(nil)

	output, err := fx.service.RegisterPersonal(ctx, &usecase.RegisterPersonalInput{
		FullName: " Aisyah ",
		Email:    " Aisyah@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Aisyah", output.Account.DisplayName())
}

func TestAuthService_RegisterBusiness_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	fx.runInTransaction()
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret123").Return(nil)
	fx.hasher.EXPECT().Hash("secret123").Return("hashed", nil)
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "stall@example.com").
		Return(&entity.Authentication{ID: uuid.New()}, nil)

	output, err := fx.service.RegisterBusiness(ctx, &usecase.RegisterBusinessInput{
		StallName: "Ah Seng",
		Email:     "stall@example.com",
		Password:  "secret123",
	})
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))

	fx.hasher.EXPECT().ValidatePasswordStrength("123").Return(domainerrors.ErrPasswordStrength.WrapMessage("password is too short"))

	_, err := fx.service.RegisterPersonal(context.Background(), &usecase.RegisterPersonalInput{
		FullName: "Ravi",
		Email:    "ravi@example.com",
		Password: "123",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_Register_RequiresName(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))

	_, err := fx.service.RegisterBusiness(context.Background(), &usecase.RegisterBusinessInput{
		StallName: "  ",
		Email:     "stall@example.com",
		Password:  "secret123",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	ctx := context.Background()
	accountID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "stall@example.com").
		Return(&entity.Authentication{AccountID: accountID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(businessAccount(accountID, "Ah Seng"), nil)
	fx.tokenService.EXPECT().GenerateTokens(accountID, []string{"business"}).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.AccountID == accountID && token.TokenHash == "refresh-hash"
		})).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "stall@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, accountID, output.Account.ID)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "stall@example.com").
		Return(&entity.Authentication{AccountID: uuid.New(), PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "stall@example.com", Password: "wrong"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "nobody@example.com").
		Return(nil, repository.ErrAuthNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Login_SessionLimit(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(2))
	fx.runInTransaction()
	ctx := context.Background()
	accountID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "p@example.com").
		Return(&entity.Authentication{AccountID: accountID, PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(personalAccount(accountID, "P"), nil)
	fx.tokenService.EXPECT().GenerateTokens(accountID, []string{"personal"}).Return("access", "refresh", nil)
	fx.refreshTokenRepo.EXPECT().CountActiveSessionsByAccountID(ctx, accountID).Return(2, nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "p@example.com", Password: "secret123"})
	assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
}

func TestAuthService_RefreshToken(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	ctx := context.Background()
	accountID := uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("refresh", service.TokenTypeRefresh).
		Return(&service.Claims{UserID: accountID, Type: service.TokenTypeRefresh}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{AccountID: accountID}, nil)
	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(personalAccount(accountID, "P"), nil)
	fx.tokenService.EXPECT().GenerateTokens(accountID, []string{"personal"}).Return("new-access", "unused", nil)

	output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestAuthService_RefreshToken_Revoked(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	ctx := context.Background()

	fx.tokenService.EXPECT().
		ValidateToken("refresh", service.TokenTypeRefresh).
		Return(&service.Claims{UserID: uuid.New()}, nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestAuthService_Logout_InvalidTokenStillDeleted(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("stale", service.TokenTypeRefresh).Return(nil, errors.New("token is expired"))
	fx.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "stale-hash").Return(nil)

	require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale"}))
}

func TestAuthService_RequestPasswordReset_KnownEmail(t *testing.T) {
	cfg := newTestConfig(0)
	cfg.Mail = &config.MailConfig{ResetURL: "makan://reset-password"}
	cfg.Auth.ResetTTL = 30 * time.Minute
	fx := createTestAuthService(t, cfg)
	ctx := context.Background()
	accountID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "p@example.com").
		Return(&entity.Authentication{AccountID: accountID, PasswordHash: "old-hash"}, nil)
	fx.tokenService.EXPECT().HashToken("old-hash").Return("fp-old")
	fx.tokenService.EXPECT().GenerateResetToken(accountID, "fp-old").Return("reset-token", nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(mail *service.Mail) bool {
			return mail.To == "p@example.com" && strings.Contains(mail.Body, "makan://reset-password?token=reset-token") &&
				strings.Contains(mail.Body, "expires in 30 minutes")
		})).
		Return(nil)

	require.NoError(t, fx.service.RequestPasswordReset(ctx, "P@example.com"))
}

func TestAuthService_RequestPasswordReset_UnknownEmailSucceeds(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	ctx := context.Background()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ghost@example.com").
		Return(nil, repository.ErrAuthNotFound)

	require.NoError(t, fx.service.RequestPasswordReset(ctx, "ghost@example.com"))
}

func TestAuthService_RequestPasswordReset_MailFailureHidden(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	ctx := context.Background()
	accountID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "p@example.com").
		Return(&entity.Authentication{AccountID: accountID, PasswordHash: "old-hash"}, nil)
	fx.tokenService.EXPECT().HashToken("old-hash").Return("fp-old")
	fx.tokenService.EXPECT().GenerateResetToken(accountID, "fp-old").Return("reset-token", nil)
	fx.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("ses throttled"))

	require.NoError(t, fx.service.RequestPasswordReset(ctx, "p@example.com"))
}

func TestAuthService_ResetPassword(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	fx.runInTransaction()
	ctx := context.Background()
	accountID, authID := uuid.New(), uuid.New()

	fx.tokenService.EXPECT().
		ValidateToken("reset-token", service.TokenTypeReset).
		Return(&service.Claims{UserID: accountID, Type: service.TokenTypeReset, Fingerprint: "fp-old"}, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength("newsecret").Return(nil)
	fx.hasher.EXPECT().Hash("newsecret").Return("new-hash", nil)
	fx.authRepo.EXPECT().
		FindAuthenticationByAccount(ctx, accountID, entity.ProviderTypeEmail).
		Return(&entity.Authentication{ID: authID, AccountID: accountID, PasswordHash: "old-hash"}, nil)
	fx.tokenService.EXPECT().HashToken("old-hash").Return("fp-old")
	fx.authRepo.EXPECT().UpdatePasswordHash(ctx, authID, "new-hash").Return(nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByAccountID(ctx, accountID).Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:           "reset-token",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	})
	require.NoError(t, err)
}

func TestAuthService_ResetPassword_UsedTokenRejected(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	fx.runInTransaction()
	ctx := context.Background()
	accountID := uuid.New()

	// The password was already replaced with this token, so the stored hash no longer matches.
	fx.tokenService.EXPECT().
		ValidateToken("reset-token", service.TokenTypeReset).
		Return(&service.Claims{UserID: accountID, Type: service.TokenTypeReset, Fingerprint: "fp-old"}, nil)
	fx.hasher.EXPECT().ValidatePasswordStrength("another1").Return(nil)
	fx.hasher.EXPECT().Hash("another1").Return("another-hash", nil)
	fx.authRepo.EXPECT().
		FindAuthenticationByAccount(ctx, accountID, entity.ProviderTypeEmail).
		Return(&entity.Authentication{ID: uuid.New(), AccountID: accountID, PasswordHash: "new-hash"}, nil)
	fx.tokenService.EXPECT().HashToken("new-hash").Return("fp-new")

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Token:           "reset-token",
		NewPassword:     "another1",
		ConfirmPassword: "another1",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestAuthService_ResetPassword_TokenWithoutFingerprint(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))

	fx.tokenService.EXPECT().
		ValidateToken("legacy", service.TokenTypeReset).
		Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeReset}, nil)

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: "legacy", NewPassword: "a", ConfirmPassword: "a"})
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestAuthService_ResetPassword_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))

	fx.tokenService.EXPECT().ValidateToken("bogus", service.TokenTypeReset).Return(nil, errors.New("invalid token"))

	err := fx.service.ResetPassword(context.Background(), &usecase.ResetPasswordInput{Token: "bogus", NewPassword: "a", ConfirmPassword: "a"})
	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestAuthService_ChangePassword_Mismatch(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))

	err := fx.service.ChangePassword(context.Background(), uuid.New(), &usecase.ChangePasswordInput{
		CurrentPassword: "old",
		NewPassword:     "newsecret",
		ConfirmPassword: "different",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	ctx := context.Background()
	accountID := uuid.New()

	fx.authRepo.EXPECT().
		FindAuthenticationByAccount(ctx, accountID, entity.ProviderTypeEmail).
		Return(&entity.Authentication{PasswordHash: "hashed"}, nil)
	fx.hasher.EXPECT().Check("old", "hashed").Return(false)

	err := fx.service.ChangePassword(ctx, accountID, &usecase.ChangePasswordInput{
		CurrentPassword: "old",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_ChangePassword_RevokesAllSessions(t *testing.T) {
	fx := createTestAuthService(t, newTestConfig(0))
	fx.runInTransaction()
	ctx := context.Background()
	accountID, authID := uuid.New(), uuid.New()
	credential := &entity.Authentication{ID: authID, AccountID: accountID, PasswordHash: "hashed"}

	fx.authRepo.EXPECT().FindAuthenticationByAccount(ctx, accountID, entity.ProviderTypeEmail).Return(credential, nil)
	fx.hasher.EXPECT().Check("old", "hashed").Return(true)
	fx.hasher.EXPECT().ValidatePasswordStrength("newsecret").Return(nil)
	fx.hasher.EXPECT().Hash("newsecret").Return("new-hash", nil)
	fx.authRepo.EXPECT().UpdatePasswordHash(ctx, authID, "new-hash").Return(nil)
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByAccountID(ctx, accountID).Return(nil).Once()

	err := fx.service.ChangePassword(ctx, accountID, &usecase.ChangePasswordInput{
		CurrentPassword: "old",
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	})
	require.NoError(t, err)
}

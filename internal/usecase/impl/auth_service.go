// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"makan/config"
	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/domain/service"
	"makan/internal/usecase"
	"makan/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const resetMailSubject = "Reset your Makan password"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	accountRepo       repository.AccountRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	mailer            service.Mailer
	resetURL          string
	resetTTL          time.Duration
	maxActiveSessions int
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AccountRepo      repository.AccountRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Mailer           service.Mailer
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	maxActiveSessions := 0
	resetURL := ""
	var resetTTL time.Duration
	if params.Config != nil {
		if params.Config.Auth != nil {
			maxActiveSessions = params.Config.Auth.MaxActiveSessions
			resetTTL = params.Config.Auth.ResetTTL
		}
		if params.Config.Mail != nil {
			resetURL = params.Config.Mail.ResetURL
		}
	}

	return &authService{
		txManager:         params.TxManager,
		accountRepo:       params.AccountRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		mailer:            params.Mailer,
		resetURL:          resetURL,
		resetTTL:          resetTTL,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterPersonal signs up a food lover.
func (srv *authService) RegisterPersonal(ctx context.Context, input *usecase.RegisterPersonalInput) (*usecase.RegisterOutput, error) {
	account := &entity.Account{
		Kind: entity.AccountKindPersonal,
		Personal: &entity.PersonalProfile{
			FullName:      strings.TrimSpace(input.FullName),
			ContactNumber: input.ContactNumber,
		},
	}
	if account.Personal.FullName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("full name is required")
	}

	return srv.executeRegistration(ctx, account, input.Email, input.Password)
}

// RegisterBusiness signs up a hawker stall.
func (srv *authService) RegisterBusiness(ctx context.Context, input *usecase.RegisterBusinessInput) (*usecase.RegisterOutput, error) {
	account := &entity.Account{
		Kind: entity.AccountKindBusiness,
		Business: &entity.BusinessProfile{
			StallName:     strings.TrimSpace(input.StallName),
			Location:      input.Location,
			OpeningHours:  input.OpeningHours,
			ContactNumber: input.ContactNumber,
		},
	}
	if account.Business.StallName == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("stall name is required")
	}

	return srv.executeRegistration(ctx, account, input.Email, input.Password)
}

func (srv *authService) executeRegistration(ctx context.Context, account *entity.Account, email, password string) (*usecase.RegisterOutput, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}

	srv.log(ctx).Info("Starting registration", slog.Any("kind", account.Kind), slog.String("email", email))

	if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "password does not meet security requirements")
	}

	// bcrypt is CPU-bound, keep it outside the transaction.
	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := time.Now().UTC()
	account.ID = uuid.New()
	account.Email = email
	account.CreatedAt = now
	account.UpdatedAt = now

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := repoFactory.AccountRepo().Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account during registration")
		}

		newAuth := &entity.Authentication{
			ID:             uuid.New(),
			AccountID:      account.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute account registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("kind", account.Kind), slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account}, nil
}

// Login orchestrates the account login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting login", slog.String("email", email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	account, err := srv.accountRepo.FindByID(ctx, authRecord.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account for login")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(account.ID, accountRoles(account).ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, account.ID, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create refresh token during login")
	}

	srv.log(ctx).Debug("Account logged in successfully", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		Account:      account,
	}, nil
}

func (srv *authService) persistRefreshToken(ctx context.Context, accountID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions <= 0 {
		return srv.storeRefreshToken(ctx, srv.refreshTokenRepo, accountID, refreshTokenString)
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		activeSessions, err := refreshRepo.CountActiveSessionsByAccountID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if activeSessions >= srv.maxActiveSessions {
			return errors.Wrap(domainerrors.ErrSessionLimitExceeded, "active session limit exceeded")
		}

		return srv.storeRefreshToken(ctx, refreshRepo, accountID, refreshTokenString)
	})
}

func (srv *authService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, accountID uuid.UUID, refreshTokenString string) error {
	now := time.Now().UTC()
	newRefreshToken := &entity.RefreshToken{
		ID:        uuid.New(),
		AccountID: accountID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
		CreatedAt: now,
	}

	if err := refreshRepo.CreateRefreshToken(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken issues a new access token. The refresh token itself is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh access token")

	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}

	if _, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token not found or expired")
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(account.ID, accountRoles(account).ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout ends the session identified by the refresh token.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh); err != nil {
		// An invalid token can still be deleted from the store.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// RequestPasswordReset mails a reset link to a known email. Unknown emails and mail failures are
// only logged so the response does not reveal which emails are registered.
func (srv *authService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Info("Password reset requested for unknown email", slog.String("email", email))

			return nil
		}

		return errors.Wrap(err, "failed to find authentication")
	}

	token, err := srv.tokenService.GenerateResetToken(authRecord.AccountID, srv.tokenService.HashToken(authRecord.PasswordHash))
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	mail := &service.Mail{
		To:      email,
		Subject: resetMailSubject,
		Body:    srv.resetMailBody(token),
	}
	if err := srv.mailer.Send(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to send password reset mail", slog.Any("accountID", authRecord.AccountID), slog.Any("error", err))

		return nil
	}

	srv.log(ctx).Info("Password reset mail sent", slog.Any("accountID", authRecord.AccountID))

	return nil
}

func (srv *authService) resetMailBody(token string) string {
	link := token
	if srv.resetURL != "" {
		if u, err := url.Parse(srv.resetURL); err == nil {
			query := u.Query()
			query.Set("token", token)
			u.RawQuery = query.Encode()
			link = u.String()
		}
	}

	expiry := ""
	if srv.resetTTL > 0 {
		expiry = fmt.Sprintf("This link expires in %s.\n\n", util.FormatDuration(srv.resetTTL))
	}

	return fmt.Sprintf("We received a request to reset your password.\n\nOpen this link to choose a new one:\n%s\n\n%sIf you did not ask for this, ignore this email.", link, expiry)
}

// ResetPassword sets a new password from a mailed reset token and ends every session.
// A token only works while the password it was issued against is still in place, so it
// cannot be used twice.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	claims, err := srv.tokenService.ValidateToken(input.Token, service.TokenTypeReset)
	if err != nil {
		return domainerrors.ErrResetTokenInvalid.WrapMessage(err.Error())
	}
	if claims.Fingerprint == "" {
		return domainerrors.ErrResetTokenInvalid.WrapMessage("reset token has no credential fingerprint")
	}

	if input.NewPassword != input.ConfirmPassword {
		return errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	return srv.replacePassword(ctx, claims.UserID, input.NewPassword, func(authRecord *entity.Authentication) error {
		if srv.tokenService.HashToken(authRecord.PasswordHash) != claims.Fingerprint {
			return domainerrors.ErrResetTokenInvalid.WrapMessage("reset link has already been used")
		}

		return nil
	})
}

// ChangePassword replaces a known password and ends every session.
func (srv *authService) ChangePassword(ctx context.Context, accountID uuid.UUID, input *usecase.ChangePasswordInput) error {
	if input.NewPassword != input.ConfirmPassword {
		return errors.WithStack(domainerrors.ErrPasswordMismatch)
	}

	authRecord, err := srv.authRepo.FindAuthenticationByAccount(ctx, accountID, entity.ProviderTypeEmail)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "no password credential for account")
		}

		return errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.CurrentPassword, authRecord.PasswordHash) {
		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password is incorrect")
	}

	return srv.replacePassword(ctx, accountID, input.NewPassword, nil)
}

// replacePassword stores the new hash and revokes all refresh tokens in one transaction.
// check, when set, vets the stored credential before it is replaced.
func (srv *authService) replacePassword(ctx context.Context, accountID uuid.UUID, password string, check func(*entity.Authentication) error) error {
	if err := srv.hasher.ValidatePasswordStrength(password); err != nil {
		return errors.Wrap(err, "password does not meet security requirements")
	}

	hashedPassword, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthenticationByAccount(ctx, accountID, entity.ProviderTypeEmail)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no password credential for account")
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		if check != nil {
			if err := check(authRecord); err != nil {
				return err
			}
		}

		if err := authRepo.UpdatePasswordHash(ctx, authRecord.ID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password hash")
		}

		if err := repoFactory.RefreshTokenRepo().DeleteRefreshTokensByAccountID(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password update transaction")
	}

	srv.log(ctx).Info("Password updated and sessions revoked", slog.Any("accountID", accountID))

	return nil
}

func accountRoles(account *entity.Account) entity.Roles {
	return entity.Roles{account.Kind.Role()}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"makan/config"
	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/domain/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const accountSearchLimit = 50

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	qrService   service.QRCodeService
	uploader    *imageUploader
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	QRService   service.QRCodeService
	Blobs       service.BlobStorage
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		qrService:   params.QRService,
		uploader:    newImageUploader(params.Blobs, maxImageBytes(params.Config), params.Logger),
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the account with its profile variant.
func (srv *profileService) GetProfile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// UpdatePersonalProfile applies the set fields to a personal profile.
func (srv *profileService) UpdatePersonalProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdatePersonalProfileInput) (*entity.Account, error) {
	if input.FullName != nil && strings.TrimSpace(*input.FullName) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("full name cannot be empty")
	}

	return srv.updateAccount(ctx, accountID, entity.AccountKindPersonal, func(account *entity.Account) {
		profile := account.Personal
		if input.FullName != nil {
			profile.FullName = strings.TrimSpace(*input.FullName)
		}
		if input.ContactNumber != nil {
			profile.ContactNumber = *input.ContactNumber
		}
		if input.Gender != nil {
			profile.Gender = *input.Gender
		}
		if input.DateOfBirth != nil {
			profile.DateOfBirth = *input.DateOfBirth
		}
		if input.FoodAllergies != nil {
			profile.FoodAllergies = compact(input.FoodAllergies)
		}
		if input.FoodPreferences != nil {
			profile.FoodPreferences = compact(input.FoodPreferences)
		}
		if input.DietaryRestrictions != nil {
			profile.DietaryRestrictions = compact(input.DietaryRestrictions)
		}
	})
}

// UpdateBusinessProfile applies the set fields to a business profile.
func (srv *profileService) UpdateBusinessProfile(ctx context.Context, accountID uuid.UUID, input *usecase.UpdateBusinessProfileInput) (*entity.Account, error) {
	if input.StallName != nil && strings.TrimSpace(*input.StallName) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("stall name cannot be empty")
	}

	return srv.updateAccount(ctx, accountID, entity.AccountKindBusiness, func(account *entity.Account) {
		profile := account.Business
		if input.StallName != nil {
			profile.StallName = strings.TrimSpace(*input.StallName)
		}
		if input.Location != nil {
			profile.Location = *input.Location
		}
		if input.OpeningHours != nil {
			profile.OpeningHours = *input.OpeningHours
		}
		if input.ContactNumber != nil {
			profile.ContactNumber = *input.ContactNumber
		}
	})
}

func (srv *profileService) updateAccount(ctx context.Context, accountID uuid.UUID, kind entity.AccountKind, apply func(*entity.Account)) (*entity.Account, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("accountID", accountID), slog.Any("kind", kind))

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		if account.Kind != kind {
			return domainerrors.ErrProfileKindMismatch.WrapMessage("account is not a " + string(kind) + " account")
		}

		apply(account)
		account.UpdatedAt = time.Now().UTC()

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to update account")
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return updated, nil
}

// UploadAvatar stores a new avatar and points the profile at it. The new blob is removed if the
// profile write fails; the previous avatar is removed once the write succeeds.
func (srv *profileService) UploadAvatar(ctx context.Context, accountID uuid.UUID, image []byte) (*entity.Account, error) {
	account, err := srv.GetProfile(ctx, accountID)
	if err != nil {
		return nil, err
	}

	url, err := srv.uploader.UploadOne(ctx, imagePrefixAvatars, image)
	if err != nil {
		return nil, err
	}

	previous := account.AvatarURL()
	account.SetAvatarURL(url)
	account.UpdatedAt = time.Now().UTC()

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		srv.uploader.DeleteAll(ctx, []string{url})

		return nil, errors.Wrap(err, "failed to update avatar")
	}

	if previous != "" {
		srv.uploader.DeleteAll(ctx, []string{previous})
	}

	return account, nil
}

// SearchAccounts matches full names and stall names.
func (srv *profileService) SearchAccounts(ctx context.Context, query string) ([]*entity.Identity, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*entity.Identity{}, nil
	}

	accounts, err := srv.accountRepo.SearchByName(ctx, query, accountSearchLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search accounts")
	}

	identities := make([]*entity.Identity, 0, len(accounts))
	for _, account := range accounts {
		identities = append(identities, entity.IdentityOf(account))
	}

	return identities, nil
}

// ContactQRCode renders the contact code of a business account.
func (srv *profileService) ContactQRCode(ctx context.Context, accountID uuid.UUID) ([]byte, error) {
	if _, err := srv.accountRepo.FindBusinessByID(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrProfileKindMismatch.WrapMessage("only business accounts have a contact QR code")
		}

		return nil, errors.Wrap(err, "failed to find business account")
	}

	png, err := srv.qrService.GenerateContactQR(accountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate contact QR code")
	}

	return png, nil
}

func maxImageBytes(cfg *config.Config) int64 {
	if cfg == nil || cfg.Blob == nil {
		return 0
	}

	return cfg.Blob.MaxImageBytes
}

// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	"makan/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

func (repo *accountRepository) withProfiles(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Personal").Preload("Business")
}

// FindByID retrieves a single account by its ID, preloading whichever profile it has.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "failed to find account by id", "id = ?", id)
}

// FindPersonalByID retrieves the account only when it is a personal account.
func (repo *accountRepository) FindPersonalByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "failed to find personal account",
		"id = ? AND kind = ?", id, string(entity.AccountKindPersonal))
}

// FindBusinessByID retrieves the account only when it is a business account.
func (repo *accountRepository) FindBusinessByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.findOne(ctx, "failed to find business account",
		"id = ? AND kind = ?", id, string(entity.AccountKindBusiness))
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return repo.findOne(ctx, "failed to find account by email", "email = ?", email)
}

func (repo *accountRepository) findOne(ctx context.Context, failMsg string, query string, args ...any) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.withProfiles(ctx).Where(query, args...).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, failMsg)
	}

	return toAccountDomain(&accountM), nil
}

// SearchByName matches personal full names and business stall names.
func (repo *accountRepository) SearchByName(ctx context.Context, query string, limit int) ([]*entity.Account, error) {
	var accountModels []*model.AccountModel

	pattern := containsPattern(query)
	if err := repo.withProfiles(ctx).
		Joins("LEFT JOIN personal_profiles ON personal_profiles.account_id = accounts.id").
		Joins("LEFT JOIN business_profiles ON business_profiles.account_id = accounts.id").
		Where("personal_profiles.full_name ILIKE ? OR business_profiles.stall_name ILIKE ?", pattern, pattern).
		Order("accounts.created_at DESC").
		Limit(limit).
		Find(&accountModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountModels))
	for _, accountM := range accountModels {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// Create persists a new account entity together with its profile.
// GORM's Create with associations inserts into accounts and the matching profile table.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required account information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account and its profile.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	account := &entity.Account{
		ID:        data.ID,
		Kind:      entity.AccountKind(data.Kind),
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if p := data.Personal; p != nil {
		account.Personal = &entity.PersonalProfile{
			FullName:            p.FullName,
			ContactNumber:       p.ContactNumber,
			Gender:              p.Gender,
			DateOfBirth:         p.DateOfBirth,
			AvatarURL:           p.AvatarURL,
			FoodAllergies:       p.FoodAllergies,
			FoodPreferences:     p.FoodPreferences,
			DietaryRestrictions: p.DietaryRestrictions,
		}
	}
	if b := data.Business; b != nil {
		account.Business = &entity.BusinessProfile{
			StallName:     b.StallName,
			Location:      b.Location,
			OpeningHours:  b.OpeningHours,
			ContactNumber: b.ContactNumber,
			AvatarURL:     b.AvatarURL,
		}
	}

	return account
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		ID:        data.ID,
		Kind:      string(data.Kind),
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
	}

	if p := data.Personal; p != nil {
		accountM.Personal = &model.PersonalProfileModel{
			AccountID:           data.ID,
			FullName:            p.FullName,
			ContactNumber:       p.ContactNumber,
			Gender:              p.Gender,
			DateOfBirth:         p.DateOfBirth,
			AvatarURL:           p.AvatarURL,
			FoodAllergies:       p.FoodAllergies,
			FoodPreferences:     p.FoodPreferences,
			DietaryRestrictions: p.DietaryRestrictions,
		}
	}
	if b := data.Business; b != nil {
		accountM.Business = &model.BusinessProfileModel{
			AccountID:     data.ID,
			StallName:     b.StallName,
			Location:      b.Location,
			OpeningHours:  b.OpeningHours,
			ContactNumber: b.ContactNumber,
			AvatarURL:     b.AvatarURL,
		}
	}

	return accountM
}

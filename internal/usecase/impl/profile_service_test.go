package impl

import (
	"context"
	"testing"

	"makan/config"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	mockRepo "makan/internal/mocks/repository"
	mockService "makan/internal/mocks/service"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	repoFactory *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
	qrService   *mockService.MockQRCodeService
	blobs       *mockService.MockBlobStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		repoFactory: mockRepo.NewMockRepositoryFactory(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		qrService:   mockService.NewMockQRCodeService(t),
		blobs:       mockService.NewMockBlobStorage(t),
	}
	fx.service = NewProfileService(ProfileServiceParams{
		TxManager:   fx.txManager,
		AccountRepo: fx.accountRepo,
		QRService:   fx.qrService,
		Blobs:       fx.blobs,
		Config:      &config.Config{Blob: &config.BlobConfig{MaxImageBytes: 1 << 20}},
		Logger:      newDiscardLogger(),
	})

	return fx
}

func (fx profileServiceFixtures) runInTransaction() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.repoFactory)
		})
	fx.repoFactory.EXPECT().AccountRepo().Return(fx.accountRepo)
}

func TestProfileService_UpdatePersonalProfile(t *testing.T) {
	fx := createTestProfileService(t)
	fx.runInTransaction()
	ctx := context.Background()
	accountID := uuid.New()
	name := "Nurul Huda"

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(personalAccount(accountID, "Nurul"), nil)
	fx.accountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)

	account, err := fx.service.UpdatePersonalProfile(ctx, accountID, &usecase.UpdatePersonalProfileInput{
		FullName:            &name,
		DietaryRestrictions: []string{"halal", " "},
	})
	require.NoError(t, err)
	assert.Equal(t, "Nurul Huda", account.Personal.FullName)
	assert.Equal(t, []string{"halal"}, account.Personal.DietaryRestrictions)
}

func TestProfileService_UpdateBusinessProfile_KindMismatch(t *testing.T) {
	fx := createTestProfileService(t)
	fx.runInTransaction()
	ctx := context.Background()
	accountID := uuid.New()
	stall := "Roti Canai King"

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(personalAccount(accountID, "Nurul"), nil)

	_, err := fx.service.UpdateBusinessProfile(ctx, accountID, &usecase.UpdateBusinessProfileInput{StallName: &stall})
	assert.True(t, errors.Is(err, domainerrors.ErrProfileKindMismatch))
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.GetProfile(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UploadAvatar(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()
	account := businessAccount(accountID, "Kopi Tiam")
	account.Business.AvatarURL = "http://cdn/avatars/old.png"

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
	fx.blobs.EXPECT().Upload(ctx, mock.Anything, "image/png", pngHeader).Return("http://cdn/avatars/new.png", nil)
	fx.accountRepo.EXPECT().Update(ctx, account).Return(nil)
	fx.blobs.EXPECT().Delete(mock.Anything, "http://cdn/avatars/old.png").Return(nil)

	updated, err := fx.service.UploadAvatar(ctx, accountID, pngHeader)
	require.NoError(t, err)
	assert.Equal(t, "http://cdn/avatars/new.png", updated.AvatarURL())
}

func TestProfileService_UploadAvatar_FailedWriteDeletesNewBlob(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(personalAccount(accountID, "Aisyah"), nil)
	fx.blobs.EXPECT().Upload(ctx, mock.Anything, "image/png", pngHeader).Return("http://cdn/avatars/new.png", nil)
	fx.accountRepo.EXPECT().Update(ctx, mock.Anything).Return(errors.New("write failed"))
	fx.blobs.EXPECT().Delete(mock.Anything, "http://cdn/avatars/new.png").Return(nil)

	_, err := fx.service.UploadAvatar(ctx, accountID, pngHeader)
	assert.Error(t, err)
}

func TestProfileService_UploadAvatar_CancelledRequestStillDeletesNewBlob(t *testing.T) {
	fx := createTestProfileService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().FindByID(ctx, accountID).Return(personalAccount(accountID, "Aisyah"), nil)
	fx.blobs.EXPECT().Upload(ctx, mock.Anything, "image/png", pngHeader).Return("http://cdn/avatars/new.png", nil)
	fx.accountRepo.EXPECT().Update(ctx, mock.Anything).
		Run(func(context.Context, *entity.Account) { cancel() }).
		Return(context.Canceled)
	fx.blobs.EXPECT().Delete(mock.Anything, "http://cdn/avatars/new.png").
		Run(func(ctx context.Context, _ string) { assert.NoError(t, ctx.Err()) }).
		Return(nil)

	_, err := fx.service.UploadAvatar(ctx, accountID, pngHeader)
	assert.Error(t, err)
}

func TestProfileService_SearchAccounts(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	stallID := uuid.New()

	fx.accountRepo.EXPECT().SearchByName(ctx, "kopi", accountSearchLimit).Return([]*entity.Account{businessAccount(stallID, "Kopi Tiam")}, nil)

	identities, err := fx.service.SearchAccounts(ctx, " kopi ")
	require.NoError(t, err)
	require.Len(t, identities, 1)
	assert.Equal(t, "Kopi Tiam", identities[0].DisplayName)

	empty, err := fx.service.SearchAccounts(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestProfileService_ContactQRCode(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	stallID, personID := uuid.New(), uuid.New()

	fx.accountRepo.EXPECT().FindBusinessByID(ctx, stallID).Return(businessAccount(stallID, "Kopi Tiam"), nil)
	fx.qrService.EXPECT().GenerateContactQR(stallID).Return([]byte("png"), nil)

	png, err := fx.service.ContactQRCode(ctx, stallID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	fx.accountRepo.EXPECT().FindBusinessByID(ctx, personID).Return(nil, repository.ErrAccountNotFound)

	_, err = fx.service.ContactQRCode(ctx, personID)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileKindMismatch))
}

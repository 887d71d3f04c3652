package impl

import (
	"context"
	"testing"

	"makan/config"
	deliverycontext "makan/internal/delivery/context"
	"makan/internal/domain/entity"
	"makan/internal/domain/repository"
	mockRepo "makan/internal/mocks/repository"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service     usecase.IdentityUsecase
	accountRepo *mockRepo.MockAccountRepository
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	service := NewIdentityService(IdentityServiceParams{
		AccountRepo: accountRepo,
		Config:      &config.Config{Identity: &config.IdentityConfig{Parallelism: 2}},
		Logger:      newDiscardLogger(),
	})

	return identityServiceFixtures{service: service, accountRepo: accountRepo}
}

func personalAccount(id uuid.UUID, fullName string) *entity.Account {
	return &entity.Account{
		ID:       id,
		Kind:     entity.AccountKindPersonal,
		Email:    "person@example.com",
		Personal: &entity.PersonalProfile{FullName: fullName},
	}
}

func businessAccount(id uuid.UUID, stallName string) *entity.Account {
	return &entity.Account{
		ID:       id,
		Kind:     entity.AccountKindBusiness,
		Email:    "stall@example.com",
		Business: &entity.BusinessProfile{StallName: stallName},
	}
}

func TestIdentityService_Resolve_Personal(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindPersonalByID(ctx, id).Return(personalAccount(id, "Aisyah Rahman"), nil)

	identity, err := fx.service.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Aisyah Rahman", identity.DisplayName)
	assert.Equal(t, entity.AccountKindPersonal, identity.Kind)
}

func TestIdentityService_Resolve_BusinessOnly(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindPersonalByID(ctx, id).Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindBusinessByID(ctx, id).Return(businessAccount(id, "Ah Seng Char Kuey Teow"), nil)

	identity, err := fx.service.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ah Seng Char Kuey Teow", identity.DisplayName)
	assert.False(t, identity.IsAnonymous())
}

func TestIdentityService_Resolve_Unknown(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.accountRepo.EXPECT().FindPersonalByID(ctx, id).Return(nil, repository.ErrAccountNotFound)
	fx.accountRepo.EXPECT().FindBusinessByID(ctx, id).Return(nil, repository.ErrAccountNotFound)

	identity, err := fx.service.Resolve(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.AnonymousName, identity.DisplayName)
	assert.Equal(t, id, identity.AccountID)
	assert.True(t, identity.IsAnonymous())
}

func TestIdentityService_Resolve_StorageError(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	id := uuid.New()
	dbErr := errors.New("connection reset")

	fx.accountRepo.EXPECT().FindPersonalByID(ctx, id).Return(nil, dbErr)

	identity, err := fx.service.Resolve(ctx, id)
	assert.Nil(t, identity)
	assert.ErrorIs(t, err, dbErr)
}

func TestIdentityService_Resolve_UsesRequestCache(t *testing.T) {
	fx := createTestIdentityService(t)
	id := uuid.New()
	ctx := deliverycontext.WithIdentityCache(context.Background(), deliverycontext.NewIdentityCache())

	fx.accountRepo.EXPECT().FindPersonalByID(ctx, id).Return(personalAccount(id, "Mei Ling"), nil).Once()

	first, err := fx.service.Resolve(ctx, id)
	require.NoError(t, err)
	second, err := fx.service.Resolve(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestIdentityService_ResolveMany_Deduplicates(t *testing.T) {
	fx := createTestIdentityService(t)
	personID, stallID, unknownID := uuid.New(), uuid.New(), uuid.New()

	fx.accountRepo.EXPECT().FindPersonalByID(mock.Anything, personID).Return(personalAccount(personID, "Ravi"), nil).Once()
	fx.accountRepo.EXPECT().FindPersonalByID(mock.Anything, stallID).Return(nil, repository.ErrAccountNotFound).Once()
	fx.accountRepo.EXPECT().FindBusinessByID(mock.Anything, stallID).Return(businessAccount(stallID, "Nasi Lemak Corner"), nil).Once()
	fx.accountRepo.EXPECT().FindPersonalByID(mock.Anything, unknownID).Return(nil, repository.ErrAccountNotFound).Once()
	fx.accountRepo.EXPECT().FindBusinessByID(mock.Anything, unknownID).Return(nil, repository.ErrAccountNotFound).Once()

	identities, err := fx.service.ResolveMany(context.Background(), []uuid.UUID{personID, stallID, personID, unknownID, stallID})
	require.NoError(t, err)
	require.Len(t, identities, 3)
	assert.Equal(t, "Ravi", identities[personID].DisplayName)
	assert.Equal(t, "Nasi Lemak Corner", identities[stallID].DisplayName)
	assert.Equal(t, entity.AnonymousName, identities[unknownID].DisplayName)
}

func TestIdentityService_ResolveMany_Empty(t *testing.T) {
	fx := createTestIdentityService(t)

	identities, err := fx.service.ResolveMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, identities)
}

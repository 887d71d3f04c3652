package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"makan/config"
	"makan/internal/domain/entity"
	domainerrors "makan/internal/domain/errors"
	"makan/internal/domain/repository"
	mockRepo "makan/internal/mocks/repository"
	mockService "makan/internal/mocks/service"
	mockUsecase "makan/internal/mocks/usecase"
	"makan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type recipeServiceFixtures struct {
	service    usecase.RecipeUsecase
	recipeRepo *mockRepo.MockRecipeRepository
	identities *mockUsecase.MockIdentityUsecase
	blobs      *mockService.MockBlobStorage
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	recipeRepo := mockRepo.NewMockRecipeRepository(t)
	identities := mockUsecase.NewMockIdentityUsecase(t)
	blobs := mockService.NewMockBlobStorage(t)

	service := NewRecipeService(RecipeServiceParams{
		RecipeRepo: recipeRepo,
		Identities: identities,
		Blobs:      blobs,
		Config:     &config.Config{Blob: &config.BlobConfig{MaxImageBytes: 1024}},
		Logger:     newDiscardLogger(),
	})

	return recipeServiceFixtures{
		service:    service,
		recipeRepo: recipeRepo,
		identities: identities,
		blobs:      blobs,
	}
}

func validRecipeInput(images int) *usecase.CreateRecipeInput {
	input := &usecase.CreateRecipeInput{
		Title:    "Nasi Lemak",
		Servings: 2,
		Ingredients: []entity.Ingredient{
			{Name: "rice", Quantity: 2, Unit: "cups"},
			{Name: "coconut milk", Quantity: 1, Unit: "cup"},
		},
		Instructions: "Cook the rice in coconut milk.",
	}
	for range images {
		input.Images = append(input.Images, usecase.Image{Data: pngHeader})
	}

	return input
}

func TestRecipeService_CreateRecipe_SnapshotsAuthor(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	authorID := uuid.New()

	fx.identities.EXPECT().Resolve(ctx, authorID).Return(&entity.Identity{AccountID: authorID, DisplayName: "Mak Cik Rosnah"}, nil)
	fx.blobs.EXPECT().
		Upload(mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "recipes/") && strings.HasSuffix(key, ".png")
		}), "image/png", pngHeader).
		Return("http://cdn/recipes/1.png", nil)
	fx.recipeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Recipe")).Return(nil)

	recipe, err := fx.service.CreateRecipe(ctx, authorID, validRecipeInput(1))
	require.NoError(t, err)
	assert.Equal(t, "Mak Cik Rosnah", recipe.AuthorName)
	assert.Equal(t, []string{"http://cdn/recipes/1.png"}, recipe.ImageURLs)
	assert.NotEqual(t, uuid.Nil, recipe.ID)
}

func TestRecipeService_CreateRecipe_FailedWriteDeletesUploads(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	authorID := uuid.New()

	fx.identities.EXPECT().Resolve(ctx, authorID).Return(entity.AnonymousIdentity(authorID), nil)
	fx.blobs.EXPECT().Upload(mock.Anything, mock.Anything, "image/png", pngHeader).Return("http://cdn/recipes/x.png", nil).Times(3)
	fx.recipeRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("firestore unavailable"))
	fx.blobs.EXPECT().Delete(mock.Anything, "http://cdn/recipes/x.png").Return(nil).Times(3)

	recipe, err := fx.service.CreateRecipe(ctx, authorID, validRecipeInput(3))
	assert.Nil(t, recipe)
	assert.Error(t, err)
}

func TestRecipeService_CreateRecipe_CancelledRequestStillDeletesUploads(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	authorID := uuid.New()

	fx.identities.EXPECT().Resolve(ctx, authorID).Return(entity.AnonymousIdentity(authorID), nil)
	fx.blobs.EXPECT().Upload(mock.Anything, mock.Anything, "image/png", pngHeader).Return("http://cdn/recipes/x.png", nil)
	fx.recipeRepo.EXPECT().Create(ctx, mock.Anything).
		Run(func(context.Context, *entity.Recipe) { cancel() }).
		Return(context.Canceled)
	fx.blobs.EXPECT().Delete(mock.Anything, "http://cdn/recipes/x.png").
		Run(func(ctx context.Context, _ string) { assert.NoError(t, ctx.Err()) }).
		Return(nil)

	_, err := fx.service.CreateRecipe(ctx, authorID, validRecipeInput(1))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRecipeService_CreateRecipe_FailedUploadDeletesOthers(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	authorID := uuid.New()
	input := validRecipeInput(0)
	input.Images = []usecase.Image{{Data: pngHeader}, {Data: append(bytes.Clone(pngHeader), 1)}}

	fx.identities.EXPECT().Resolve(ctx, authorID).Return(entity.AnonymousIdentity(authorID), nil)
	fx.blobs.EXPECT().Upload(mock.Anything, mock.Anything, "image/png", pngHeader).Return("http://cdn/recipes/ok.png", nil)
	fx.blobs.EXPECT().Upload(mock.Anything, mock.Anything, "image/png", input.Images[1].Data).Return("", errors.New("bucket full"))
	fx.blobs.EXPECT().Delete(mock.Anything, "http://cdn/recipes/ok.png").Return(nil)

	_, err := fx.service.CreateRecipe(ctx, authorID, input)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}

func TestRecipeService_CreateRecipe_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*usecase.CreateRecipeInput)
	}{
		{name: "missing title", mutate: func(in *usecase.CreateRecipeInput) { in.Title = " " }},
		{name: "zero servings", mutate: func(in *usecase.CreateRecipeInput) { in.Servings = 0 }},
		{name: "no ingredients", mutate: func(in *usecase.CreateRecipeInput) { in.Ingredients = []entity.Ingredient{{Name: " "}} }},
		{name: "negative quantity", mutate: func(in *usecase.CreateRecipeInput) { in.Ingredients[0].Quantity = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRecipeService(t)
			input := validRecipeInput(0)
			tt.mutate(input)

			_, err := fx.service.CreateRecipe(context.Background(), uuid.New(), input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestRecipeService_CreateRecipe_RejectsNonImage(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	authorID := uuid.New()
	input := validRecipeInput(0)
	input.Images = []usecase.Image{{Data: []byte("plain text, not a picture")}}

	fx.identities.EXPECT().Resolve(ctx, authorID).Return(entity.AnonymousIdentity(authorID), nil)

	_, err := fx.service.CreateRecipe(ctx, authorID, input)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRecipeService_CreateRecipe_ImageTooLarge(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	authorID := uuid.New()
	input := validRecipeInput(0)
	input.Images = []usecase.Image{{Data: append(bytes.Clone(pngHeader), make([]byte, 2048)...)}}

	fx.identities.EXPECT().Resolve(ctx, authorID).Return(entity.AnonymousIdentity(authorID), nil)

	_, err := fx.service.CreateRecipe(ctx, authorID, input)
	assert.True(t, errors.Is(err, domainerrors.ErrImageTooLarge))
}

func TestRecipeService_ScaleRecipe(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	recipe := &entity.Recipe{
		ID:       uuid.New(),
		Servings: 3,
		Ingredients: []entity.Ingredient{
			{Name: "flour", Quantity: 1, Unit: "cup"},
			{Name: "eggs", Quantity: 2},
		},
	}

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil).Twice()

	scaled, err := fx.service.ScaleRecipe(ctx, recipe.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, scaled.Servings)
	assert.InDelta(t, 1.67, scaled.Ingredients[0].Quantity, 1e-9)
	assert.InDelta(t, 3.33, scaled.Ingredients[1].Quantity, 1e-9)

	clamped, err := fx.service.ScaleRecipe(ctx, recipe.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, clamped.Servings)
	assert.InDelta(t, 0.33, clamped.Ingredients[0].Quantity, 1e-9)

	assert.Equal(t, 3, recipe.Servings, "stored recipe must not change")
	assert.InDelta(t, 1.0, recipe.Ingredients[0].Quantity, 1e-9)
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.recipeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRecipeNotFound)

	_, err := fx.service.GetRecipe(ctx, id)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_DeleteRecipe(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	recipe := &entity.Recipe{ID: uuid.New(), AuthorID: ownerID, ImageURLs: []string{"http://cdn/recipes/a.png"}}

	fx.recipeRepo.EXPECT().FindByID(ctx, recipe.ID).Return(recipe, nil).Twice()

	err := fx.service.DeleteRecipe(ctx, uuid.New(), recipe.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrNotContentOwner))

	fx.recipeRepo.EXPECT().Delete(ctx, recipe.ID).Return(nil)
	fx.blobs.EXPECT().Delete(mock.Anything, "http://cdn/recipes/a.png").Return(errors.New("already gone"))

	require.NoError(t, fx.service.DeleteRecipe(ctx, ownerID, recipe.ID))
}

func TestRecipeService_ListRecipes_NormalizesLimit(t *testing.T) {
	fx := createTestRecipeService(t)
	ctx := context.Background()

	fx.recipeRepo.EXPECT().List(ctx, repository.ListOptions{Limit: defaultListLimit}).Return([]*entity.Recipe{}, nil)
	fx.recipeRepo.EXPECT().List(ctx, repository.ListOptions{Limit: maxListLimit}).Return([]*entity.Recipe{}, nil)

	_, err := fx.service.ListRecipes(ctx, uuid.Nil, 0)
	require.NoError(t, err)
	_, err = fx.service.ListRecipes(ctx, uuid.Nil, 5000)
	require.NoError(t, err)
}

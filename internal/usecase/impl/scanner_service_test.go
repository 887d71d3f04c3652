package impl

import (
	"context"
	"testing"

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

type scannerServiceFixtures struct {
	service     usecase.ScannerUsecase
	vision      *mockService.MockVisionService
	generator   *mockService.MockTextGenerator
	accountRepo *mockRepo.MockAccountRepository
}

func createTestScannerService(t *testing.T) scannerServiceFixtures {
	fx := scannerServiceFixtures{
		vision:      mockService.NewMockVisionService(t),
		generator:   mockService.NewMockTextGenerator(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
	}
	fx.service = NewScannerService(ScannerServiceParams{
		Vision:      fx.vision,
		Generator:   fx.generator,
		AccountRepo: fx.accountRepo,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestScannerService_IdentifyDish(t *testing.T) {
	fx := createTestScannerService(t)
	ctx := context.Background()
	image := []byte("jpeg bytes")

	fx.vision.EXPECT().DetectLabels(ctx, image).Return([]service.Label{
		{Description: "Food", Score: 0.98},
		{Description: "Noodle", Score: 0.876},
	}, nil)
	fx.generator.EXPECT().
		Generate(ctx, "The image analysis detected these possibilities: Food (98.0%), Noodle (87.6%). Based on this, what is the most likely dish? Provide a one line explanation about the dish.").
		Return("Char kuey teow, stir-fried flat rice noodles.", nil)

	result, err := fx.service.IdentifyDish(ctx, image)
	require.NoError(t, err)
	assert.Equal(t, usecase.DishOutcomeIdentified, result.Outcome)
	assert.Equal(t, "Char kuey teow, stir-fried flat rice noodles.", result.Description)
	assert.Len(t, result.Labels, 2)
}

func TestScannerService_IdentifyDish_NoLabelsSkipsGenerator(t *testing.T) {
	fx := createTestScannerService(t)
	ctx := context.Background()
	image := []byte("blurry")

	fx.vision.EXPECT().DetectLabels(ctx, image).Return(nil, nil)

	result, err := fx.service.IdentifyDish(ctx, image)
	require.NoError(t, err)
	assert.Equal(t, usecase.DishOutcomeNoFoodDetected, result.Outcome)
	fx.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestScannerService_IdentifyDish_EmptyCompletion(t *testing.T) {
	fx := createTestScannerService(t)
	ctx := context.Background()
	image := []byte("jpeg")

	fx.vision.EXPECT().DetectLabels(ctx, image).Return([]service.Label{{Description: "Food", Score: 0.5}}, nil)
	fx.generator.EXPECT().Generate(ctx, "The image analysis detected these possibilities: Food (50.0%). Based on this, what is the most likely dish? Provide a one line explanation about the dish.").Return("  ", nil)

	result, err := fx.service.IdentifyDish(ctx, image)
	require.NoError(t, err)
	assert.Equal(t, NoGeneratorResponse, result.Description)
}

func TestScannerService_IdentifyDish_Failures(t *testing.T) {
	t.Run("vision", func(t *testing.T) {
		fx := createTestScannerService(t)
		ctx := context.Background()
		fx.vision.EXPECT().DetectLabels(ctx, []byte("x")).Return(nil, errors.New("quota exceeded"))

		_, err := fx.service.IdentifyDish(ctx, []byte("x"))
		assert.True(t, errors.Is(err, domainerrors.ErrVisionFailed))
	})

	t.Run("text generation", func(t *testing.T) {
		fx := createTestScannerService(t)
		ctx := context.Background()
		fx.vision.EXPECT().DetectLabels(ctx, []byte("x")).Return([]service.Label{{Description: "Soup", Score: 0.9}}, nil)
		fx.generator.EXPECT().Generate(ctx, "The image analysis detected these possibilities: Soup (90.0%). Based on this, what is the most likely dish? Provide a one line explanation about the dish.").Return("", errors.New("rate limited"))

		_, err := fx.service.IdentifyDish(ctx, []byte("x"))
		assert.True(t, errors.Is(err, domainerrors.ErrTextGenerationFailed))
	})

	t.Run("empty image", func(t *testing.T) {
		fx := createTestScannerService(t)

		_, err := fx.service.IdentifyDish(context.Background(), nil)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestScannerService_HealthierOptions_HealthySkipsGenerator(t *testing.T) {
	fx := createTestScannerService(t)

	answer, err := fx.service.HealthierOptions(context.Background(), []entity.Ingredient{
		{Name: "chicken breast", Quantity: 200, Unit: "g"},
		{Name: "spinach", Quantity: 1, Unit: "bunch"},
	})
	require.NoError(t, err)
	assert.Equal(t, AllIngredientsHealthy, answer)
	fx.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestScannerService_HealthierOptions(t *testing.T) {
	fx := createTestScannerService(t)
	ctx := context.Background()

	fx.generator.EXPECT().
		Generate(ctx, `Without explanation, provide healthier alternatives for the following ingredients that marked as "(unhealthy)": White Rice (unhealthy), chicken (0.5 kg), Palm Oil (unhealthy). No explanation`).
		Return("brown rice, olive oil", nil)
	fx.generator.EXPECT().
		Generate(ctx, "List the total estimated calories, fats, proteins, and carbohydrates for a recipe: brown rice, olive oil. Provide the values only.").
		Return("900 kcal", nil)

	answer, err := fx.service.HealthierOptions(ctx, []entity.Ingredient{
		{Name: "White Rice", Quantity: 2, Unit: "cups"},
		{Name: "chicken", Quantity: 0.5, Unit: "kg"},
		{Name: "Palm Oil", Quantity: 1, Unit: "tbsp"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Healthier Alternatives:\nbrown rice, olive oil\n\nNutrition Information:\n900 kcal", answer)
}

func TestScannerService_EstimateNutrition(t *testing.T) {
	fx := createTestScannerService(t)
	ctx := context.Background()

	fx.generator.EXPECT().
		Generate(ctx, "List the estimated calories, fats, proteins, and carbohydrates for a recipe with the following ingredients: 1.5 cups of rice, 3 of eggs. Provide only the values.").
		Return("600 kcal", nil)

	answer, err := fx.service.EstimateNutrition(ctx, []entity.Ingredient{
		{Name: "rice", Quantity: 1.5, Unit: "cups"},
		{Name: "eggs", Quantity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, "600 kcal", answer)
}

func TestScannerService_DietaryAlternatives_FromProfile(t *testing.T) {
	fx := createTestScannerService(t)
	ctx := context.Background()
	accountID := uuid.New()
	account := personalAccount(accountID, "Priya")
	account.Personal.DietaryRestrictions = []string{"vegetarian"}
	account.Personal.FoodAllergies = []string{"peanuts"}

	fx.accountRepo.EXPECT().FindPersonalByID(ctx, accountID).Return(account, nil)
	fx.generator.EXPECT().
		Generate(ctx, "Given the ingredients: 200 g of chicken, 2 tbsp of peanut sauce, provide alternative ingredients when it violates the following dietary restrictions: vegetarian, peanuts without explanation.").
		Return("tofu, soy sauce", nil)

	answer, err := fx.service.DietaryAlternatives(ctx, accountID, []entity.Ingredient{
		{Name: "chicken", Quantity: 200, Unit: "g"},
		{Name: "peanut sauce", Quantity: 2, Unit: "tbsp"},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "tofu, soy sauce", answer)
}

func TestScannerService_DietaryAlternatives_ExplicitRestrictions(t *testing.T) {
	fx := createTestScannerService(t)
	ctx := context.Background()

	fx.generator.EXPECT().
		Generate(ctx, "Given the ingredients: 1 cup of milk, provide alternative ingredients when it violates the following dietary restrictions: lactose intolerant without explanation.").
		Return("oat milk", nil)

	answer, err := fx.service.DietaryAlternatives(ctx, uuid.New(), []entity.Ingredient{{Name: "milk", Quantity: 1, Unit: "cup"}}, " lactose intolerant ")
	require.NoError(t, err)
	assert.Equal(t, "oat milk", answer)
	fx.accountRepo.AssertNotCalled(t, "FindPersonalByID", mock.Anything, mock.Anything)
}

func TestScannerService_DietaryAlternatives_NoneRecorded(t *testing.T) {
	fx := createTestScannerService(t)
	ctx := context.Background()
	stallID := uuid.New()

	fx.accountRepo.EXPECT().FindPersonalByID(ctx, stallID).Return(nil, repository.ErrAccountNotFound)

	answer, err := fx.service.DietaryAlternatives(ctx, stallID, []entity.Ingredient{{Name: "milk", Quantity: 1, Unit: "cup"}}, "")
	require.NoError(t, err)
	assert.Equal(t, NoDietaryRestrictions, answer)
	fx.generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestScannerService_RequiresIngredients(t *testing.T) {
	fx := createTestScannerService(t)

	_, err := fx.service.EstimateNutrition(context.Background(), []entity.Ingredient{{Name: "  "}})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

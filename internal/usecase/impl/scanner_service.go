package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

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

// Scanner answers that do not come from the text generator.
const (
	AllIngredientsHealthy = "All ingredients are already healthy."
	NoGeneratorResponse   = "No response from the text generator."
	NoDietaryRestrictions = "No dietary restrictions or allergies recorded. Add them to your profile or enter them to check this recipe."
)

const (
	dishPrompt         = "The image analysis detected these possibilities: %s. Based on this, what is the most likely dish? Provide a one line explanation about the dish."
	alternativesPrompt = `Without explanation, provide healthier alternatives for the following ingredients that marked as "(unhealthy)": %s. No explanation`
	totalsPrompt       = "List the total estimated calories, fats, proteins, and carbohydrates for a recipe: %s. Provide the values only."
	nutritionPrompt    = "List the estimated calories, fats, proteins, and carbohydrates for a recipe with the following ingredients: %s. Provide only the values."
	dietaryPrompt      = "Given the ingredients: %s, provide alternative ingredients when it violates the following dietary restrictions: %s without explanation."
	healthierTemplate  = "Healthier Alternatives:\n%s\n\nNutrition Information:\n%s"
)

var unhealthyIngredient = regexp.MustCompile(`(?i)butter|sugar|heavy\scream|salt|oil|fat|lard|msg|artificial|nitrite|nitrate|rice|flour|bread|benzoate`)

type scannerService struct {
	vision      service.VisionService
	generator   service.TextGenerator
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// ScannerServiceParams holds dependencies for ScannerService, injected by Fx.
type ScannerServiceParams struct {
	fx.In

	Vision      service.VisionService
	Generator   service.TextGenerator
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewScannerService creates the food scanner use case.
func NewScannerService(params ScannerServiceParams) usecase.ScannerUsecase {
	return &scannerService{
		vision:      params.Vision,
		generator:   params.Generator,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *scannerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IdentifyDish labels the photo and asks the text generator which dish it most likely shows.
// No generator call is made when the photo yields no labels.
func (srv *scannerService) IdentifyDish(ctx context.Context, image []byte) (*usecase.DishResult, error) {
	if len(image) == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("image is required")
	}

	labels, err := srv.vision.DetectLabels(ctx, image)
	if err != nil {
		srv.log(ctx).Error("Label detection failed", slog.Any("error", err))

		return nil, domainerrors.ErrVisionFailed.WrapMessage(err.Error())
	}

	if len(labels) == 0 {
		return &usecase.DishResult{Outcome: usecase.DishOutcomeNoFoodDetected, Labels: []service.Label{}}, nil
	}

	description, err := srv.generate(ctx, fmt.Sprintf(dishPrompt, formatLabels(labels)))
	if err != nil {
		return nil, err
	}

	return &usecase.DishResult{
		Outcome:     usecase.DishOutcomeIdentified,
		Labels:      labels,
		Description: description,
	}, nil
}

// HealthierOptions marks unhealthy ingredients, asks for substitutes and then for the nutrition
// totals of the substituted recipe.
func (srv *scannerService) HealthierOptions(ctx context.Context, ingredients []entity.Ingredient) (string, error) {
	if err := requireIngredients(ingredients); err != nil {
		return "", err
	}

	details, anyUnhealthy := markUnhealthy(ingredients)
	if !anyUnhealthy {
		return AllIngredientsHealthy, nil
	}

	alternatives, err := srv.generate(ctx, fmt.Sprintf(alternativesPrompt, details))
	if err != nil {
		return "", err
	}

	totals, err := srv.generate(ctx, fmt.Sprintf(totalsPrompt, alternatives))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(healthierTemplate, alternatives, totals), nil
}

// EstimateNutrition asks for the calories and macronutrients of the ingredient list.
func (srv *scannerService) EstimateNutrition(ctx context.Context, ingredients []entity.Ingredient) (string, error) {
	if err := requireIngredients(ingredients); err != nil {
		return "", err
	}

	return srv.generate(ctx, fmt.Sprintf(nutritionPrompt, describeIngredients(ingredients)))
}

// DietaryAlternatives suggests replacements for ingredients that break the restrictions.
func (srv *scannerService) DietaryAlternatives(ctx context.Context, accountID uuid.UUID, ingredients []entity.Ingredient, restrictions string) (string, error) {
	if err := requireIngredients(ingredients); err != nil {
		return "", err
	}

	restrictions = strings.TrimSpace(restrictions)
	if restrictions == "" {
		recorded, err := srv.recordedRestrictions(ctx, accountID)
		if err != nil {
			return "", err
		}
		restrictions = recorded
	}

	if restrictions == "" {
		return NoDietaryRestrictions, nil
	}

	return srv.generate(ctx, fmt.Sprintf(dietaryPrompt, describeIngredients(ingredients), restrictions))
}

// recordedRestrictions joins the personal profile's restrictions and allergies.
// Business accounts have none.
func (srv *scannerService) recordedRestrictions(ctx context.Context, accountID uuid.UUID) (string, error) {
	account, err := srv.accountRepo.FindPersonalByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", nil
		}

		return "", errors.Wrap(err, "failed to load dietary restrictions")
	}

	values := append(compact(account.Personal.DietaryRestrictions), compact(account.Personal.FoodAllergies)...)

	return strings.Join(values, ", "), nil
}

func (srv *scannerService) generate(ctx context.Context, prompt string) (string, error) {
	text, err := srv.generator.Generate(ctx, prompt)
	if err != nil {
		srv.log(ctx).Error("Text generation failed", slog.Any("error", err))

		return "", domainerrors.ErrTextGenerationFailed.WrapMessage(err.Error())
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return NoGeneratorResponse, nil
	}

	return text, nil
}

func requireIngredients(ingredients []entity.Ingredient) error {
	for _, ing := range ingredients {
		if strings.TrimSpace(ing.Name) != "" {
			return nil
		}
	}

	return domainerrors.ErrValidationFailed.WrapMessage("at least one ingredient is required")
}

func formatLabels(labels []service.Label) string {
	parts := make([]string, 0, len(labels))
	for _, label := range labels {
		parts = append(parts, fmt.Sprintf("%s (%.1f%%)", label.Description, label.Score*100))
	}

	return strings.Join(parts, ", ")
}

// markUnhealthy renders "name (unhealthy)" or "name (q unit)" per ingredient.
func markUnhealthy(ingredients []entity.Ingredient) (string, bool) {
	parts := make([]string, 0, len(ingredients))
	anyUnhealthy := false
	for _, ing := range ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		if unhealthyIngredient.MatchString(name) {
			anyUnhealthy = true
			parts = append(parts, name+" (unhealthy)")

			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", name, quantityWithUnit(ing)))
	}

	return strings.Join(parts, ", "), anyUnhealthy
}

// describeIngredients renders "q unit of name" per ingredient.
func describeIngredients(ingredients []entity.Ingredient) string {
	parts := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		name := strings.TrimSpace(ing.Name)
		if name == "" {
			continue
		}
		parts = append(parts, quantityWithUnit(ing)+" of "+name)
	}

	return strings.Join(parts, ", ")
}

func quantityWithUnit(ing entity.Ingredient) string {
	quantity := strconv.FormatFloat(ing.Quantity, 'f', -1, 64)
	unit := strings.TrimSpace(ing.Unit)
	if unit == "" {
		return quantity
	}

	return quantity + " " + unit
}

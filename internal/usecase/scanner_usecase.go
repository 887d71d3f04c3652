package usecase

import (
	"context"

	"makan/internal/domain/entity"
	"makan/internal/domain/service"

	"github.com/google/uuid"
)

// DishOutcome tells whether the scanner recognised anything.
type DishOutcome string

const (
	DishOutcomeIdentified     DishOutcome = "identified"
	DishOutcomeNoFoodDetected DishOutcome = "no_food_detected"
)

// DishResult is the scanner's answer for a photographed dish.
type DishResult struct {
	Outcome     DishOutcome     `json:"outcome"`
	Labels      []service.Label `json:"labels"`
	Description string          `json:"description,omitempty"`
}

// ScannerUsecase wraps the vision and text-generation backends behind the food scanner.
type ScannerUsecase interface {
	IdentifyDish(ctx context.Context, image []byte) (*DishResult, error)
	// HealthierOptions suggests substitutes for unhealthy ingredients and estimates nutrition totals.
	HealthierOptions(ctx context.Context, ingredients []entity.Ingredient) (string, error)
	EstimateNutrition(ctx context.Context, ingredients []entity.Ingredient) (string, error)
	// DietaryAlternatives checks ingredients against the given restrictions, or the account's
	// recorded restrictions and allergies when none are given.
	DietaryAlternatives(ctx context.Context, accountID uuid.UUID, ingredients []entity.Ingredient, restrictions string) (string, error)
}

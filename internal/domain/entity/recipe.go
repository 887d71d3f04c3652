package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Ingredient is one line of a recipe.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Recipe is a user-uploaded recipe. AuthorName is a snapshot taken at creation.
type Recipe struct {
	ID           uuid.UUID    `json:"id"`
	Title        string       `json:"title"`
	Servings     int          `json:"servings"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions string       `json:"instructions"`
	ImageURLs    []string     `json:"image_urls"`
	AuthorID     uuid.UUID    `json:"author_id"`
	AuthorName   string       `json:"author_name"`
	CreatedAt    time.Time    `json:"created_at"`
}

// Scale returns a copy of the recipe adjusted to the given servings.
// Quantities are rounded to two decimals and servings below one are treated as one.
// The receiver is left untouched.
func (r *Recipe) Scale(servings int) *Recipe {
	servings = max(servings, 1)
	original := max(r.Servings, 1)
	ratio := float64(servings) / float64(original)

	scaled := *r
	scaled.Servings = servings
	scaled.Ingredients = make([]Ingredient, len(r.Ingredients))
	for i, ing := range r.Ingredients {
		ing.Quantity = math.Round(ing.Quantity*ratio*100) / 100
		scaled.Ingredients[i] = ing
	}
	scaled.ImageURLs = append([]string(nil), r.ImageURLs...)

	return &scaled
}

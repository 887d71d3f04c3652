package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipe_Scale(t *testing.T) {
	recipe := &Recipe{
		Title:    "Nasi Lemak",
		Servings: 3,
		Ingredients: []Ingredient{
			{Name: "rice", Quantity: 2, Unit: "cup"},
			{Name: "coconut milk", Quantity: 1, Unit: "cup"},
		},
		ImageURLs: []string{"https://img/1.jpg"},
	}

	tests := []struct {
		name         string
		servings     int
		wantServings int
		wantRice     float64
		wantMilk     float64
	}{
		{name: "double", servings: 6, wantServings: 6, wantRice: 4, wantMilk: 2},
		{name: "rounds to two decimals", servings: 2, wantServings: 2, wantRice: 1.33, wantMilk: 0.67},
		{name: "same servings", servings: 3, wantServings: 3, wantRice: 2, wantMilk: 1},
		{name: "zero clamps to one", servings: 0, wantServings: 1, wantRice: 0.67, wantMilk: 0.33},
		{name: "negative clamps to one", servings: -4, wantServings: 1, wantRice: 0.67, wantMilk: 0.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scaled := recipe.Scale(tt.servings)

			require.Len(t, scaled.Ingredients, 2)
			assert.Equal(t, tt.wantServings, scaled.Servings)
			assert.InDelta(t, tt.wantRice, scaled.Ingredients[0].Quantity, 1e-9)
			assert.InDelta(t, tt.wantMilk, scaled.Ingredients[1].Quantity, 1e-9)
		})
	}

	// The original is never mutated.
	assert.Equal(t, 3, recipe.Servings)
	assert.InDelta(t, 2.0, recipe.Ingredients[0].Quantity, 1e-9)
}

func TestRecipe_Scale_ZeroOriginalServings(t *testing.T) {
	recipe := &Recipe{Servings: 0, Ingredients: []Ingredient{{Name: "egg", Quantity: 2}}}

	scaled := recipe.Scale(2)

	assert.InDelta(t, 4.0, scaled.Ingredients[0].Quantity, 1e-9)
}

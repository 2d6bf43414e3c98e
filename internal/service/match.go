package service

import (
	"strings"

	"github.com/replate-app/backend/internal/models"
)

// MissingIngredient describes a recipe requirement the pantry cannot
// fully satisfy.
type MissingIngredient struct {
	Name      string  `json:"name"`
	Needed    float64 `json:"needed"`
	Available float64 `json:"available"`
	Missing   float64 `json:"missing"`
	Unit      string  `json:"unit"`
}

// RecipeMatch is a recipe annotated with pantry coverage data.
type RecipeMatch struct {
	models.Recipe
	AvailableIngredients int                 `json:"availableIngredients"`
	TotalIngredients     int                 `json:"totalIngredients"`
	Coverage             float64             `json:"coverage"`
	MissingIngredients   []MissingIngredient `json:"missingIngredients"`
}

// ingredientsMatch resolves ingredient identity by case-insensitive
// substring containment in either direction, so a "Chicken" pantry
// entry satisfies a recipe's "Chicken Breast". Loose on purpose:
// "Lime" also satisfies "Lime Juice". Do not tighten to an exact
// match; the product depends on this behavior.
func ingredientsMatch(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// pantryAmount returns the quantity on hand for the named ingredient.
// Pantry items are scanned in name order; the first fuzzy match wins.
func pantryAmount(pantry []models.PantryItem, name string) float64 {
	for _, item := range pantry {
		if ingredientsMatch(item.Ingredient.Name, name) {
			return item.Qty
		}
	}
	return 0
}

// CoverRecipe annotates a recipe with which of its ingredients the
// pantry covers in sufficient quantity and which are missing.
func CoverRecipe(pantry []models.PantryItem, r models.Recipe) RecipeMatch {
	match := RecipeMatch{
		Recipe:             r,
		TotalIngredients:   len(r.Ingredients),
		MissingIngredients: []MissingIngredient{},
	}

	for _, req := range r.Ingredients {
		available := pantryAmount(pantry, req.Name)
		missing := req.Quantity - available
		if missing <= 0 {
			match.AvailableIngredients++
			continue
		}
		match.MissingIngredients = append(match.MissingIngredients, MissingIngredient{
			Name:      req.Name,
			Needed:    req.Quantity,
			Available: available,
			Missing:   missing,
			Unit:      req.Unit,
		})
	}

	if match.TotalIngredients > 0 {
		match.Coverage = float64(match.AvailableIngredients) / float64(match.TotalIngredients)
	}
	return match
}

// HasMainIngredient reports whether the recipe's first listed
// ingredient is present in the pantry at all. Recipes failing this
// gate are not surfaced regardless of overall coverage. Recipes with
// no ingredient list pass.
func HasMainIngredient(pantry []models.PantryItem, r models.Recipe) bool {
	if len(r.Ingredients) == 0 {
		return true
	}
	main := r.Ingredients[0].Name
	for _, item := range pantry {
		if ingredientsMatch(item.Ingredient.Name, main) {
			return true
		}
	}
	return false
}

package store

import (
	"context"
	"errors"

	"github.com/replate-app/backend/internal/models"
)

// Sentinel errors mapped to HTTP status codes by the API layer.
var (
	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrRecipeNotFound     = errors.New("recipe not found")
)

// Store is the persistence boundary for all Replate state. It is
// constructed once at startup and injected into handlers and services;
// tests get a fresh MemoryStore each.
type Store interface {
	// Ingredient catalog
	ListIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetIngredient(ctx context.Context, id string) (*models.Ingredient, error)
	CreateIngredient(ctx context.Context, ing *models.Ingredient) error
	SearchIngredients(ctx context.Context, query string) ([]models.Ingredient, error)

	// Pantry. AddPantryItem merges into an existing entry for the same
	// ingredient and reports whether one existed. RemovePantryItem is
	// idempotent: removing an absent entry is not an error.
	ListPantry(ctx context.Context, userID string) ([]models.PantryItem, error)
	AddPantryItem(ctx context.Context, userID, ingredientID string, qty float64) (*models.PantryItem, bool, error)
	RemovePantryItem(ctx context.Context, userID, ingredientID string) error

	// Recipe catalog
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error)
	CreateRecipe(ctx context.Context, r *models.Recipe) error

	// Meal plan
	GetMealPlan(ctx context.Context, userID string) (models.MealPlan, error)
	AddMealPlanEntry(ctx context.Context, entry *models.MealPlanEntry) error
	RemoveMealPlanEntry(ctx context.Context, day, mealID string) error

	// Dietary preferences. GetPreferences returns (nil, nil) when the
	// user has no saved profile.
	GetPreferences(ctx context.Context, userID string) (*models.DietaryPreferences, error)
	SavePreferences(ctx context.Context, userID string, prefs models.DietaryPreferences) error

	// Mood log, newest first.
	ListMoodEntries(ctx context.Context, userID string) ([]models.MoodEntry, error)
	CreateMoodEntry(ctx context.Context, entry *models.MoodEntry) error
}

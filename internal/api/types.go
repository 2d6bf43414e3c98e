package api

import (
	"time"

	"github.com/replate-app/backend/internal/models"
	"github.com/replate-app/backend/internal/service"
)

// DefaultUserID is assumed when a request does not name a user, the
// demo frontend's single user.
const DefaultUserID = "demo-user-123"

// CustomIngredient describes a user-defined ingredient added straight
// into the pantry.
type CustomIngredient struct {
	Name string  `json:"name"`
	Unit string  `json:"unit"`
	Qty  float64 `json:"qty"`
}

// AddPantryRequest adds a known or custom ingredient to the pantry.
type AddPantryRequest struct {
	UserID           string            `json:"userId"`
	IngredientID     string            `json:"ingredientId"`
	Qty              float64           `json:"qty"`
	CustomIngredient *CustomIngredient `json:"customIngredient"`
}

// AddMealPlanRequest places a recipe snapshot into a meal slot.
type AddMealPlanRequest struct {
	UserID   string         `json:"userId"`
	Day      string         `json:"day"`
	MealTime string         `json:"mealTime"`
	Recipe   *models.Recipe `json:"recipe"`
}

// SavePreferencesRequest saves a user's dietary profile.
type SavePreferencesRequest struct {
	UserID      string                     `json:"userId"`
	Preferences *models.DietaryPreferences `json:"preferences"`
}

// SuggestRequest asks for recipe suggestions. Preferences, when
// present, override the saved profile for this request only.
type SuggestRequest struct {
	UserID      string                     `json:"userId"`
	Preferences *models.DietaryPreferences `json:"preferences"`
	service.RankingOptions
}

// MoodRequest logs a post-meal mood.
type MoodRequest struct {
	UserID    string     `json:"userId"`
	MealID    string     `json:"mealId"`
	Mood      string     `json:"mood"`
	Timestamp *time.Time `json:"timestamp"`
}

package models

import "time"

// Meal slots for a meal plan day.
const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
)

// ValidMealTime reports whether s names a known meal slot.
func ValidMealTime(s string) bool {
	return s == MealBreakfast || s == MealLunch || s == MealDinner
}

// MealPlanEntry is one planned meal. The recipe is a snapshot copied at
// insertion time, not a live reference into the catalog.
type MealPlanEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:64;index" json:"userId"`
	Day       string    `gorm:"size:16;index" json:"day"`
	MealTime  string    `gorm:"size:16" json:"mealTime"`
	Recipe    Recipe    `gorm:"serializer:json" json:"recipe"`
	CreatedAt time.Time `json:"createdAt"`
}

// MealPlan maps day -> meal slot -> entries, the shape returned by
// GET /meal-plan/:userId.
type MealPlan map[string]map[string][]MealPlanEntry

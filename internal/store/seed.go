package store

import (
	"context"
	"fmt"

	"github.com/replate-app/backend/internal/models"
)

// DemoUserID is the user the demo frontend operates as.
const DemoUserID = "demo-user-123"

// Seed loads the demo ingredient catalog, recipe catalog and starter
// pantry. Safe to call only on an empty store.
func Seed(ctx context.Context, s Store) error {
	ingredients := []models.Ingredient{
		{ID: "1", Name: "Chicken Breast", Unit: "lbs"},
		{ID: "2", Name: "Rice", Unit: "cups"},
		{ID: "3", Name: "Onion", Unit: "pieces"},
		{ID: "4", Name: "Garlic", Unit: "cloves"},
		{ID: "5", Name: "Tomato", Unit: "pieces"},
		{ID: "6", Name: "Olive Oil", Unit: "tbsp"},
		{ID: "7", Name: "Salt", Unit: "tsp"},
		{ID: "8", Name: "Black Pepper", Unit: "tsp"},
		{ID: "9", Name: "Eggs", Unit: "pieces"},
		{ID: "10", Name: "Milk", Unit: "cups"},
	}
	for i := range ingredients {
		if err := s.CreateIngredient(ctx, &ingredients[i]); err != nil {
			return fmt.Errorf("failed to seed ingredient %s: %w", ingredients[i].Name, err)
		}
	}

	for i := range demoRecipes {
		r := demoRecipes[i]
		if err := s.CreateRecipe(ctx, &r); err != nil {
			return fmt.Errorf("failed to seed recipe %s: %w", r.Title, err)
		}
	}

	// Starter pantry for the demo user.
	starter := []struct {
		ingredientID string
		qty          float64
	}{
		{"1", 2}, // Chicken Breast
		{"3", 1}, // Onion
		{"4", 3}, // Garlic
		{"9", 6}, // Eggs
	}
	for _, item := range starter {
		if _, _, err := s.AddPantryItem(ctx, DemoUserID, item.ingredientID, item.qty); err != nil {
			return fmt.Errorf("failed to seed pantry: %w", err)
		}
	}

	return nil
}

// demoRecipes is the static recipe catalog, also used as the
// deterministic fallback when the AI suggestion path is unavailable.
var demoRecipes = []models.Recipe{
	{
		ID:           "1",
		Title:        "Simple Chicken and Rice",
		Minutes:      30,
		Calories:     450,
		Protein:      35.5,
		Carbs:        45,
		Fat:          8,
		Instructions: "1. Season chicken with salt and pepper.\n2. Cook chicken in olive oil until golden.\n3. Add rice and water, simmer until cooked.\n4. Serve hot.",
		PhotoURL:     "https://images.unsplash.com/photo-1565299624946-b28f40a0ca4b?w=500",
		Ingredients: models.RecipeIngredientList{
			{Name: "Chicken Breast", Quantity: 1, Unit: "lbs"},
			{Name: "Rice", Quantity: 1.5, Unit: "cups"},
			{Name: "Onion", Quantity: 1, Unit: "pieces"},
			{Name: "Garlic", Quantity: 2, Unit: "cloves"},
			{Name: "Olive Oil", Quantity: 2, Unit: "tbsp"},
		},
	},
	{
		ID:           "2",
		Title:        "Scrambled Eggs",
		Minutes:      10,
		Calories:     200,
		Protein:      15.0,
		Carbs:        2,
		Fat:          14,
		Instructions: "1. Beat eggs with milk, salt, and pepper.\n2. Heat butter in pan.\n3. Add eggs and scramble gently.\n4. Serve immediately.",
		PhotoURL:     "https://images.unsplash.com/photo-1525351484163-7529414344d8?w=500",
		Ingredients: models.RecipeIngredientList{
			{Name: "Eggs", Quantity: 3, Unit: "pieces"},
			{Name: "Milk", Quantity: 0.25, Unit: "cups"},
			{Name: "Butter", Quantity: 1, Unit: "tbsp"},
			{Name: "Salt", Quantity: 0.5, Unit: "tsp"},
			{Name: "Black Pepper", Quantity: 0.25, Unit: "tsp"},
		},
	},
	{
		ID:           "3",
		Title:        "Vegan Buddha Bowl",
		Minutes:      25,
		Calories:     320,
		Protein:      12,
		Carbs:        35,
		Fat:          15,
		Instructions: "1. Roast vegetables with olive oil.\n2. Cook quinoa.\n3. Prepare tahini dressing.\n4. Combine all ingredients in a bowl.",
		PhotoURL:     "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=500",
		Ingredients: models.RecipeIngredientList{
			{Name: "Quinoa", Quantity: 1, Unit: "cups"},
			{Name: "Tahini", Quantity: 2, Unit: "tbsp"},
			{Name: "Olive Oil", Quantity: 1, Unit: "tbsp"},
			{Name: "Garlic", Quantity: 1, Unit: "cloves"},
			{Name: "Tomato", Quantity: 2, Unit: "pieces"},
		},
	},
	{
		ID:           "4",
		Title:        "Keto Salmon with Asparagus",
		Minutes:      20,
		Calories:     380,
		Protein:      28,
		Carbs:        8,
		Fat:          25,
		Instructions: "1. Season salmon with herbs.\n2. Pan-sear salmon.\n3. Roast asparagus with olive oil.\n4. Serve together.",
		PhotoURL:     "https://images.unsplash.com/photo-1467003909585-2f8a72700288?w=500",
		Ingredients: models.RecipeIngredientList{
			{Name: "Salmon", Quantity: 1, Unit: "lbs"},
			{Name: "Asparagus", Quantity: 1, Unit: "bunch"},
			{Name: "Olive Oil", Quantity: 1, Unit: "tbsp"},
			{Name: "Salt", Quantity: 1, Unit: "tsp"},
		},
	},
	{
		ID:           "5",
		Title:        "Mediterranean Pasta",
		Minutes:      35,
		Calories:     420,
		Protein:      18,
		Carbs:        55,
		Fat:          12,
		Instructions: "1. Cook pasta.\n2. Sauté garlic and tomatoes in olive oil.\n3. Add herbs and olives.\n4. Toss with pasta.",
		PhotoURL:     "https://images.unsplash.com/photo-1621996346565-e3dbc353d2e5?w=500",
		Ingredients: models.RecipeIngredientList{
			{Name: "Pasta", Quantity: 1, Unit: "lbs"},
			{Name: "Olives", Quantity: 0.5, Unit: "cups"},
			{Name: "Garlic", Quantity: 2, Unit: "cloves"},
			{Name: "Tomato", Quantity: 3, Unit: "pieces"},
			{Name: "Olive Oil", Quantity: 2, Unit: "tbsp"},
			{Name: "Salt", Quantity: 1, Unit: "tsp"},
		},
	},
}

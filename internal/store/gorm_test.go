package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replate-app/backend/internal/models"
)

func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	st, err := Open(":memory:")
	require.NoError(t, err)
	return st
}

func TestGormStoreAddPantryItemMergesQuantities(t *testing.T) {
	ctx := context.Background()
	st := newTestGormStore(t)
	require.NoError(t, st.CreateIngredient(ctx, &models.Ingredient{ID: "1", Name: "Rice", Unit: "cups"}))

	first, wasExisting, err := st.AddPantryItem(ctx, "u1", "1", 2)
	require.NoError(t, err)
	assert.False(t, wasExisting)
	assert.Equal(t, 2.0, first.Qty)

	second, wasExisting, err := st.AddPantryItem(ctx, "u1", "1", 3)
	require.NoError(t, err)
	assert.True(t, wasExisting)
	assert.Equal(t, 5.0, second.Qty)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Rice", second.Ingredient.Name)
}

func TestGormStoreAddPantryItemUnknownIngredient(t *testing.T) {
	st := newTestGormStore(t)

	_, _, err := st.AddPantryItem(context.Background(), "u1", "missing", 1)
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestGormStoreRemovePantryItemIdempotent(t *testing.T) {
	ctx := context.Background()
	st := newTestGormStore(t)
	require.NoError(t, st.CreateIngredient(ctx, &models.Ingredient{ID: "1", Name: "Rice", Unit: "cups"}))
	_, _, err := st.AddPantryItem(ctx, "u1", "1", 2)
	require.NoError(t, err)

	require.NoError(t, st.RemovePantryItem(ctx, "u1", "1"))
	require.NoError(t, st.RemovePantryItem(ctx, "u1", "1"))

	items, err := st.ListPantry(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGormStoreRecipeIngredientsRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestGormStore(t)

	recipe := models.Recipe{
		Title:        "Simple Chicken and Rice",
		Instructions: "Cook it.",
		Ingredients: models.RecipeIngredientList{
			{Name: "Chicken Breast", Quantity: 1, Unit: "lbs"},
			{Name: "Rice", Quantity: 1.5, Unit: "cups"},
		},
	}
	require.NoError(t, st.CreateRecipe(ctx, &recipe))
	assert.NotEmpty(t, recipe.ID)

	recipes, err := st.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	require.Len(t, recipes[0].Ingredients, 2)
	assert.Equal(t, "Chicken Breast", recipes[0].Ingredients[0].Name)
	assert.Equal(t, 1.5, recipes[0].Ingredients[1].Quantity)
}

func TestGormStoreSearchRecipes(t *testing.T) {
	ctx := context.Background()
	st := newTestGormStore(t)
	require.NoError(t, Seed(ctx, st))

	matches, err := st.SearchRecipes(ctx, "chicken")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Simple Chicken and Rice", matches[0].Title)

	matches, err = st.SearchRecipes(ctx, "SALMON")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Keto Salmon with Asparagus", matches[0].Title)
}

func TestGormStorePreferencesUpsert(t *testing.T) {
	ctx := context.Background()
	st := newTestGormStore(t)

	prefs, err := st.GetPreferences(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, prefs)

	require.NoError(t, st.SavePreferences(ctx, "u1", models.DietaryPreferences{
		Diet: "keto", Allergies: []string{}, RestrictedIngredients: []string{},
	}))
	require.NoError(t, st.SavePreferences(ctx, "u1", models.DietaryPreferences{
		Diet: "vegan", Allergies: []string{"dairy"}, RestrictedIngredients: []string{},
	}))

	prefs, err = st.GetPreferences(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, "vegan", prefs.Diet)
	assert.Equal(t, []string{"dairy"}, prefs.Allergies)
}

func TestGormStoreMealPlanRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestGormStore(t)

	entry := models.MealPlanEntry{
		UserID:   "u1",
		Day:      "friday",
		MealTime: "dinner",
		Recipe:   models.Recipe{Title: "Mediterranean Pasta"},
	}
	require.NoError(t, st.AddMealPlanEntry(ctx, &entry))

	plan, err := st.GetMealPlan(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, plan["friday"]["dinner"], 1)
	assert.Equal(t, "Mediterranean Pasta", plan["friday"]["dinner"][0].Recipe.Title)

	require.NoError(t, st.RemoveMealPlanEntry(ctx, "friday", entry.ID))
	plan, err = st.GetMealPlan(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestGormStoreMoodEntriesNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := newTestGormStore(t)

	for _, mood := range []string{"calm", "energized", "sleepy"} {
		require.NoError(t, st.CreateMoodEntry(ctx, &models.MoodEntry{UserID: "u1", Mood: mood}))
	}

	entries, err := st.ListMoodEntries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replate-app/backend/internal/models"
)

func TestMemoryStoreAddPantryItemMergesQuantities(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.CreateIngredient(ctx, &models.Ingredient{ID: "1", Name: "Rice", Unit: "cups"}))

	first, wasExisting, err := st.AddPantryItem(ctx, "u1", "1", 2)
	require.NoError(t, err)
	assert.False(t, wasExisting)
	assert.Equal(t, 2.0, first.Qty)

	second, wasExisting, err := st.AddPantryItem(ctx, "u1", "1", 1.5)
	require.NoError(t, err)
	assert.True(t, wasExisting)
	assert.Equal(t, 3.5, second.Qty)
	assert.Equal(t, first.ID, second.ID)

	items, err := st.ListPantry(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3.5, items[0].Qty)
}

func TestMemoryStoreAddPantryItemUnknownIngredient(t *testing.T) {
	st := NewMemoryStore()

	_, _, err := st.AddPantryItem(context.Background(), "u1", "missing", 1)
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestMemoryStoreRemovePantryItemIdempotent(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.CreateIngredient(ctx, &models.Ingredient{ID: "1", Name: "Rice", Unit: "cups"}))
	_, _, err := st.AddPantryItem(ctx, "u1", "1", 2)
	require.NoError(t, err)

	require.NoError(t, st.RemovePantryItem(ctx, "u1", "1"))
	// Removing again, or removing something never added, is fine.
	require.NoError(t, st.RemovePantryItem(ctx, "u1", "1"))
	require.NoError(t, st.RemovePantryItem(ctx, "u1", "never-added"))

	items, err := st.ListPantry(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMemoryStorePantryIsPerUser(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, st.CreateIngredient(ctx, &models.Ingredient{ID: "1", Name: "Rice", Unit: "cups"}))

	_, _, err := st.AddPantryItem(ctx, "u1", "1", 2)
	require.NoError(t, err)

	other, err := st.ListPantry(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMemoryStoreSearchIngredients(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, Seed(ctx, st))

	matches, err := st.SearchIngredients(ctx, "chick")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Chicken Breast", matches[0].Name)

	matches, err = st.SearchIngredients(ctx, "OLIVE")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "Olive Oil", matches[0].Name)
}

func TestMemoryStoreMealPlanGrouping(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	entries := []models.MealPlanEntry{
		{UserID: "u1", Day: "monday", MealTime: "breakfast", Recipe: models.Recipe{Title: "Eggs"}},
		{UserID: "u1", Day: "monday", MealTime: "dinner", Recipe: models.Recipe{Title: "Chicken"}},
		{UserID: "u1", Day: "tuesday", MealTime: "lunch", Recipe: models.Recipe{Title: "Pasta"}},
		{UserID: "u2", Day: "monday", MealTime: "breakfast", Recipe: models.Recipe{Title: "Toast"}},
	}
	for i := range entries {
		require.NoError(t, st.AddMealPlanEntry(ctx, &entries[i]))
	}

	plan, err := st.GetMealPlan(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, plan, 2)
	assert.Len(t, plan["monday"]["breakfast"], 1)
	assert.Len(t, plan["monday"]["dinner"], 1)
	assert.Len(t, plan["tuesday"]["lunch"], 1)
	assert.Equal(t, "Eggs", plan["monday"]["breakfast"][0].Recipe.Title)
}

func TestMemoryStoreRemoveMealPlanEntry(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	entry := models.MealPlanEntry{UserID: "u1", Day: "monday", MealTime: "dinner", Recipe: models.Recipe{Title: "Chicken"}}
	require.NoError(t, st.AddMealPlanEntry(ctx, &entry))

	require.NoError(t, st.RemoveMealPlanEntry(ctx, "monday", entry.ID))
	require.NoError(t, st.RemoveMealPlanEntry(ctx, "monday", entry.ID))

	plan, err := st.GetMealPlan(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestMemoryStorePreferencesRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	prefs, err := st.GetPreferences(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, prefs)

	saved := models.DietaryPreferences{
		Diet:                  "vegan",
		Allergies:             []string{"peanuts"},
		RestrictedIngredients: []string{"cilantro"},
	}
	require.NoError(t, st.SavePreferences(ctx, "u1", saved))

	prefs, err = st.GetPreferences(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, prefs)
	assert.Equal(t, saved, *prefs)
}

func TestMemoryStoreMoodEntriesNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	base := time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC)
	for i, mood := range []string{"calm", "energized", "sleepy"} {
		require.NoError(t, st.CreateMoodEntry(ctx, &models.MoodEntry{
			UserID:    "u1",
			Mood:      mood,
			Timestamp: base.Add(time.Duration(i) * 4 * time.Hour),
		}))
	}

	entries, err := st.ListMoodEntries(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "sleepy", entries[0].Mood)
	assert.Equal(t, "calm", entries[2].Mood)
}

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	require.NoError(t, Seed(ctx, st))

	ingredients, err := st.ListIngredients(ctx)
	require.NoError(t, err)
	assert.Len(t, ingredients, 10)

	recipes, err := st.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, recipes, 5)

	pantry, err := st.ListPantry(ctx, DemoUserID)
	require.NoError(t, err)
	assert.Len(t, pantry, 4)
}

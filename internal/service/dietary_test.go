package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/replate-app/backend/internal/models"
)

func TestContainsAllergenKeywordExpansion(t *testing.T) {
	scrambled := models.Recipe{
		Title:        "Scrambled Eggs",
		Instructions: "Beat eggs with milk. Heat butter in pan.",
	}

	// "dairy" expands to milk, butter and friends even though the
	// literal word dairy never appears.
	assert.True(t, ContainsAllergen(scrambled, "dairy"))
	assert.True(t, ContainsAllergen(scrambled, "eggs"))
	assert.False(t, ContainsAllergen(scrambled, "shellfish"))
}

func TestContainsAllergenFallsBackToAllergyName(t *testing.T) {
	r := models.Recipe{Title: "Strawberry Tart", Instructions: "Arrange strawberries on the crust."}

	assert.True(t, ContainsAllergen(r, "strawberry"))
	assert.False(t, ContainsAllergen(r, "kiwi"))
}

func TestDietCompatibleExclusions(t *testing.T) {
	chicken := models.Recipe{Title: "Simple Chicken and Rice"}
	buddhaBowl := models.Recipe{Title: "Buddha Bowl", Instructions: "Roast vegetables. Cook quinoa. Add tahini."}
	porkWine := models.Recipe{Title: "Pork Chops with Wine Sauce"}

	assert.False(t, DietCompatible(chicken, "vegetarian"))
	assert.False(t, DietCompatible(chicken, "vegan"))
	assert.True(t, DietCompatible(buddhaBowl, "vegan"))
	assert.False(t, DietCompatible(porkWine, "halal"))
	assert.False(t, DietCompatible(porkWine, "kosher"))
}

func TestDietCompatibleInclusions(t *testing.T) {
	pasta := models.Recipe{
		Title:        "Mediterranean Pasta",
		Instructions: "Saute garlic and tomatoes in olive oil.",
	}
	steak := models.Recipe{Title: "Grilled Steak", Instructions: "Season and grill the steak."}

	// Mediterranean and DASH accept only recipes featuring their
	// keywords, the opposite polarity of the exclusion diets.
	assert.True(t, DietCompatible(pasta, "mediterranean"))
	assert.False(t, DietCompatible(steak, "mediterranean"))
	assert.False(t, DietCompatible(steak, "dash"))
}

func TestDietCompatibleCarbThresholds(t *testing.T) {
	// 2g carbs of 200 kcal is 4% of calories from carbs.
	eggs := models.Recipe{Title: "Scrambled Eggs", Calories: 200, Carbs: 2}
	// 55g carbs of 420 kcal is ~52%.
	pasta := models.Recipe{Title: "Pasta", Calories: 420, Carbs: 55}
	// 45g carbs of 450 kcal is 40%.
	chickenRice := models.Recipe{Title: "Chicken and Rice", Calories: 450, Carbs: 45}

	assert.True(t, DietCompatible(eggs, "keto"))
	assert.False(t, DietCompatible(pasta, "keto"))
	assert.False(t, DietCompatible(chickenRice, "low-carb"))
	assert.True(t, DietCompatible(eggs, "low-carb"))
}

func TestDietCompatibleCarbEdgeCases(t *testing.T) {
	// No carbs is always compatible regardless of calories.
	assert.True(t, DietCompatible(models.Recipe{Carbs: 0, Calories: 0}, "keto"))
	// Missing calorie data counts as one calorie, so any carbs at all
	// blow past the threshold instead of passing silently.
	assert.False(t, DietCompatible(models.Recipe{Carbs: 5, Calories: 0}, "keto"))
}

func TestDietCompatibleUnknownDietPasses(t *testing.T) {
	r := models.Recipe{Title: "Bacon Cheeseburger"}

	assert.True(t, DietCompatible(r, "none"))
	assert.True(t, DietCompatible(r, ""))
	assert.True(t, DietCompatible(r, "flexitarian"))
}

func TestFilterByPreferences(t *testing.T) {
	recipes := []RecipeMatch{
		{Recipe: models.Recipe{Title: "Simple Chicken and Rice"}},
		{Recipe: models.Recipe{Title: "Scrambled Eggs", Instructions: "Beat eggs with milk and butter."}},
		{Recipe: models.Recipe{Title: "Vegan Buddha Bowl", Instructions: "Roast vegetables, cook quinoa, add tahini."}},
	}

	vegan := FilterByPreferences(recipes, models.DietaryPreferences{Diet: "vegan"})
	assert.Len(t, vegan, 1)
	assert.Equal(t, "Vegan Buddha Bowl", vegan[0].Title)

	noDairy := FilterByPreferences(recipes, models.DietaryPreferences{
		Diet:      "none",
		Allergies: []string{"dairy"},
	})
	assert.Len(t, noDairy, 2)

	noChicken := FilterByPreferences(recipes, models.DietaryPreferences{
		Diet:                  "none",
		RestrictedIngredients: []string{"chicken"},
	})
	assert.Len(t, noChicken, 2)

	everything := FilterByPreferences(recipes, models.DefaultPreferences())
	assert.Len(t, everything, 3)
}

func TestFilterByPreferencesSesameAllergyCatchesTahini(t *testing.T) {
	recipes := []RecipeMatch{
		{Recipe: models.Recipe{Title: "Vegan Buddha Bowl", Instructions: "Prepare tahini dressing."}},
	}

	filtered := FilterByPreferences(recipes, models.DietaryPreferences{
		Diet:      "none",
		Allergies: []string{"sesame"},
	})
	assert.Empty(t, filtered)
}

package service

import (
	"strings"

	"github.com/replate-app/backend/internal/models"
)

// allergenKeywords expands a user-facing allergy category into the
// keywords checked against recipe text. Allergies without an entry
// fall back to the allergy name itself.
var allergenKeywords = map[string][]string{
	"peanuts":   {"peanut", "peanut butter", "peanut oil", "groundnut", "arachis"},
	"tree nuts": {"almond", "walnut", "cashew", "pistachio", "hazelnut", "pecan", "brazil nut", "macadamia", "pine nut"},
	"shellfish": {"shrimp", "crab", "lobster", "crayfish", "prawn", "scallop", "oyster", "mussel", "clam", "squid", "octopus"},
	"fish":      {"salmon", "tuna", "cod", "halibut", "mackerel", "sardine", "anchovy", "fish sauce", "seafood"},
	"eggs":      {"egg", "egg white", "egg yolk", "mayonnaise", "meringue", "albumen"},
	"dairy":     {"milk", "cheese", "butter", "cream", "yogurt", "whey", "casein", "lactose", "dairy"},
	"soy":       {"soy", "soybean", "tofu", "tempeh", "miso", "soy sauce", "edamame", "soy milk"},
	"wheat":     {"wheat", "flour", "bread", "pasta", "couscous", "bulgur", "seitan"},
	"gluten":    {"wheat", "barley", "rye", "oats", "flour", "bread", "pasta", "beer", "gluten"},
	"sesame":    {"sesame", "tahini", "sesame oil", "sesame seed", "benne"},
}

// dietExclusions rejects a recipe when any keyword appears in its text.
var dietExclusions = map[string][]string{
	"vegetarian": {"chicken", "beef", "pork", "fish", "meat", "bacon", "ham", "turkey", "lamb"},
	"vegan":      {"chicken", "beef", "pork", "fish", "meat", "bacon", "ham", "turkey", "lamb", "milk", "cheese", "butter", "cream", "yogurt", "egg"},
	"halal":      {"pork", "bacon", "ham", "alcohol", "wine", "beer", "liquor"},
	"kosher":     {"pork", "shellfish", "bacon", "ham", "alcohol", "wine", "mixing meat dairy"},
	"paleo":      {"grain", "wheat", "rice", "dairy", "processed", "sugar", "legume"},
}

// dietInclusions accepts a recipe only when at least one keyword
// appears in its text. The inverted polarity versus dietExclusions is
// intentional: these diets are defined by what they feature, not by
// what they forbid.
var dietInclusions = map[string][]string{
	"mediterranean": {"olive oil", "fish", "vegetables", "herbs", "tomato", "garlic"},
	"dash":          {"vegetables", "fruits", "whole grain", "low sodium"},
}

// recipeText is the haystack for all keyword checks: title and
// instructions together, always the original text, never a
// partially-filtered view.
func recipeText(r models.Recipe) string {
	return strings.ToLower(r.Title + " " + r.Instructions)
}

// ContainsAllergen reports whether the recipe text matches any keyword
// in the allergy's expansion.
func ContainsAllergen(r models.Recipe, allergy string) bool {
	keywords, ok := allergenKeywords[strings.ToLower(allergy)]
	if !ok {
		keywords = []string{strings.ToLower(allergy)}
	}

	text := recipeText(r)
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// carbCaloriePercent is the share of the recipe's calories that come
// from carbohydrates. Calories of zero counts as one to avoid dividing
// by zero; zero carbs is always zero percent.
func carbCaloriePercent(r models.Recipe) float64 {
	if r.Carbs == 0 {
		return 0
	}
	calories := r.Calories
	if calories == 0 {
		calories = 1
	}
	return r.Carbs * 4 / calories * 100
}

// DietCompatible reports whether the recipe passes the rule for the
// given diet. Unknown diets and "none" always pass.
func DietCompatible(r models.Recipe, diet string) bool {
	diet = strings.ToLower(diet)

	switch diet {
	case "keto":
		return carbCaloriePercent(r) <= 10
	case "low-carb":
		return carbCaloriePercent(r) <= 20
	}

	text := recipeText(r)
	if excluded, ok := dietExclusions[diet]; ok {
		for _, kw := range excluded {
			if strings.Contains(text, kw) {
				return false
			}
		}
		return true
	}
	if included, ok := dietInclusions[diet]; ok {
		for _, kw := range included {
			if strings.Contains(text, kw) {
				return true
			}
		}
		return false
	}
	return true
}

// FilterByPreferences narrows recipes to those violating none of the
// user's allergies, diet rule, or free-text restrictions. The three
// checks run in sequence but each inspects the original recipe text.
func FilterByPreferences(recipes []RecipeMatch, prefs models.DietaryPreferences) []RecipeMatch {
	filtered := make([]RecipeMatch, 0, len(recipes))
	filtered = append(filtered, recipes...)

	if len(prefs.Allergies) > 0 {
		kept := filtered[:0]
		for _, r := range filtered {
			safe := true
			for _, allergy := range prefs.Allergies {
				if ContainsAllergen(r.Recipe, allergy) {
					safe = false
					break
				}
			}
			if safe {
				kept = append(kept, r)
			}
		}
		filtered = kept
	}

	if prefs.Diet != "" && prefs.Diet != "none" {
		kept := filtered[:0]
		for _, r := range filtered {
			if DietCompatible(r.Recipe, prefs.Diet) {
				kept = append(kept, r)
			}
		}
		filtered = kept
	}

	if len(prefs.RestrictedIngredients) > 0 {
		kept := filtered[:0]
		for _, r := range filtered {
			text := recipeText(r.Recipe)
			ok := true
			for _, restriction := range prefs.RestrictedIngredients {
				if strings.Contains(text, strings.ToLower(restriction)) {
					ok = false
					break
				}
			}
			if ok {
				kept = append(kept, r)
			}
		}
		filtered = kept
	}

	return filtered
}

// DietOption describes one selectable diet.
type DietOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// AllergyOption describes one selectable allergy.
type AllergyOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Severity string `json:"severity"`
}

// DietOptions returns the static diet catalog.
func DietOptions() []DietOption {
	return []DietOption{
		{Value: "none", Label: "No specific diet", Description: "No dietary restrictions"},
		{Value: "keto", Label: "Keto", Description: "Very low carb, high fat diet"},
		{Value: "low-carb", Label: "Low Carb", Description: "Reduced carbohydrate intake"},
		{Value: "vegetarian", Label: "Vegetarian", Description: "No meat or fish"},
		{Value: "vegan", Label: "Vegan", Description: "No animal products"},
		{Value: "halal", Label: "Halal", Description: "Islamic dietary guidelines"},
		{Value: "kosher", Label: "Kosher", Description: "Jewish dietary laws"},
		{Value: "paleo", Label: "Paleo", Description: "Paleolithic diet principles"},
		{Value: "mediterranean", Label: "Mediterranean", Description: "Heart-healthy Mediterranean style"},
		{Value: "dash", Label: "DASH", Description: "Dietary Approaches to Stop Hypertension"},
	}
}

// AllergyOptions returns the static allergy catalog.
func AllergyOptions() []AllergyOption {
	return []AllergyOption{
		{Value: "peanuts", Label: "Peanuts", Severity: "high"},
		{Value: "tree nuts", Label: "Tree Nuts", Severity: "high"},
		{Value: "shellfish", Label: "Shellfish", Severity: "high"},
		{Value: "fish", Label: "Fish", Severity: "high"},
		{Value: "eggs", Label: "Eggs", Severity: "high"},
		{Value: "dairy", Label: "Dairy", Severity: "high"},
		{Value: "soy", Label: "Soy", Severity: "medium"},
		{Value: "wheat", Label: "Wheat", Severity: "medium"},
		{Value: "gluten", Label: "Gluten", Severity: "medium"},
		{Value: "sesame", Label: "Sesame", Severity: "medium"},
	}
}

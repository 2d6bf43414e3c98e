package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replate-app/backend/internal/models"
)

func TestDeepSeekGeneratorParsesRecipes(t *testing.T) {
	content := `{"recipes":[{"title":"Garlic Chicken","instructions":"1. Cook it.","minutes":25,"calories":400,"protein":30,"carbs":10,"fat":12,"ingredients":[{"name":"Chicken Breast","quantity":1,"unit":"lbs"},{"name":"Garlic","quantity":3,"unit":"cloves"}]}]}`

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "deepseek-chat", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "Chicken Breast")

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
	defer srv.Close()

	gen := NewDeepSeekGenerator("test-key", srv.URL)
	recipes, err := gen.GenerateRecipes(context.Background(), GenerateRequest{
		Pantry: []models.PantryItem{
			{Ingredient: models.Ingredient{Name: "Chicken Breast", Unit: "lbs"}, Qty: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)

	require.Len(t, recipes, 1)
	r := recipes[0]
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Garlic Chicken", r.Title)
	assert.Equal(t, 25, r.Minutes)
	assert.Equal(t, 400.0, r.Calories)
	require.Len(t, r.Ingredients, 2)
	assert.Equal(t, "Chicken Breast", r.Ingredients[0].Name)
}

func TestDeepSeekGeneratorUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	gen := NewDeepSeekGenerator("test-key", srv.URL)
	_, err := gen.GenerateRecipes(context.Background(), GenerateRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestDeepSeekGeneratorMalformedContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"content": "not json at all"}},
			},
		})
	}))
	defer srv.Close()

	gen := NewDeepSeekGenerator("test-key", srv.URL)
	_, err := gen.GenerateRecipes(context.Background(), GenerateRequest{})
	require.Error(t, err)
}

func TestDeepSeekGeneratorRespectsContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	gen := NewDeepSeekGenerator("test-key", srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gen.GenerateRecipes(ctx, GenerateRequest{})
	require.Error(t, err)
}

func TestBuildPantryPromptIncludesPreferences(t *testing.T) {
	prompt := buildPantryPrompt(GenerateRequest{
		Pantry: []models.PantryItem{
			{Ingredient: models.Ingredient{Name: "Eggs", Unit: "pieces"}, Qty: 6},
		},
		Preferences: models.DietaryPreferences{
			Diet:                  "vegetarian",
			Allergies:             []string{"dairy"},
			RestrictedIngredients: []string{"cilantro"},
		},
	})

	assert.Contains(t, prompt, "6 pieces Eggs")
	assert.Contains(t, prompt, "vegetarian diet")
	assert.Contains(t, prompt, "Avoid these allergens: dairy")
	assert.Contains(t, prompt, "Avoid using: cilantro")
}

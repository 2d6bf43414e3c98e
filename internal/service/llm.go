package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/replate-app/backend/internal/models"
	"github.com/replate-app/backend/internal/store"
)

// GenerateRequest is the pantry context handed to a recipe generator.
type GenerateRequest struct {
	Pantry      []models.PantryItem
	Preferences models.DietaryPreferences
}

// RecipeGenerator produces candidate recipes for a pantry. The AI
// implementation is one of these; so is the deterministic fallback.
// Core coverage and filtering logic never depends on which one ran.
type RecipeGenerator interface {
	GenerateRecipes(ctx context.Context, req GenerateRequest) ([]models.Recipe, error)
}

// StaticGenerator serves the stored recipe catalog. It backs the
// non-AI deployment mode and the fallback when the AI call fails.
type StaticGenerator struct {
	store store.Store
}

// NewStaticGenerator creates a catalog-backed generator.
func NewStaticGenerator(s store.Store) *StaticGenerator {
	return &StaticGenerator{store: s}
}

func (g *StaticGenerator) GenerateRecipes(ctx context.Context, req GenerateRequest) ([]models.Recipe, error) {
	return g.store.ListRecipes(ctx)
}

// message is a single chat message sent to the DeepSeek API.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the request body for the DeepSeek chat completions API.
type chatRequest struct {
	Model            string            `json:"model"`
	Messages         []message         `json:"messages"`
	ResponseFormat   map[string]string `json:"response_format"`
	Temperature      float64           `json:"temperature"`
	TopP             float64           `json:"top_p"`
	FrequencyPenalty float64           `json:"frequency_penalty"`
	PresencePenalty  float64           `json:"presence_penalty"`
}

// generatedRecipe is the recipe structure the model is asked to emit.
type generatedRecipe struct {
	Title        string  `json:"title"`
	Instructions string  `json:"instructions"`
	Minutes      int     `json:"minutes"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Ingredients  []struct {
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
	} `json:"ingredients"`
}

const suggestionSystemPrompt = `You are a professional chef and nutritionist. Suggest recipes a home cook can make mostly from the pantry they describe. Respond in JSON with the following structure:
{
    "recipes": [
        {
            "title": "Recipe name",
            "instructions": "1. First step.\n2. Second step.",
            "minutes": 30,
            "calories": 450,
            "protein": 35,
            "carbs": 45,
            "fat": 8,
            "ingredients": [
                {"name": "Chicken Breast", "quantity": 1, "unit": "lbs"}
            ]
        }
    ]
}

Note: minutes, calories, protein, carbs and fat must be numbers, not strings.
List each recipe's main ingredient first in its ingredients array.`

// DeepSeekGenerator produces recipes via the DeepSeek API. Single
// attempt, no retries; the caller bounds the call with a context
// deadline and falls back to the static catalog on any failure.
type DeepSeekGenerator struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewDeepSeekGenerator creates a DeepSeek-backed generator.
func NewDeepSeekGenerator(apiKey, apiURL string) *DeepSeekGenerator {
	return &DeepSeekGenerator{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{},
	}
}

func (g *DeepSeekGenerator) GenerateRecipes(ctx context.Context, req GenerateRequest) ([]models.Recipe, error) {
	reqBody := chatRequest{
		Model: "deepseek-chat",
		Messages: []message{
			{Role: "system", Content: suggestionSystemPrompt},
			{Role: "user", Content: buildPantryPrompt(req)},
		},
		ResponseFormat:   map[string]string{"type": "json_object"},
		Temperature:      0.9,
		TopP:             0.9,
		FrequencyPenalty: 0.5,
		PresencePenalty:  0.5,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Choices) == 0 {
		return nil, fmt.Errorf("no response from API")
	}

	var wrapper struct {
		Recipes []generatedRecipe `json:"recipes"`
	}
	if err := json.Unmarshal([]byte(result.Choices[0].Message.Content), &wrapper); err != nil {
		return nil, fmt.Errorf("failed to parse recipes: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(wrapper.Recipes))
	for _, gr := range wrapper.Recipes {
		r := models.Recipe{
			ID:           uuid.New().String(),
			Title:        gr.Title,
			Instructions: gr.Instructions,
			Minutes:      gr.Minutes,
			Calories:     gr.Calories,
			Protein:      gr.Protein,
			Carbs:        gr.Carbs,
			Fat:          gr.Fat,
			Embedding:    models.EmbeddingFor(gr.Title + " " + gr.Instructions),
		}
		for _, ing := range gr.Ingredients {
			r.Ingredients = append(r.Ingredients, models.RecipeIngredient{
				Name:     ing.Name,
				Quantity: ing.Quantity,
				Unit:     ing.Unit,
			})
		}
		recipes = append(recipes, r)
	}
	return recipes, nil
}

// buildPantryPrompt renders the pantry and preferences into the user
// message for the model.
func buildPantryPrompt(req GenerateRequest) string {
	var b strings.Builder
	b.WriteString("Suggest recipes using these pantry ingredients:\n")
	for _, item := range req.Pantry {
		fmt.Fprintf(&b, "- %g %s %s\n", item.Qty, item.Ingredient.Unit, item.Ingredient.Name)
	}

	prefs := req.Preferences
	if prefs.Diet != "" && prefs.Diet != "none" {
		b.WriteString("The recipes should be suitable for a " + prefs.Diet + " diet.\n")
	}
	if len(prefs.Allergies) > 0 {
		b.WriteString("Avoid these allergens: " + strings.Join(prefs.Allergies, ", ") + ".\n")
	}
	if len(prefs.RestrictedIngredients) > 0 {
		b.WriteString("Avoid using: " + strings.Join(prefs.RestrictedIngredients, ", ") + ".\n")
	}
	return b.String()
}

package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/replate-app/backend/internal/models"
	"github.com/replate-app/backend/internal/store"
)

// maxSuggestions is how many recipes a suggestion response carries.
const maxSuggestions = 5

// RankingOptions are optional per-request ranking knobs.
type RankingOptions struct {
	MaxMinutes    int      `json:"maxMinutes,omitempty"`
	ProteinTarget float64  `json:"proteinTarget,omitempty"`
	Dislikes      []string `json:"dislikes,omitempty"`
}

// DietarySummary reports which filters a suggestion request applied
// and their effect.
type DietarySummary struct {
	Diet                  string   `json:"diet"`
	Allergies             []string `json:"allergies"`
	Restrictions          []string `json:"restrictions"`
	FilteredCount         int      `json:"filteredCount"`
	UsingSavedPreferences bool     `json:"usingSavedPreferences"`
}

// Suggestion is the full response of the suggestion pipeline.
type Suggestion struct {
	Recipes        []RecipeMatch  `json:"recipes"`
	Message        string         `json:"message"`
	PantryCount    int            `json:"pantryCount"`
	DietarySummary DietarySummary `json:"dietarySummary"`
}

// SuggestionService runs the suggestion pipeline: read pantry, gather
// candidates, gate on main ingredient, annotate coverage, filter by
// dietary preferences, rank and truncate.
type SuggestionService struct {
	store     store.Store
	generator RecipeGenerator
	fallback  *StaticGenerator
	cache     *SuggestionCache
	photos    *ImageService
	timeout   time.Duration
}

// NewSuggestionService wires the pipeline. generator may be nil to run
// catalog-only; cache and photos may be nil to disable those features.
func NewSuggestionService(s store.Store, generator RecipeGenerator, cache *SuggestionCache, photos *ImageService, timeout time.Duration) *SuggestionService {
	return &SuggestionService{
		store:     s,
		generator: generator,
		fallback:  NewStaticGenerator(s),
		cache:     cache,
		photos:    photos,
		timeout:   timeout,
	}
}

// Suggest assembles recipe suggestions for the user. inline carries
// preferences from the request payload; nil falls back to the saved
// profile, or the defaults when none is saved.
func (s *SuggestionService) Suggest(ctx context.Context, userID string, inline *models.DietaryPreferences, opts RankingOptions) (*Suggestion, error) {
	pantry, err := s.store.ListPantry(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pantry: %w", err)
	}

	usingSaved := inline == nil
	prefs := models.DefaultPreferences()
	if inline != nil {
		prefs = *inline
	} else {
		saved, err := s.store.GetPreferences(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load preferences: %w", err)
		}
		if saved != nil {
			prefs = *saved
		}
	}

	fingerprint := struct {
		Pantry []models.PantryItem
		Prefs  models.DietaryPreferences
		Opts   RankingOptions
	}{pantry, prefs, opts}

	if cached := s.cache.Get(ctx, userID, fingerprint); cached != nil {
		return cached, nil
	}

	candidates := s.gatherCandidates(ctx, pantry, prefs)

	// Main-ingredient gate, then coverage annotation.
	annotated := make([]RecipeMatch, 0, len(candidates))
	for _, r := range candidates {
		if !HasMainIngredient(pantry, r) {
			continue
		}
		annotated = append(annotated, CoverRecipe(pantry, r))
	}

	filtered := FilterByPreferences(annotated, prefs)
	ranked := rankRecipes(filtered, opts)

	if s.photos != nil {
		s.attachPhotos(ctx, ranked)
	}

	suggestion := &Suggestion{
		Recipes:     ranked,
		Message:     fmt.Sprintf("Found %d recipes matching your dietary preferences!", len(ranked)),
		PantryCount: len(pantry),
		DietarySummary: DietarySummary{
			Diet:                  prefs.Diet,
			Allergies:             prefs.Allergies,
			Restrictions:          prefs.RestrictedIngredients,
			FilteredCount:         len(annotated) - len(filtered),
			UsingSavedPreferences: usingSaved,
		},
	}

	s.cache.Set(ctx, userID, fingerprint, suggestion)
	return suggestion, nil
}

// gatherCandidates asks the configured generator for recipes, bounded
// by the suggestion timeout. Any failure or empty result falls back to
// the static catalog; the generator gets exactly one attempt.
func (s *SuggestionService) gatherCandidates(ctx context.Context, pantry []models.PantryItem, prefs models.DietaryPreferences) []models.Recipe {
	req := GenerateRequest{Pantry: pantry, Preferences: prefs}

	if s.generator != nil {
		genCtx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		recipes, err := s.generator.GenerateRecipes(genCtx, req)
		if err == nil && len(recipes) > 0 {
			return recipes
		}
		if err != nil {
			log.Printf("[SuggestionService] generator failed, using catalog: %v", err)
		}
	}

	recipes, err := s.fallback.GenerateRecipes(ctx, req)
	if err != nil {
		log.Printf("[SuggestionService] catalog fallback failed: %v", err)
		return nil
	}
	return recipes
}

// scoreRecipe computes the ranking score: ingredient availability plus
// weighted coverage, minus penalties for ranking-option violations.
func scoreRecipe(m RecipeMatch, opts RankingOptions) float64 {
	score := float64(m.AvailableIngredients) + m.Coverage*10

	if opts.MaxMinutes > 0 && m.Minutes > opts.MaxMinutes {
		score -= 5
	}
	if opts.ProteinTarget > 0 {
		score -= math.Abs(m.Protein-opts.ProteinTarget) * 0.5
	}
	if len(opts.Dislikes) > 0 {
		text := recipeText(m.Recipe)
		for _, dislike := range opts.Dislikes {
			if dislike != "" && strings.Contains(text, strings.ToLower(dislike)) {
				score -= 8
			}
		}
	}
	return score
}

// rankRecipes sorts by score descending and truncates. Ties break on
// title so identical inputs always produce identical output.
func rankRecipes(recipes []RecipeMatch, opts RankingOptions) []RecipeMatch {
	ranked := make([]RecipeMatch, len(recipes))
	copy(ranked, recipes)

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := scoreRecipe(ranked[i], opts), scoreRecipe(ranked[j], opts)
		if si != sj {
			return si > sj
		}
		return ranked[i].Title < ranked[j].Title
	})

	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}
	return ranked
}

// attachPhotos fills in photos for recipes that have none. Best
// effort: a failed photo never fails the suggestion.
func (s *SuggestionService) attachPhotos(ctx context.Context, recipes []RecipeMatch) {
	for i := range recipes {
		if recipes[i].PhotoURL != "" {
			continue
		}
		url, err := s.photos.GenerateRecipePhoto(ctx, recipes[i].Recipe)
		if err != nil {
			log.Printf("[SuggestionService] photo generation failed for %q: %v", recipes[i].Title, err)
			continue
		}
		recipes[i].PhotoURL = url
	}
}

package store

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/replate-app/backend/internal/models"
)

// MemoryStore keeps all state in process memory. It is the default
// backend for local development and tests; state lives until restart.
type MemoryStore struct {
	mu sync.RWMutex

	ingredients     map[string]models.Ingredient
	ingredientOrder []string

	recipes     map[string]models.Recipe
	recipeOrder []string

	// pantry is keyed by user, then ingredient id.
	pantry map[string]map[string]models.PantryItem

	// mealPlan is keyed by day; entries carry their user id.
	mealPlan map[string][]models.MealPlanEntry

	profiles map[string]models.DietaryPreferences

	moods map[string][]models.MoodEntry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		ingredients: make(map[string]models.Ingredient),
		recipes:     make(map[string]models.Recipe),
		pantry:      make(map[string]map[string]models.PantryItem),
		mealPlan:    make(map[string][]models.MealPlanEntry),
		profiles:    make(map[string]models.DietaryPreferences),
		moods:       make(map[string][]models.MoodEntry),
	}
}

func (s *MemoryStore) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Ingredient, 0, len(s.ingredientOrder))
	for _, id := range s.ingredientOrder {
		out = append(out, s.ingredients[id])
	}
	return out, nil
}

func (s *MemoryStore) GetIngredient(ctx context.Context, id string) (*models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ing, ok := s.ingredients[id]
	if !ok {
		return nil, ErrIngredientNotFound
	}
	return &ing, nil
}

func (s *MemoryStore) CreateIngredient(ctx context.Context, ing *models.Ingredient) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	if ing.CreatedAt.IsZero() {
		ing.CreatedAt = time.Now()
	}
	if _, exists := s.ingredients[ing.ID]; !exists {
		s.ingredientOrder = append(s.ingredientOrder, ing.ID)
	}
	s.ingredients[ing.ID] = *ing
	return nil
}

func (s *MemoryStore) SearchIngredients(ctx context.Context, query string) ([]models.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []models.Ingredient
	for _, id := range s.ingredientOrder {
		ing := s.ingredients[id]
		if strings.Contains(strings.ToLower(ing.Name), q) {
			out = append(out, ing)
		}
	}
	return out, nil
}

func (s *MemoryStore) ListPantry(ctx context.Context, userID string) ([]models.PantryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := s.pantry[userID]
	out := make([]models.PantryItem, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ingredient.Name < out[j].Ingredient.Name })
	return out, nil
}

func (s *MemoryStore) AddPantryItem(ctx context.Context, userID, ingredientID string, qty float64) (*models.PantryItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ing, ok := s.ingredients[ingredientID]
	if !ok {
		return nil, false, ErrIngredientNotFound
	}

	items := s.pantry[userID]
	if items == nil {
		items = make(map[string]models.PantryItem)
		s.pantry[userID] = items
	}

	now := time.Now()
	if existing, ok := items[ingredientID]; ok {
		existing.Qty += qty
		existing.UpdatedAt = now
		items[ingredientID] = existing
		return &existing, true, nil
	}

	item := models.PantryItem{
		ID:           uuid.New().String(),
		UserID:       userID,
		IngredientID: ingredientID,
		Ingredient:   ing,
		Qty:          qty,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	items[ingredientID] = item
	return &item, false, nil
}

func (s *MemoryStore) RemovePantryItem(ctx context.Context, userID, ingredientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pantry[userID], ingredientID)
	return nil
}

func (s *MemoryStore) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Recipe, 0, len(s.recipeOrder))
	for _, id := range s.recipeOrder {
		out = append(out, s.recipes[id])
	}
	return out, nil
}

func (s *MemoryStore) SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []models.Recipe
	for _, id := range s.recipeOrder {
		r := s.recipes[id]
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Instructions), q) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryStore) CreateRecipe(ctx context.Context, r *models.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	if _, exists := s.recipes[r.ID]; !exists {
		s.recipeOrder = append(s.recipeOrder, r.ID)
	}
	s.recipes[r.ID] = *r
	return nil
}

func (s *MemoryStore) GetMealPlan(ctx context.Context, userID string) (models.MealPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plan := make(models.MealPlan)
	for day, entries := range s.mealPlan {
		for _, e := range entries {
			if e.UserID != userID {
				continue
			}
			if plan[day] == nil {
				plan[day] = make(map[string][]models.MealPlanEntry)
			}
			plan[day][e.MealTime] = append(plan[day][e.MealTime], e)
		}
	}
	return plan, nil
}

func (s *MemoryStore) AddMealPlanEntry(ctx context.Context, entry *models.MealPlanEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	s.mealPlan[entry.Day] = append(s.mealPlan[entry.Day], *entry)
	return nil
}

func (s *MemoryStore) RemoveMealPlanEntry(ctx context.Context, day, mealID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.mealPlan[day]
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != mealID {
			kept = append(kept, e)
		}
	}
	s.mealPlan[day] = kept
	return nil
}

func (s *MemoryStore) GetPreferences(ctx context.Context, userID string) (*models.DietaryPreferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prefs, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	return &prefs, nil
}

func (s *MemoryStore) SavePreferences(ctx context.Context, userID string, prefs models.DietaryPreferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[userID] = prefs
	return nil
}

func (s *MemoryStore) ListMoodEntries(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.moods[userID]
	out := make([]models.MoodEntry, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *MemoryStore) CreateMoodEntry(ctx context.Context, entry *models.MoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	s.moods[entry.UserID] = append(s.moods[entry.UserID], *entry)
	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/replate-app/backend/internal/models"
)

// GormStore persists state in a relational database. Postgres is used
// in deployments, SQLite (including ":memory:") locally and in tests.
type GormStore struct {
	db *gorm.DB
}

// Open connects to the database named by databaseURL and runs the
// schema migration. URLs starting with postgres:// select Postgres;
// anything else is treated as a SQLite path.
func Open(databaseURL string) (*GormStore, error) {
	var dialector gorm.Dialector
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		dialector = postgres.Open(databaseURL)
	} else {
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return NewGormStore(db)
}

// NewGormStore wraps an existing gorm connection and migrates the schema.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(
		&models.Ingredient{},
		&models.PantryItem{},
		&models.Recipe{},
		&models.MealPlanEntry{},
		&models.UserProfile{},
		&models.MoodEntry{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) ListIngredients(ctx context.Context) ([]models.Ingredient, error) {
	var out []models.Ingredient
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) GetIngredient(ctx context.Context, id string) (*models.Ingredient, error) {
	var ing models.Ingredient
	err := s.db.WithContext(ctx).First(&ing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrIngredientNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (s *GormStore) CreateIngredient(ctx context.Context, ing *models.Ingredient) error {
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	return s.db.WithContext(ctx).Create(ing).Error
}

func (s *GormStore) SearchIngredients(ctx context.Context, query string) ([]models.Ingredient, error) {
	like := "%" + strings.ToLower(query) + "%"
	var out []models.Ingredient
	err := s.db.WithContext(ctx).
		Where("LOWER(name) LIKE ?", like).
		Order("created_at, id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) ListPantry(ctx context.Context, userID string) ([]models.PantryItem, error) {
	var out []models.PantryItem
	err := s.db.WithContext(ctx).
		Preload("Ingredient").
		Where("user_id = ?", userID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ingredient.Name < out[j].Ingredient.Name })
	return out, nil
}

func (s *GormStore) AddPantryItem(ctx context.Context, userID, ingredientID string, qty float64) (*models.PantryItem, bool, error) {
	ing, err := s.GetIngredient(ctx, ingredientID)
	if err != nil {
		return nil, false, err
	}

	var existing models.PantryItem
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND ingredient_id = ?", userID, ingredientID).
		First(&existing).Error
	if err == nil {
		existing.Qty += qty
		existing.UpdatedAt = time.Now()
		if err := s.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return nil, false, err
		}
		existing.Ingredient = *ing
		return &existing, true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	item := models.PantryItem{
		ID:           uuid.New().String(),
		UserID:       userID,
		IngredientID: ingredientID,
		Qty:          qty,
	}
	if err := s.db.WithContext(ctx).Create(&item).Error; err != nil {
		return nil, false, err
	}
	item.Ingredient = *ing
	return &item, false, nil
}

func (s *GormStore) RemovePantryItem(ctx context.Context, userID, ingredientID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND ingredient_id = ?", userID, ingredientID).
		Delete(&models.PantryItem{}).Error
}

func (s *GormStore) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	var out []models.Recipe
	if err := s.db.WithContext(ctx).Order("created_at, id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) SearchRecipes(ctx context.Context, query string) ([]models.Recipe, error) {
	db := s.db.WithContext(ctx)
	var out []models.Recipe

	if s.db.Dialector.Name() == "postgres" {
		vec := models.EmbeddingFor(query)
		err := db.Clauses(clause.OrderBy{
			Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
		}).Find(&out).Error
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	like := "%" + strings.ToLower(query) + "%"
	err := db.Where("LOWER(title) LIKE ? OR LOWER(instructions) LIKE ?", like, like).
		Order("created_at, id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) CreateRecipe(ctx context.Context, r *models.Recipe) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if len(r.Embedding.Slice()) == 0 {
		r.Embedding = models.EmbeddingFor(r.Title + " " + r.Instructions)
	}
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *GormStore) GetMealPlan(ctx context.Context, userID string) (models.MealPlan, error) {
	var entries []models.MealPlanEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	plan := make(models.MealPlan)
	for _, e := range entries {
		if plan[e.Day] == nil {
			plan[e.Day] = make(map[string][]models.MealPlanEntry)
		}
		plan[e.Day][e.MealTime] = append(plan[e.Day][e.MealTime], e)
	}
	return plan, nil
}

func (s *GormStore) AddMealPlanEntry(ctx context.Context, entry *models.MealPlanEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *GormStore) RemoveMealPlanEntry(ctx context.Context, day, mealID string) error {
	return s.db.WithContext(ctx).
		Where("day = ? AND id = ?", day, mealID).
		Delete(&models.MealPlanEntry{}).Error
}

func (s *GormStore) GetPreferences(ctx context.Context, userID string) (*models.DietaryPreferences, error) {
	var profile models.UserProfile
	err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile.Preferences, nil
}

func (s *GormStore) SavePreferences(ctx context.Context, userID string, prefs models.DietaryPreferences) error {
	profile := models.UserProfile{
		UserID:      userID,
		Preferences: prefs,
		UpdatedAt:   time.Now(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(&profile).Error
}

func (s *GormStore) ListMoodEntries(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	var out []models.MoodEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) CreateMoodEntry(ctx context.Context, entry *models.MoodEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	return s.db.WithContext(ctx).Create(entry).Error
}

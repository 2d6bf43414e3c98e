package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	pgvector "github.com/pgvector/pgvector-go"
)

// RecipeIngredient is a single line item in a recipe's ingredient list.
type RecipeIngredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// RecipeIngredientList is a custom type for storing ingredient lists
// as a JSON column.
type RecipeIngredientList []RecipeIngredient

// Value implements the driver.Valuer interface.
func (l RecipeIngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface.
func (l *RecipeIngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = RecipeIngredientList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Recipe is a catalog entry. Coverage data is derived per request and
// never stored; see service.RecipeMatch.
type Recipe struct {
	ID           string               `gorm:"primaryKey;size:36" json:"id"`
	Title        string               `gorm:"size:255;not null" json:"title"`
	Instructions string               `gorm:"type:text" json:"instructions"`
	Minutes      int                  `json:"minutes"`
	Calories     float64              `json:"calories"`
	Protein      float64              `json:"protein"`
	Carbs        float64              `json:"carbs"`
	Fat          float64              `json:"fat"`
	PhotoURL     string               `gorm:"size:255" json:"photo_url"`
	Ingredients  RecipeIngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Embedding    pgvector.Vector      `gorm:"type:vector(3)" json:"-"`
	CreatedAt    time.Time            `json:"-"`
	UpdatedAt    time.Time            `json:"-"`
}

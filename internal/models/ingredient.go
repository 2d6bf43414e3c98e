package models

import "time"

// Ingredient is a known ingredient with its canonical unit of measure.
// Seeded at startup; users can add custom ingredients via the pantry.
type Ingredient struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Unit      string    `gorm:"size:30;not null" json:"unit"`
	Custom    bool      `json:"custom,omitempty"`
	CreatedAt time.Time `json:"-"`
}

// PantryItem is one ingredient a user has on hand, in the ingredient's
// unit. Unique per (user, ingredient): adding an ingredient already in
// the pantry merges quantities instead of creating a second row.
type PantryItem struct {
	ID           string     `gorm:"primaryKey;size:36" json:"id"`
	UserID       string     `gorm:"size:64;index" json:"userId"`
	IngredientID string     `gorm:"size:36;index" json:"-"`
	Ingredient   Ingredient `gorm:"foreignKey:IngredientID" json:"ingredients"`
	Qty          float64    `json:"qty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

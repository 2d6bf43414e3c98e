package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// DietaryPreferences is a user's saved dietary profile.
type DietaryPreferences struct {
	Diet                  string   `json:"diet"`
	Allergies             []string `json:"allergies"`
	RestrictedIngredients []string `json:"restricted_ingredients"`
}

// DefaultPreferences is what an unset profile resolves to.
func DefaultPreferences() DietaryPreferences {
	return DietaryPreferences{
		Diet:                  "none",
		Allergies:             []string{},
		RestrictedIngredients: []string{},
	}
}

// Value implements the driver.Valuer interface.
func (p DietaryPreferences) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface.
func (p *DietaryPreferences) Scan(value interface{}) error {
	if value == nil {
		*p = DefaultPreferences()
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

	return json.Unmarshal(bytes, p)
}

// UserProfile stores a user's dietary preferences.
type UserProfile struct {
	UserID      string             `gorm:"primaryKey;size:64" json:"userId"`
	Preferences DietaryPreferences `gorm:"type:jsonb;not null;default:'{}'" json:"preferences"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

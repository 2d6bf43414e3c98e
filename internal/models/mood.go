package models

import "time"

// Mood tags a user can log after a meal.
var MoodOptions = []string{"energized", "sleepy", "bloated", "calm", "focused", "irritable"}

// ValidMood reports whether mood is one of the known tags.
func ValidMood(mood string) bool {
	for _, m := range MoodOptions {
		if m == mood {
			return true
		}
	}
	return false
}

// MoodEntry is an append-only post-meal mood log entry. Creation is
// rate limited to one entry per user per rolling three hours.
type MoodEntry struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:64;index" json:"userId"`
	MealID    string    `gorm:"size:36" json:"mealId,omitempty"`
	Mood      string    `gorm:"size:32;not null" json:"mood"`
	Timestamp time.Time `gorm:"index" json:"timestamp"`
}

package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/replate-app/backend/internal/models"
	"github.com/replate-app/backend/internal/store"
)

// MoodCooldown is the minimum gap between two mood entries by the
// same user.
const MoodCooldown = 3 * time.Hour

// CooldownInfo describes an active cooldown: how long until the next
// entry is allowed, with hours and minutes rounded up for display.
type CooldownInfo struct {
	RemainingTime    int64     `json:"remainingTime"` // milliseconds
	RemainingHours   int       `json:"remainingHours"`
	RemainingMinutes int       `json:"remainingMinutes"`
	NextAllowedTime  time.Time `json:"nextAllowedTime"`
}

// MoodService gates mood entry creation behind the cooldown.
type MoodService struct {
	store store.Store
	now   func() time.Time
}

// NewMoodService creates a mood service using wall-clock time.
func NewMoodService(s store.Store) *MoodService {
	return &MoodService{store: s, now: time.Now}
}

// Record persists a mood entry unless the user logged one within the
// cooldown window. An active cooldown returns a non-nil CooldownInfo
// and no error; a gap of exactly the cooldown admits the entry.
func (s *MoodService) Record(ctx context.Context, entry *models.MoodEntry) (*models.MoodEntry, *CooldownInfo, error) {
	entries, err := s.store.ListMoodEntries(ctx, entry.UserID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load mood entries: %w", err)
	}

	now := s.now()
	if len(entries) > 0 {
		last := entries[0]
		if elapsed := now.Sub(last.Timestamp); elapsed < MoodCooldown {
			return nil, cooldownInfo(last.Timestamp, now), nil
		}
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = now
	}
	if err := s.store.CreateMoodEntry(ctx, entry); err != nil {
		return nil, nil, fmt.Errorf("failed to create mood entry: %w", err)
	}
	return entry, nil, nil
}

// History returns the user's mood log, newest first.
func (s *MoodService) History(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	return s.store.ListMoodEntries(ctx, userID)
}

func cooldownInfo(lastEntry, now time.Time) *CooldownInfo {
	remaining := MoodCooldown - now.Sub(lastEntry)
	return &CooldownInfo{
		RemainingTime:    remaining.Milliseconds(),
		RemainingHours:   int(math.Ceil(remaining.Hours())),
		RemainingMinutes: int(math.Ceil(float64(remaining%time.Hour) / float64(time.Minute))),
		NextAllowedTime:  lastEntry.Add(MoodCooldown),
	}
}

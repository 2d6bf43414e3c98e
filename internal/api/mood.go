package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/replate-app/backend/internal/models"
	"github.com/replate-app/backend/internal/service"
)

// MoodHandler serves the post-meal mood log.
type MoodHandler struct {
	moods *service.MoodService
}

func NewMoodHandler(s *service.MoodService) *MoodHandler {
	return &MoodHandler{moods: s}
}

func (h *MoodHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/mood-data", h.RecordMood)
	router.GET("/mood-data/:userId", h.GetMoodHistory)
}

func (h *MoodHandler) RecordMood(c *gin.Context) {
	var req MoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidMood(req.Mood) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid mood. Must be one of: " + strings.Join(models.MoodOptions, ", "),
		})
		return
	}
	if req.UserID == "" {
		req.UserID = DefaultUserID
	}

	entry := models.MoodEntry{
		UserID: req.UserID,
		MealID: req.MealID,
		Mood:   req.Mood,
	}
	if req.Timestamp != nil {
		entry.Timestamp = *req.Timestamp
	}

	saved, cooldown, err := h.moods.Record(c.Request.Context(), &entry)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save mood entry"})
		return
	}
	if cooldown != nil {
		message := fmt.Sprintf("You can log your next mood in %dh %dm", cooldown.RemainingHours, cooldown.RemainingMinutes)
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":            "Mood tracking is limited to once every 3 hours",
			"message":          message,
			"remainingTime":    cooldown.RemainingTime,
			"remainingHours":   cooldown.RemainingHours,
			"remainingMinutes": cooldown.RemainingMinutes,
			"nextAllowedTime":  cooldown.NextAllowedTime,
		})
		return
	}
	c.JSON(http.StatusOK, saved)
}

func (h *MoodHandler) GetMoodHistory(c *gin.Context) {
	entries, err := h.moods.History(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mood entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"moodEntries": entries})
}

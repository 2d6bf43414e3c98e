package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replate-app/backend/internal/models"
	"github.com/replate-app/backend/internal/service"
	"github.com/replate-app/backend/internal/store"
)

// ProfileHandler serves dietary preference profiles and the static
// dietary option catalogs.
type ProfileHandler struct {
	store store.Store
}

func NewProfileHandler(s store.Store) *ProfileHandler {
	return &ProfileHandler{store: s}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/profile/preferences", h.SavePreferences)
	router.GET("/profile/preferences/:userId", h.GetPreferences)
	router.GET("/dietary-options", h.GetDietaryOptions)
}

func (h *ProfileHandler) SavePreferences(c *gin.Context) {
	var req SavePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID required"})
		return
	}

	prefs := models.DefaultPreferences()
	if req.Preferences != nil {
		prefs = *req.Preferences
	}
	if prefs.Diet == "" {
		prefs.Diet = "none"
	}
	if prefs.Allergies == nil {
		prefs.Allergies = []string{}
	}
	if prefs.RestrictedIngredients == nil {
		prefs.RestrictedIngredients = []string{}
	}

	if err := h.store.SavePreferences(c.Request.Context(), req.UserID, prefs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preferences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Dietary preferences saved successfully",
		"preferences": prefs,
	})
}

// GetPreferences returns the saved profile, or the defaults when the
// user has never saved one.
func (h *ProfileHandler) GetPreferences(c *gin.Context) {
	prefs, err := h.store.GetPreferences(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch preferences"})
		return
	}
	if prefs == nil {
		defaults := models.DefaultPreferences()
		prefs = &defaults
	}
	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

func (h *ProfileHandler) GetDietaryOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"dietOptions":    service.DietOptions(),
		"allergyOptions": service.AllergyOptions(),
	})
}

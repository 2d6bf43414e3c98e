package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/replate-app/backend/internal/models"
)

type preferencesResponse struct {
	Preferences models.DietaryPreferences `json:"preferences"`
}

func TestSavePreferences(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/profile/preferences", SavePreferencesRequest{
		UserID: "u1",
		Preferences: &models.DietaryPreferences{
			Diet:                  "vegan",
			Allergies:             []string{"peanuts"},
			RestrictedIngredients: []string{"cilantro"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var saved struct {
		Success     bool                      `json:"success"`
		Preferences models.DietaryPreferences `json:"preferences"`
	}
	decodeBody(t, w, &saved)
	assert.True(t, saved.Success)
	assert.Equal(t, "vegan", saved.Preferences.Diet)

	w = doRequest(t, router, http.MethodGet, "/profile/preferences/u1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got preferencesResponse
	decodeBody(t, w, &got)
	assert.Equal(t, "vegan", got.Preferences.Diet)
	assert.Equal(t, []string{"peanuts"}, got.Preferences.Allergies)
	assert.Equal(t, []string{"cilantro"}, got.Preferences.RestrictedIngredients)
}

func TestSavePreferencesRequiresUserID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/profile/preferences", SavePreferencesRequest{
		Preferences: &models.DietaryPreferences{Diet: "keto"},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSavePreferencesFillsDefaults(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodPost, "/profile/preferences", SavePreferencesRequest{
		UserID:      "u1",
		Preferences: &models.DietaryPreferences{},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/profile/preferences/u1", nil)
	var got preferencesResponse
	decodeBody(t, w, &got)
	assert.Equal(t, "none", got.Preferences.Diet)
	assert.NotNil(t, got.Preferences.Allergies)
	assert.NotNil(t, got.Preferences.RestrictedIngredients)
}

func TestGetPreferencesDefaultsWhenUnset(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/profile/preferences/nobody", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got preferencesResponse
	decodeBody(t, w, &got)
	assert.Equal(t, "none", got.Preferences.Diet)
	assert.Empty(t, got.Preferences.Allergies)
	assert.Empty(t, got.Preferences.RestrictedIngredients)
}

func TestGetDietaryOptions(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(t, router, http.MethodGet, "/dietary-options", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		DietOptions []struct {
			Value string `json:"value"`
			Label string `json:"label"`
		} `json:"dietOptions"`
		AllergyOptions []struct {
			Value    string `json:"value"`
			Severity string `json:"severity"`
		} `json:"allergyOptions"`
	}
	decodeBody(t, w, &body)
	require.Len(t, body.DietOptions, 10)
	require.Len(t, body.AllergyOptions, 10)
	assert.Equal(t, "none", body.DietOptions[0].Value)
	assert.Equal(t, "peanuts", body.AllergyOptions[0].Value)
}

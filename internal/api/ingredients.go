package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replate-app/backend/internal/store"
)

// IngredientHandler serves the ingredient catalog.
type IngredientHandler struct {
	store store.Store
}

func NewIngredientHandler(s store.Store) *IngredientHandler {
	return &IngredientHandler{store: s}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/ingredients", h.ListIngredients)
	router.GET("/search-ingredients", h.SearchIngredients)
}

func (h *IngredientHandler) ListIngredients(c *gin.Context) {
	ingredients, err := h.store.ListIngredients(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch ingredients"})
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// ingredientRef is the trimmed search result shape, just enough for an
// autocomplete dropdown.
type ingredientRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *IngredientHandler) SearchIngredients(c *gin.Context) {
	query := c.Query("q")
	refs := []ingredientRef{}
	if query == "" {
		c.JSON(http.StatusOK, refs)
		return
	}

	matches, err := h.store.SearchIngredients(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search ingredients"})
		return
	}
	for _, ing := range matches {
		refs = append(refs, ingredientRef{ID: ing.ID, Name: ing.Name})
	}
	c.JSON(http.StatusOK, refs)
}

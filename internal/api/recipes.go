package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replate-app/backend/internal/store"
)

// RecipeHandler serves the recipe catalog.
type RecipeHandler struct {
	store store.Store
}

func NewRecipeHandler(s store.Store) *RecipeHandler {
	return &RecipeHandler{store: s}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/recipes", h.ListRecipes)
}

// ListRecipes returns the full catalog, or a search over it when the q
// parameter is present.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	ctx := c.Request.Context()

	if query := c.Query("q"); query != "" {
		recipes, err := h.store.SearchRecipes(ctx, query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search recipes"})
			return
		}
		c.JSON(http.StatusOK, recipes)
		return
	}

	recipes, err := h.store.ListRecipes(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, recipes)
}

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replate-app/backend/internal/models"
	"github.com/replate-app/backend/internal/store"
)

// PantryHandler serves the pantry endpoints.
type PantryHandler struct {
	store store.Store
}

// NewPantryHandler creates a pantry handler.
func NewPantryHandler(s store.Store) *PantryHandler {
	return &PantryHandler{store: s}
}

// RegisterRoutes registers the pantry routes.
func (h *PantryHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/pantry/:userId", h.GetPantry)
	router.POST("/pantry", h.AddToPantry)
	router.DELETE("/pantry/:userId/:ingredientId", h.RemoveFromPantry)
}

func (h *PantryHandler) GetPantry(c *gin.Context) {
	items, err := h.store.ListPantry(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pantry"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// pantryItemResponse is a pantry item plus a human-readable message
// about what the add did.
type pantryItemResponse struct {
	models.PantryItem
	Message     string `json:"message"`
	WasExisting bool   `json:"wasExisting"`
}

func (h *PantryHandler) AddToPantry(c *gin.Context) {
	var req AddPantryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" {
		req.UserID = DefaultUserID
	}

	ctx := c.Request.Context()

	ingredientID := req.IngredientID
	qty := req.Qty
	if ingredientID == "" {
		if req.CustomIngredient == nil || req.CustomIngredient.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ingredient ID and quantity required"})
			return
		}
		ing := models.Ingredient{
			Name:   req.CustomIngredient.Name,
			Unit:   req.CustomIngredient.Unit,
			Custom: true,
		}
		if err := h.store.CreateIngredient(ctx, &ing); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create ingredient"})
			return
		}
		ingredientID = ing.ID
		if qty == 0 {
			qty = req.CustomIngredient.Qty
		}
	}

	item, wasExisting, err := h.store.AddPantryItem(ctx, req.UserID, ingredientID, qty)
	if errors.Is(err, store.ErrIngredientNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingredient not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pantry"})
		return
	}

	message := fmt.Sprintf("Added %g %s to pantry", qty, item.Ingredient.Name)
	if wasExisting {
		message = fmt.Sprintf("Updated %s quantity to %g", item.Ingredient.Name, item.Qty)
	}
	c.JSON(http.StatusOK, pantryItemResponse{
		PantryItem:  *item,
		Message:     message,
		WasExisting: wasExisting,
	})
}

func (h *PantryHandler) RemoveFromPantry(c *gin.Context) {
	err := h.store.RemovePantryItem(c.Request.Context(), c.Param("userId"), c.Param("ingredientId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pantry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/replate-app/backend/internal/models"
	"github.com/replate-app/backend/internal/store"
)

// MealPlanHandler serves the weekly meal plan.
type MealPlanHandler struct {
	store store.Store
}

func NewMealPlanHandler(s store.Store) *MealPlanHandler {
	return &MealPlanHandler{store: s}
}

func (h *MealPlanHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/meal-plan/:userId", h.GetMealPlan)
	router.POST("/meal-plan", h.AddToMealPlan)
	router.DELETE("/meal-plan/:day/:mealId", h.RemoveFromMealPlan)
}

func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	plan, err := h.store.GetMealPlan(c.Request.Context(), c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal plan"})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *MealPlanHandler) AddToMealPlan(c *gin.Context) {
	var req AddMealPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Day == "" || req.MealTime == "" || req.Recipe == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Day, meal time, and recipe required"})
		return
	}
	if !models.ValidMealTime(req.MealTime) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid meal time"})
		return
	}
	if req.UserID == "" {
		req.UserID = DefaultUserID
	}

	entry := models.MealPlanEntry{
		UserID:    req.UserID,
		Day:       req.Day,
		MealTime:  req.MealTime,
		Recipe:    *req.Recipe,
		CreatedAt: time.Now(),
	}
	if err := h.store.AddMealPlanEntry(c.Request.Context(), &entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal plan"})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *MealPlanHandler) RemoveFromMealPlan(c *gin.Context) {
	err := h.store.RemoveMealPlanEntry(c.Request.Context(), c.Param("day"), c.Param("mealId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal plan"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

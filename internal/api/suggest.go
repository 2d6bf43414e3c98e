package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replate-app/backend/internal/service"
)

// SuggestHandler serves recipe suggestions.
type SuggestHandler struct {
	suggestions *service.SuggestionService
}

func NewSuggestHandler(s *service.SuggestionService) *SuggestHandler {
	return &SuggestHandler{suggestions: s}
}

func (h *SuggestHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/suggest", h.Suggest)
}

func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.UserID == "" {
		req.UserID = DefaultUserID
	}

	suggestion, err := h.suggestions.Suggest(c.Request.Context(), req.UserID, req.Preferences, req.RankingOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate suggestions"})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

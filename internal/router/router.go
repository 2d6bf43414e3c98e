package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/replate-app/backend/config"
	"github.com/replate-app/backend/internal/api"
	"github.com/replate-app/backend/internal/middleware"
	"github.com/replate-app/backend/internal/service"
	"github.com/replate-app/backend/internal/store"
)

// Deps are the dependencies the routes need.
type Deps struct {
	Store       store.Store
	Suggestions *service.SuggestionService
	Moods       *service.MoodService
}

// New builds the HTTP router with all routes registered.
func New(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	api.NewHealthHandler().RegisterRoutes(router)
	api.NewIngredientHandler(deps.Store).RegisterRoutes(router)
	api.NewPantryHandler(deps.Store).RegisterRoutes(router)
	api.NewRecipeHandler(deps.Store).RegisterRoutes(router)
	api.NewMealPlanHandler(deps.Store).RegisterRoutes(router)
	api.NewProfileHandler(deps.Store).RegisterRoutes(router)
	api.NewSuggestHandler(deps.Suggestions).RegisterRoutes(router)
	api.NewMoodHandler(deps.Moods).RegisterRoutes(router)

	return router
}

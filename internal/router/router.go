package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/platepost/backend/internal/api"
	"github.com/platepost/backend/internal/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *api.AuthHandler
	Catalog    *api.CatalogHandler
	Recipe     *api.RecipeHandler
	Engagement *api.EngagementHandler

	TokenValidator middleware.TokenValidator
	// RecipeLimiter is optional; without redis recipe creation is unthrottled.
	RecipeLimiter *middleware.RateLimiter
}

// Setup configures the application routes. Catalog and recipe reads are
// public; everything that writes requires a valid token.
func Setup(h Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth
	router.POST("/register", h.Auth.Register)
	router.POST("/login", h.Auth.Login)

	// Option catalogs for the submission form
	router.GET("/kitchen", h.Catalog.Kitchens)
	router.GET("/category", h.Catalog.Categories)
	router.GET("/measure", h.Catalog.Measures)
	router.GET("/ingredients", h.Catalog.SearchIngredients)

	// Public recipe reads
	router.GET("/recipes", h.Recipe.List)
	router.GET("/recipes/:id", h.Recipe.Get)
	router.GET("/recipes/:id/comments", h.Engagement.ListComments)

	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(h.TokenValidator))
	{
		protected.POST("/logout", h.Auth.Logout)
		protected.POST("/like", h.Engagement.ToggleLike)
		protected.POST("/recipes/:id/comments", h.Engagement.AddComment)
		protected.POST("/recipes/updateComment", h.Engagement.UpdateComment)
		protected.POST("/recipes/deleteComment", h.Engagement.DeleteComment)
		protected.POST("/recipes/reportComment", h.Engagement.ReportComment)

		create := protected.Group("")
		if h.RecipeLimiter != nil {
			create.Use(h.RecipeLimiter.Middleware())
		}
		create.POST("/recipes", h.Recipe.Create)
	}

	return router
}

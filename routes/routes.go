package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ashutoshmishr0/Blogify-backend/config"
	"github.com/ashutoshmishr0/Blogify-backend/handlers"
	"github.com/ashutoshmishr0/Blogify-backend/middleware"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Users      *handlers.UserHandler
	Posts      *handlers.PostHandler
	Categories *handlers.CategoryHandler
	Upload     *handlers.UploadHandler
}

func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RateLimit(middleware.NewIPRateLimiter(60, time.Minute)))

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	api := router.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/users/:id", h.Users.Get)
	api.GET("/posts", h.Posts.List)
	api.GET("/posts/:id", h.Posts.Get)
	api.GET("/categories", h.Categories.List)

	// Routes that mutate entities require a valid token
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))

	protected.PUT("/users/:id", h.Users.Update)
	protected.DELETE("/users/:id", h.Users.Delete)

	protected.POST("/posts", h.Posts.Create)
	protected.PUT("/posts/:id", h.Posts.Update)
	protected.DELETE("/posts/:id", h.Posts.Delete)

	protected.POST("/categories", h.Categories.Create)
	protected.POST("/upload", h.Upload.Upload)

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(404, gin.H{
				"error": "endpoint not found",
				"path":  c.Request.URL.Path,
			})
			return
		}
		c.Next()
	})

	return router
}

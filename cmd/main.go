package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/AjayKumbham/ctrl-plus-blog/database"
	"github.com/AjayKumbham/ctrl-plus-blog/docs"
	"github.com/AjayKumbham/ctrl-plus-blog/internal/cache"
	"github.com/AjayKumbham/ctrl-plus-blog/internal/controllers"
	"github.com/AjayKumbham/ctrl-plus-blog/internal/repository"
	"github.com/AjayKumbham/ctrl-plus-blog/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	err := godotenv.Load("../.env")
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "Blog API"
	docs.SwaggerInfo.Description = "CRUD REST API for blog posts: listing, search, slugs, drafts and view counts."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Redis is optional: without it the category/tag enumerations hit
	// Postgres on every request.
	var blogRepo repository.BlogPostRepository
	redisClient, err := cache.NewRedisClient()
	if err != nil {
		log.Printf("Warning: Redis unavailable, running without cache: %v", err)
		blogRepo = repository.NewBlogPostRepository(database.DB)
	} else {
		defer redisClient.Close()
		blogRepo = repository.NewCachedBlogPostRepository(database.DB, redisClient)
		log.Println("Initialized cached blog repository")
	}

	blogController := controllers.NewBlogPostController(blogRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "Blog API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
		})
	})

	routes.RegisterBlogRoutes(router, blogController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{
			"database_health": err == nil && result == 1,
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

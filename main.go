package main

import (
	"log"
	"net/http"

	"symphony-forum/config"
	"symphony-forum/handlers"
	"symphony-forum/helper"
	"symphony-forum/repositories"
	"symphony-forum/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logWriter := config.InitLogger(cfg)
	gin.DefaultWriter = logWriter
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Initialize repositories
	tagArticleRepo := repositories.NewTagArticleRepository(repositories.NewGormQueryEngine(db))

	// Initialize services
	tagArticleService := services.NewTagArticleService(tagArticleRepo)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	tagArticleHandler := handlers.NewTagArticleHandler(tagArticleService, httpHelper)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	handlers.RegisterRoutes(router, tagArticleHandler, cfg.JWTKey())

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}

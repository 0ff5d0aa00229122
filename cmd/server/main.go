package main

import (
	"fmt"
	"log"
	"net/http"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamevault/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           GameVault API
// @version         1.0
// @description     Personal video-game library tracker: catalog, collection and wishlist.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()

	// The frontend is served separately and talks to us by fetch.
	router.Use(cors.Default())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// Game routes (protected)
		gameRoutes := api.Group("/games")
		gameRoutes.Use(auth.RequireAuth())
		{
			// Static segments must be registered before /:id
			gameRoutes.GET("/top-rated", handler.GetTopRatedGames)
			gameRoutes.GET("/platform/:platform", handler.GetGamesByPlatform)
			gameRoutes.GET("/genre/:genre", handler.GetGamesByGenre)

			// Collection and wishlist
			gameRoutes.GET("/user/collection", handler.GetCollection)
			gameRoutes.POST("/user/collection", handler.AddToCollection)
			gameRoutes.DELETE("/user/collection/:gameId", handler.RemoveFromCollection)
			gameRoutes.GET("/user/wishlist", handler.GetWishlist)
			gameRoutes.POST("/user/wishlist", handler.AddToWishlist)
			gameRoutes.DELETE("/user/wishlist/:gameId", handler.RemoveFromWishlist)
			gameRoutes.POST("/user/wishlist/:gameId/move", handler.MoveToCollection)

			// CRUD
			gameRoutes.GET("", handler.GetMyGames)
			gameRoutes.POST("", handler.AddGame)
			gameRoutes.POST("/bulk", handler.AddBulkGames)
			gameRoutes.GET("/:id", handler.GetGameByID)
			gameRoutes.PUT("/:id", handler.UpdateGame)
			gameRoutes.DELETE("/:id", handler.DeleteGame)
		}
	}

	addr := ":" + config.AppConfig.Port
	fmt.Println("Server is running on " + addr)
	fmt.Println("Swagger UI is available at http://localhost:" + config.AppConfig.Port + "/swagger/index.html")
	log.Fatal(router.Run(addr))
}

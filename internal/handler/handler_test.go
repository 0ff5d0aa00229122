package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupRouter gives each test a fresh in-memory database and a router with
// the same routes as cmd/server.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
	}

	dsn := fmt.Sprintf("file:handler_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	router := gin.New()
	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	authRoutes.POST("/register", RegisterUser)
	authRoutes.POST("/login", LoginUser)

	gameRoutes := api.Group("/games")
	gameRoutes.Use(auth.RequireAuth())
	gameRoutes.GET("/top-rated", GetTopRatedGames)
	gameRoutes.GET("/platform/:platform", GetGamesByPlatform)
	gameRoutes.GET("/genre/:genre", GetGamesByGenre)
	gameRoutes.GET("/user/collection", GetCollection)
	gameRoutes.POST("/user/collection", AddToCollection)
	gameRoutes.DELETE("/user/collection/:gameId", RemoveFromCollection)
	gameRoutes.GET("/user/wishlist", GetWishlist)
	gameRoutes.POST("/user/wishlist", AddToWishlist)
	gameRoutes.DELETE("/user/wishlist/:gameId", RemoveFromWishlist)
	gameRoutes.POST("/user/wishlist/:gameId/move", MoveToCollection)
	gameRoutes.GET("", GetMyGames)
	gameRoutes.POST("", AddGame)
	gameRoutes.POST("/bulk", AddBulkGames)
	gameRoutes.GET("/:id", GetGameByID)
	gameRoutes.PUT("/:id", UpdateGame)
	gameRoutes.DELETE("/:id", DeleteGame)

	return router
}

// doRequest performs a JSON request against the router and decodes the
// envelope into a generic map.
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]interface{}
	if len(rec.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	}
	return rec.Code, envelope
}

// registerAndLogin creates an account and returns a live bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine, username, email, password string) string {
	t.Helper()

	status, _ := doRequest(t, router, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doRequest(t, router, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status)

	token, ok := body["token"].(string)
	require.True(t, ok, "login response must carry a token")
	return token
}

// validGame returns a complete game payload that passes validation.
func validGame(title string) gin.H {
	return gin.H{
		"title":       title,
		"platform":    "PC",
		"genre":       "FPS",
		"year":        1993,
		"rating":      4.8,
		"description": "classic",
	}
}

// addGame creates a game and returns its id.
func addGame(t *testing.T, router *gin.Engine, token string, payload gin.H) uint {
	t.Helper()

	status, body := doRequest(t, router, http.MethodPost, "/api/games", token, payload)
	require.Equal(t, http.StatusCreated, status)

	game, ok := body["game"].(map[string]interface{})
	require.True(t, ok)
	id, ok := game["id"].(float64)
	require.True(t, ok)
	return uint(id)
}

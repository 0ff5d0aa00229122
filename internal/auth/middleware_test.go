package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"gamevault/backend/internal/config"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"
	"gamevault/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

func setupGate(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
	}

	dsn := fmt.Sprintf("file:auth_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	router := gin.New()
	router.GET("/protected", RequireAuth(), func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"success": true, "username": user.Username})
	})
	return router
}

func createUser(t *testing.T, username, email string) models.User {
	t.Helper()
	user := models.User{Username: username, Email: email, PasswordHash: "irrelevant"}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func probe(t *testing.T, router *gin.Engine, authHeader string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestRequireAuthAcceptsValidToken(t *testing.T) {
	router := setupGate(t)
	user := createUser(t, "alice", "alice@x.com")

	token, err := jwt.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)

	status, body := probe(t, router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", body["username"])
}

func TestRequireAuthRejectsMissingToken(t *testing.T) {
	router := setupGate(t)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc"},
		{"bare token", "sometoken"},
		{"empty bearer", "Bearer"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := probe(t, router, tc.header)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, "Not authorized, no token provided", body["message"])
		})
	}
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	router := setupGate(t)

	status, body := probe(t, router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Not authorized, token failed", body["message"])
}

func TestRequireAuthRejectsExpiredToken(t *testing.T) {
	router := setupGate(t)
	user := createUser(t, "alice", "alice@x.com")

	config.AppConfig.TokenTTLHours = -1
	token, err := jwt.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)
	config.AppConfig.TokenTTLHours = 1

	status, body := probe(t, router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Not authorized, token failed", body["message"])
}

func TestRequireAuthRejectsUnknownUser(t *testing.T) {
	router := setupGate(t)
	user := createUser(t, "alice", "alice@x.com")

	token, err := jwt.GenerateToken(user.ID, user.Email)
	require.NoError(t, err)

	// A token that outlives its account no longer opens the gate.
	require.NoError(t, database.DB.Unscoped().Delete(&user).Error)

	status, body := probe(t, router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "User not found", body["message"])
}

package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCollection(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")
	id := addGame(t, router, token, validGame("Doom"))

	status, body := doRequest(t, router, http.MethodPost, "/api/games/user/collection", token, gin.H{"gameId": id})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Game added to collection", body["message"])

	// The second add is a conflict and the list stays the same size.
	status, body = doRequest(t, router, http.MethodPost, "/api/games/user/collection", token, gin.H{"gameId": id})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Game already in your collection", body["message"])

	status, body = doRequest(t, router, http.MethodGet, "/api/games/user/collection", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
}

func TestAddToCollectionChecksGame(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")

	status, body := doRequest(t, router, http.MethodPost, "/api/games/user/collection", token, gin.H{"gameId": 42})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Game not found", body["message"])

	status, body = doRequest(t, router, http.MethodPost, "/api/games/user/collection", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Game ID is required", body["message"])
}

func TestGameMaySitInBothLists(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")
	id := addGame(t, router, token, validGame("Doom"))

	status, _ := doRequest(t, router, http.MethodPost, "/api/games/user/collection", token, gin.H{"gameId": id})
	require.Equal(t, http.StatusOK, status)
	status, _ = doRequest(t, router, http.MethodPost, "/api/games/user/wishlist", token, gin.H{"gameId": id})
	require.Equal(t, http.StatusOK, status)

	status, body := doRequest(t, router, http.MethodGet, "/api/games/user/collection", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = doRequest(t, router, http.MethodGet, "/api/games/user/wishlist", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])
}

func TestRemoveFromCollectionIsIdempotent(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")
	id := addGame(t, router, token, validGame("Doom"))

	status, _ := doRequest(t, router, http.MethodPost, "/api/games/user/collection", token, gin.H{"gameId": id})
	require.Equal(t, http.StatusOK, status)

	path := fmt.Sprintf("/api/games/user/collection/%d", id)
	status, body := doRequest(t, router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Game removed from collection", body["message"])

	// Removing an id that is no longer present still succeeds.
	status, body = doRequest(t, router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Game removed from collection", body["message"])
}

func TestRemoveFromWishlistIsIdempotent(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")
	id := addGame(t, router, token, validGame("Doom"))

	path := fmt.Sprintf("/api/games/user/wishlist/%d", id)
	status, body := doRequest(t, router, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Game removed from wishlist", body["message"])
}

func TestWishlistKeepsAppendOrder(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")

	first := addGame(t, router, token, validGame("First"))
	second := addGame(t, router, token, validGame("Second"))

	// Wishlist the newer game before the older one.
	status, _ := doRequest(t, router, http.MethodPost, "/api/games/user/wishlist", token, gin.H{"gameId": second})
	require.Equal(t, http.StatusOK, status)
	status, _ = doRequest(t, router, http.MethodPost, "/api/games/user/wishlist", token, gin.H{"gameId": first})
	require.Equal(t, http.StatusOK, status)

	status, body := doRequest(t, router, http.MethodGet, "/api/games/user/wishlist", token, nil)
	require.Equal(t, http.StatusOK, status)

	games := body["games"].([]interface{})
	require.Len(t, games, 2)
	assert.Equal(t, "Second", games[0].(map[string]interface{})["title"])
	assert.Equal(t, "First", games[1].(map[string]interface{})["title"])
}

func TestMoveToCollection(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")
	id := addGame(t, router, token, validGame("Doom"))

	status, _ := doRequest(t, router, http.MethodPost, "/api/games/user/wishlist", token, gin.H{"gameId": id})
	require.Equal(t, http.StatusOK, status)

	path := fmt.Sprintf("/api/games/user/wishlist/%d/move", id)
	status, body := doRequest(t, router, http.MethodPost, path, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Game moved to collection", body["message"])

	status, body = doRequest(t, router, http.MethodGet, "/api/games/user/collection", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), body["count"])

	status, body = doRequest(t, router, http.MethodGet, "/api/games/user/wishlist", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), body["count"])

	// Moving again conflicts with the entry already in the collection.
	status, body = doRequest(t, router, http.MethodPost, path, token, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Game already in your collection", body["message"])
}

func TestMoveToCollectionMissingGame(t *testing.T) {
	router := setupRouter(t)
	token := registerAndLogin(t, router, "alice", "alice@x.com", "secret1")

	status, body := doRequest(t, router, http.MethodPost, "/api/games/user/wishlist/42/move", token, nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Game not found", body["message"])
}

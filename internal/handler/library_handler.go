package handler

import (
	"net/http"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// LibraryInput defines the body for adding a game to a list.
type LibraryInput struct {
	GameID uint `json:"gameId" example:"1"`
}

// region --- Helpers ---

// listGames returns the games in one of the user's lists, in append order.
func listGames(userID uint, list models.ListKind) ([]models.Game, error) {
	var games []models.Game
	err := database.DB.Model(&models.Game{}).
		Joins("JOIN library_entries ON library_entries.game_id = games.id").
		Where("library_entries.user_id = ? AND library_entries.list = ?", userID, list).
		Order("library_entries.created_at ASC").
		Preload("AddedBy").
		Find(&games).Error
	return games, err
}

func inList(userID, gameID uint, list models.ListKind) bool {
	var entry models.LibraryEntry
	err := database.DB.
		Where("user_id = ? AND game_id = ? AND list = ?", userID, gameID, list).
		First(&entry).Error
	return err == nil
}

func getList(c *gin.Context, list models.ListKind, failureMessage string) {
	user := auth.CurrentUser(c)

	games, err := listGames(user.ID, list)
	if err != nil {
		fail(c, http.StatusInternalServerError, failureMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(games),
		"games":   newGameResponses(games),
	})
}

func addToList(c *gin.Context, list models.ListKind, conflictMessage, successMessage, failureMessage string) {
	user := auth.CurrentUser(c)

	var input LibraryInput
	if err := c.ShouldBindJSON(&input); err != nil || input.GameID == 0 {
		fail(c, http.StatusBadRequest, "Game ID is required")
		return
	}

	var game models.Game
	if err := database.DB.First(&game, input.GameID).Error; err != nil {
		fail(c, http.StatusNotFound, "Game not found")
		return
	}

	if inList(user.ID, game.ID, list) {
		fail(c, http.StatusBadRequest, conflictMessage)
		return
	}

	entry := models.LibraryEntry{UserID: user.ID, GameID: game.ID, List: list}
	if err := database.DB.Create(&entry).Error; err != nil {
		fail(c, http.StatusInternalServerError, failureMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": successMessage,
	})
}

// removeFromList deletes an entry if present. Removal is idempotent: a
// gameId that is not in the list still answers success.
func removeFromList(c *gin.Context, list models.ListKind, successMessage, failureMessage string) {
	user := auth.CurrentUser(c)

	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}

	err := database.DB.
		Where("user_id = ? AND game_id = ? AND list = ?", user.ID, gameID, list).
		Delete(&models.LibraryEntry{}).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, failureMessage)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": successMessage,
	})
}

// endregion

// region --- Collection Handlers ---

// GetCollection godoc
// @Summary      Get the caller's collection
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /games/user/collection [get]
func GetCollection(c *gin.Context) {
	getList(c, models.ListCollection, "Failed to fetch collection")
}

// AddToCollection godoc
// @Summary      Add a game to the caller's collection
// @Tags         library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body LibraryInput true "Game to add"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Missing ID or already in collection"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/user/collection [post]
func AddToCollection(c *gin.Context) {
	addToList(c, models.ListCollection,
		"Game already in your collection",
		"Game added to collection",
		"Failed to add game to collection")
}

// RemoveFromCollection godoc
// @Summary      Remove a game from the caller's collection
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /games/user/collection/{gameId} [delete]
func RemoveFromCollection(c *gin.Context) {
	removeFromList(c, models.ListCollection,
		"Game removed from collection",
		"Failed to remove game from collection")
}

// endregion

// region --- Wishlist Handlers ---

// GetWishlist godoc
// @Summary      Get the caller's wishlist
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /games/user/wishlist [get]
func GetWishlist(c *gin.Context) {
	getList(c, models.ListWishlist, "Failed to fetch wishlist")
}

// AddToWishlist godoc
// @Summary      Add a game to the caller's wishlist
// @Tags         library
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body LibraryInput true "Game to add"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Missing ID or already in wishlist"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/user/wishlist [post]
func AddToWishlist(c *gin.Context) {
	addToList(c, models.ListWishlist,
		"Game already in your wishlist",
		"Game added to wishlist",
		"Failed to add game to wishlist")
}

// RemoveFromWishlist godoc
// @Summary      Remove a game from the caller's wishlist
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /games/user/wishlist/{gameId} [delete]
func RemoveFromWishlist(c *gin.Context) {
	removeFromList(c, models.ListWishlist,
		"Game removed from wishlist",
		"Failed to remove game from wishlist")
}

// MoveToCollection godoc
// @Summary      Move a game from the wishlist to the collection
// @Description  Adds the game to the collection and removes it from the wishlist in one transaction.
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        gameId path int true "Game ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse "Already in collection"
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/user/wishlist/{gameId}/move [post]
func MoveToCollection(c *gin.Context) {
	user := auth.CurrentUser(c)

	gameID, ok := parseIDParam(c, "gameId")
	if !ok {
		return
	}

	var game models.Game
	if err := database.DB.First(&game, gameID).Error; err != nil {
		fail(c, http.StatusNotFound, "Game not found")
		return
	}

	if inList(user.ID, game.ID, models.ListCollection) {
		fail(c, http.StatusBadRequest, "Game already in your collection")
		return
	}

	// Both writes ride one transaction so the game can never end up in
	// both lists after a partial failure.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		entry := models.LibraryEntry{UserID: user.ID, GameID: game.ID, List: models.ListCollection}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
		return tx.
			Where("user_id = ? AND game_id = ? AND list = ?", user.ID, game.ID, models.ListWishlist).
			Delete(&models.LibraryEntry{}).Error
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to move game to collection")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Game moved to collection",
	})
}

// endregion

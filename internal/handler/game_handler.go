package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gamevault/backend/internal/auth"
	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Games at or above this rating count as top-rated.
const topRatedThreshold = 4.5

// region --- DTOs ---

// GameInput defines the structure for creating a game. Year and rating are
// pointers so that a provided zero is distinguishable from an absent field.
type GameInput struct {
	Title       string   `json:"title" example:"Doom"`
	Platform    string   `json:"platform" example:"PC"`
	Genre       string   `json:"genre" example:"FPS"`
	Year        *int     `json:"year" example:"1993"`
	Rating      *float64 `json:"rating" example:"4.8"`
	Description string   `json:"description" example:"classic"`
	Developer   string   `json:"developer,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	PosterURL   string   `json:"posterUrl,omitempty"`
}

// BulkGameInput wraps a list of games for bulk import.
type BulkGameInput struct {
	Games []GameInput `json:"games"`
}

// UpdateGameInput defines the structure for a partial game update. Every
// field is optional; only provided fields are validated and overwritten.
type UpdateGameInput struct {
	Title       *string  `json:"title"`
	Platform    *string  `json:"platform"`
	Genre       *string  `json:"genre"`
	Year        *int     `json:"year"`
	Rating      *float64 `json:"rating"`
	Description *string  `json:"description"`
	Developer   *string  `json:"developer"`
	Publisher   *string  `json:"publisher"`
	PosterURL   *string  `json:"posterUrl"`
}

// endregion

// region --- Helpers ---

func (in GameInput) hasRequiredFields() bool {
	return strings.TrimSpace(in.Title) != "" &&
		in.Platform != "" &&
		in.Genre != "" &&
		in.Year != nil &&
		in.Rating != nil &&
		strings.TrimSpace(in.Description) != ""
}

// validateGameInput checks every constrained field of a complete game input
// and returns an error message, or "" when the input is valid. Required
// fields must already be present.
func validateGameInput(in GameInput) string {
	if len(in.Title) > 100 {
		return "Title cannot exceed 100 characters"
	}
	if !validation.ValidPlatform(in.Platform) {
		return "Invalid platform"
	}
	if !validation.ValidGenre(in.Genre) {
		return "Invalid genre"
	}
	if !validation.ValidYear(*in.Year) {
		return "Year must be between 1980 and 2025"
	}
	if !validation.ValidRating(*in.Rating) {
		return "Rating must be between 0 and 5"
	}
	if len(in.Description) > 500 {
		return "Description cannot exceed 500 characters"
	}
	if len(in.Developer) > 100 {
		return "Developer name cannot exceed 100 characters"
	}
	if len(in.Publisher) > 100 {
		return "Publisher name cannot exceed 100 characters"
	}
	if len(in.PosterURL) > 300 {
		return "Poster URL cannot exceed 300 characters"
	}
	return ""
}

func (in GameInput) toModel(addedByID uint) models.Game {
	return models.Game{
		Title:       strings.TrimSpace(in.Title),
		Platform:    models.Platform(in.Platform),
		Genre:       models.Genre(in.Genre),
		Year:        *in.Year,
		Rating:      *in.Rating,
		Description: strings.TrimSpace(in.Description),
		Developer:   strings.TrimSpace(in.Developer),
		Publisher:   strings.TrimSpace(in.Publisher),
		PosterURL:   strings.TrimSpace(in.PosterURL),
		AddedByID:   addedByID,
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		fail(c, http.StatusBadRequest, "Invalid game ID")
		return 0, false
	}
	return uint(id), true
}

// endregion

// region --- CRUD Handlers ---

// GetMyGames godoc
// @Summary      List the caller's games
// @Description  Returns every game added by the authenticated user, newest first.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [get]
func GetMyGames(c *gin.Context) {
	user := auth.CurrentUser(c)

	var games []models.Game
	err := database.DB.
		Where("added_by_id = ?", user.ID).
		Preload("AddedBy").
		Order("created_at DESC").
		Find(&games).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch games for this user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(games),
		"games":   newGameResponses(games),
	})
}

// GetGameByID godoc
// @Summary      Get a single game
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var game models.Game
	if err := database.DB.Preload("AddedBy").First(&game, id).Error; err != nil {
		fail(c, http.StatusNotFound, "Game not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"game":    newGameResponse(game),
	})
}

// AddGame godoc
// @Summary      Add a new game
// @Description  Validates and persists a game attributed to the caller.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games [post]
func AddGame(c *gin.Context) {
	user := auth.CurrentUser(c)

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !input.hasRequiredFields() {
		fail(c, http.StatusBadRequest, "Please provide all required fields")
		return
	}
	if msg := validateGameInput(input); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	game := input.toModel(user.ID)
	if err := database.DB.Create(&game).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to add game")
		return
	}
	game.AddedBy = user

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Game added successfully",
		"game":    newGameResponse(game),
	})
}

// AddBulkGames godoc
// @Summary      Add multiple games at once
// @Description  Validates every game up front; nothing is persisted if any element fails.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body BulkGameInput true "Games to import"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /games/bulk [post]
func AddBulkGames(c *gin.Context) {
	user := auth.CurrentUser(c)

	var input BulkGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(input.Games) == 0 {
		fail(c, http.StatusBadRequest, `Please provide a non-empty "games" array`)
		return
	}

	// Fail fast on the first invalid element, before any insert.
	games := make([]models.Game, 0, len(input.Games))
	for _, in := range input.Games {
		if !in.hasRequiredFields() {
			fail(c, http.StatusBadRequest, "Each game must include title, platform, genre, year, rating, and description")
			return
		}
		if msg := validateGameInput(in); msg != "" {
			fail(c, http.StatusBadRequest, fmt.Sprintf("%s for game: %s", msg, in.Title))
			return
		}
		games = append(games, in.toModel(user.ID))
	}

	if err := database.DB.Create(&games).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to add games in bulk")
		return
	}
	for i := range games {
		games[i].AddedBy = user
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Games added successfully",
		"count":   len(games),
		"games":   newGameResponses(games),
	})
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Partial update; only provided fields are validated and overwritten.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Game ID"
// @Param        input body      UpdateGameInput true  "Fields to change"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Failure      500   {object}  ErrorResponse
// @Router       /games/{id} [put]
func UpdateGame(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		fail(c, http.StatusNotFound, "Game not found")
		return
	}

	var input UpdateGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			fail(c, http.StatusBadRequest, "Game title is required")
			return
		}
		if len(title) > 100 {
			fail(c, http.StatusBadRequest, "Title cannot exceed 100 characters")
			return
		}
		game.Title = title
	}
	if input.Platform != nil {
		if !validation.ValidPlatform(*input.Platform) {
			fail(c, http.StatusBadRequest, "Invalid platform")
			return
		}
		game.Platform = models.Platform(*input.Platform)
	}
	if input.Genre != nil {
		if !validation.ValidGenre(*input.Genre) {
			fail(c, http.StatusBadRequest, "Invalid genre")
			return
		}
		game.Genre = models.Genre(*input.Genre)
	}
	if input.Year != nil {
		if !validation.ValidYear(*input.Year) {
			fail(c, http.StatusBadRequest, "Year must be between 1980 and 2025")
			return
		}
		game.Year = *input.Year
	}
	if input.Rating != nil {
		if !validation.ValidRating(*input.Rating) {
			fail(c, http.StatusBadRequest, "Rating must be between 0 and 5")
			return
		}
		game.Rating = *input.Rating
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			fail(c, http.StatusBadRequest, "Description is required")
			return
		}
		if len(description) > 500 {
			fail(c, http.StatusBadRequest, "Description cannot exceed 500 characters")
			return
		}
		game.Description = description
	}
	if input.Developer != nil {
		if len(*input.Developer) > 100 {
			fail(c, http.StatusBadRequest, "Developer name cannot exceed 100 characters")
			return
		}
		game.Developer = strings.TrimSpace(*input.Developer)
	}
	if input.Publisher != nil {
		if len(*input.Publisher) > 100 {
			fail(c, http.StatusBadRequest, "Publisher name cannot exceed 100 characters")
			return
		}
		game.Publisher = strings.TrimSpace(*input.Publisher)
	}
	if input.PosterURL != nil {
		if len(*input.PosterURL) > 300 {
			fail(c, http.StatusBadRequest, "Poster URL cannot exceed 300 characters")
			return
		}
		game.PosterURL = strings.TrimSpace(*input.PosterURL)
	}

	if err := database.DB.Save(&game).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Failed to update game")
		return
	}

	database.DB.Preload("AddedBy").First(&game, id)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Game updated successfully",
		"game":    newGameResponse(game),
	})
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game and removes it from every user's collection and wishlist.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      500  {object}  ErrorResponse
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		fail(c, http.StatusNotFound, "Game not found")
		return
	}

	// The cascade and the delete ride one transaction so a crash cannot
	// leave dangling references in anyone's lists.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("game_id = ?", game.ID).Delete(&models.LibraryEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&game).Error
	})
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to delete game")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Game deleted successfully",
	})
}

// endregion

// region --- Filter Handlers ---

func listGamesWhere(c *gin.Context, failureMessage string, query string, args ...interface{}) {
	var games []models.Game
	err := database.DB.
		Where(query, args...).
		Preload("AddedBy").
		Order("created_at DESC").
		Find(&games).Error
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

// GetGamesByPlatform godoc
// @Summary      List games for a platform
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        platform path string true "Platform"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /games/platform/{platform} [get]
func GetGamesByPlatform(c *gin.Context) {
	listGamesWhere(c, "Failed to filter games by platform", "platform = ?", c.Param("platform"))
}

// GetGamesByGenre godoc
// @Summary      List games for a genre
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        genre path string true "Genre"
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /games/genre/{genre} [get]
func GetGamesByGenre(c *gin.Context) {
	listGamesWhere(c, "Failed to filter games by genre", "genre = ?", c.Param("genre"))
}

// GetTopRatedGames godoc
// @Summary      List top-rated games
// @Description  Games rated 4.5 or higher, best rating first, newest first on ties.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /games/top-rated [get]
func GetTopRatedGames(c *gin.Context) {
	var games []models.Game
	err := database.DB.
		Where("rating >= ?", topRatedThreshold).
		Preload("AddedBy").
		Order("rating DESC, created_at DESC").
		Find(&games).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, "Failed to fetch top-rated games")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(games),
		"games":   newGameResponses(games),
	})
}

// endregion

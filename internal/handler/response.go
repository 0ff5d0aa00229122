package handler

import (
	"time"

	"gamevault/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope: {success, message?, ...}.
// The helpers below keep the handlers from repeating it.

// ErrorResponse represents a generic error envelope.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"An error message"`
}

// UserSummary is the public view of a user account.
type UserSummary struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
}

// AddedByResponse identifies the user who created a game entry.
type AddedByResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"alice"`
}

// GameResponse is the wire representation of a game.
type GameResponse struct {
	ID          uint            `json:"id" example:"1"`
	Title       string          `json:"title" example:"Doom"`
	Platform    models.Platform `json:"platform" example:"PC"`
	Genre       models.Genre    `json:"genre" example:"FPS"`
	Year        int             `json:"year" example:"1993"`
	Rating      float64         `json:"rating" example:"4.8"`
	Description string          `json:"description" example:"classic"`
	Developer   string          `json:"developer,omitempty"`
	Publisher   string          `json:"publisher,omitempty"`
	PosterURL   string          `json:"posterUrl,omitempty"`
	AddedBy     AddedByResponse `json:"addedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func newUserSummary(user models.User) UserSummary {
	return UserSummary{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:          game.ID,
		Title:       game.Title,
		Platform:    game.Platform,
		Genre:       game.Genre,
		Year:        game.Year,
		Rating:      game.Rating,
		Description: game.Description,
		Developer:   game.Developer,
		Publisher:   game.Publisher,
		PosterURL:   game.PosterURL,
		AddedBy: AddedByResponse{
			ID:       game.AddedBy.ID,
			Username: game.AddedBy.Username,
		},
		CreatedAt: game.CreatedAt,
		UpdatedAt: game.UpdatedAt,
	}
}

func newGameResponses(games []models.Game) []GameResponse {
	responses := make([]GameResponse, 0, len(games))
	for _, game := range games {
		responses = append(responses, newGameResponse(game))
	}
	return responses
}

// fail writes an error envelope and stops the handler.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

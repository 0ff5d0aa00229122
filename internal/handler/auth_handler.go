package handler

import (
	"net/http"
	"strings"

	"gamevault/backend/internal/database"
	"gamevault/backend/internal/models"
	"gamevault/backend/internal/validation"
	"gamevault/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string `json:"username" example:"alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"secret1"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"secret1"`
}

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new account. No token is issued; log in afterwards.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/register [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	username := strings.TrimSpace(input.Username)
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if username == "" || email == "" || input.Password == "" {
		fail(c, http.StatusBadRequest, "Please provide username, email, and password")
		return
	}

	if !validation.ValidUsername(username) {
		fail(c, http.StatusBadRequest, "Username must be 3-20 characters long")
		return
	}

	if !validation.ValidEmail(email) {
		fail(c, http.StatusBadRequest, "Please provide a valid email address")
		return
	}

	if !validation.ValidPassword(input.Password) {
		fail(c, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		fail(c, http.StatusBadRequest, "Email already registered")
		return
	}
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		fail(c, http.StatusBadRequest, "Username already taken")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := database.DB.Create(&user).Error; err != nil {
		fail(c, http.StatusInternalServerError, "Server error during registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    newUserSummary(user),
	})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Authenticates with email and password and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  ErrorResponse
// @Router       /auth/login [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	if email == "" || input.Password == "" {
		fail(c, http.StatusBadRequest, "Please provide email and password")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		// Same message as a wrong password so callers cannot probe for accounts.
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := jwt.GenerateToken(user.ID, user.Email)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    newUserSummary(user),
	})
}

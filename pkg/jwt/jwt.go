package jwt

import (
	"errors"
	"time"

	"gamevault/backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every verification failure. Bad signature,
// malformed structure and expiry are deliberately indistinguishable to the
// caller.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the identity encoded in a session token.
type Claims struct {
	UserID uint
	Email  string
}

// GenerateToken creates a new JWT for a given user. The lifetime comes from
// TOKEN_TTL_HOURS (7 days by default).
func GenerateToken(userID uint, email string) (string, error) {
	ttl := time.Duration(config.AppConfig.TokenTTLHours) * time.Hour

	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   time.Now().Add(ttl).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

// ParseToken verifies a token string and extracts its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &Claims{UserID: uint(sub), Email: email}, nil
}

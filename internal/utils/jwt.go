package utils

import (
	"time"

	"bazario_back_end/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Durées de validité : courte à l'inscription, longue au login.
const (
	SignupTokenTTL = 1 * time.Hour
	LoginTokenTTL  = 24 * time.Hour
)

// GenerateJWT signe un token HS256 portant {id, email, isAdmin}.
func GenerateJWT(user models.User, ttl time.Duration, secret string) (string, error) {
	claims := jwt.MapClaims{
		"id":      user.ID,
		"email":   user.Email,
		"isAdmin": user.IsAdmin,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"bazario_back_end/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const claimsKey = "claims"

// Claims est la valeur d'identité typée extraite une seule fois du token et
// passée explicitement dans le contexte de la requête.
type Claims struct {
	UserID  string
	Email   string
	IsAdmin bool
}

var (
	ErrTokenInvalid = errors.New("token invalide")
	ErrNoUserID     = errors.New("claim id manquante")
)

// ParseToken vérifie la signature HS256 et l'expiration, puis matérialise
// les claims {id, email, isAdmin}.
func ParseToken(tokenString, secret string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrTokenInvalid
	}

	userID, ok := mapClaims["id"].(string)
	if !ok || userID == "" {
		return Claims{}, ErrNoUserID
	}

	claims := Claims{UserID: userID}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if isAdmin, ok := mapClaims["isAdmin"].(bool); ok {
		claims.IsAdmin = isAdmin
	}
	return claims, nil
}

// AuthRequired exige un header `Authorization: Bearer <token>` valide.
func AuthRequired(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			c.Abort()
			return
		}

		claims, err := ParseToken(parts[1], cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// GetClaims récupère les claims posées par AuthRequired.
func GetClaims(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}

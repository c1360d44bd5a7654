package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin vérifie que l'appelant authentifié porte le flag admin.
func RequireAdmin(c *gin.Context) {
	claims, ok := GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		c.Abort()
		return
	}
	if !claims.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Access denied, admin only"})
		c.Abort()
		return
	}
	c.Next()
}

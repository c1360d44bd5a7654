package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bazario_back_end/internal/database"

	"github.com/gin-gonic/gin"
)

const (
	LoginMaxAttempts  = 5
	SignupMaxAttempts = 3

	LoginCooldown  = 15 * time.Minute
	SignupCooldown = 30 * time.Minute
	attemptsWindow = 15 * time.Minute
)

// LoginRateLimit limite les tentatives de connexion par email.
func LoginRateLimit() gin.HandlerFunc {
	return emailRateLimit("login", LoginMaxAttempts, LoginCooldown)
}

// SignupRateLimit limite les créations de compte par email.
func SignupRateLimit() gin.HandlerFunc {
	return emailRateLimit("signup", SignupMaxAttempts, SignupCooldown)
}

func emailRateLimit(scope string, maxAttempts int, cooldown time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Lire le body sans le consommer
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Email == "" {
			c.Next()
			return
		}

		ctx := context.Background()
		attemptsKey := scope + "_attempts:" + input.Email
		cooldownKey := scope + "_cooldown:" + input.Email

		if database.Redis.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.Redis.TTL(ctx, cooldownKey).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message":     fmt.Sprintf("Too many attempts, retry in %d minutes", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		attempts, _ := database.Redis.Get(ctx, attemptsKey).Int()
		if attempts >= maxAttempts {
			database.Redis.Set(ctx, cooldownKey, "1", cooldown)
			database.Redis.Del(ctx, attemptsKey)
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message":     fmt.Sprintf("Too many attempts, retry in %d minutes", int(cooldown.Minutes())),
				"retry_after": int(cooldown.Seconds()),
			})
			c.Abort()
			return
		}

		database.Redis.Incr(ctx, attemptsKey)
		database.Redis.Expire(ctx, attemptsKey, attemptsWindow)
		c.Next()
	}
}

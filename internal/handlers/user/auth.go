package user

import (
	"context"
	"log"
	"net/http"
	"time"

	"bazario_back_end/internal/config"
	"bazario_back_end/internal/database"
	"bazario_back_end/internal/middleware"
	"bazario_back_end/internal/models"
	"bazario_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Signup crée un compte local. Conflict si l'email est déjà enregistré.
// Le token émis à l'inscription est court (1h), celui du login dure 24h.
func Signup(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			UserName string `json:"userName" validate:"required"`
			Email    string `json:"email" validate:"required,email"`
			Password string `json:"password" validate:"required,min=6"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}
		if violations := utils.ValidateStruct(input); violations != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": violations})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// email déjà pris ?
		var existing models.User
		err := database.Users().FindOne(ctx, bson.M{"email": input.Email}).Decode(&existing)
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
			return
		}
		if err != mongo.ErrNoDocuments {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		hashedPassword, err := utils.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		user := models.User{
			ID:       primitive.NewObjectID().Hex(),
			UserName: input.UserName,
			Email:    input.Email,
			Password: hashedPassword,
			IsAdmin:  false, // jamais admin à l'inscription
		}

		if _, err := database.Users().InsertOne(ctx, user); err != nil {
			// l'index unique sur email couvre la course entre FindOne et InsertOne
			if mongo.IsDuplicateKeyError(err) {
				c.JSON(http.StatusConflict, gin.H{"message": "User already exists"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		token, err := utils.GenerateJWT(user, utils.SignupTokenTTL, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		log.Printf("✅ Nouveau compte créé: %s", user.Email)
		c.JSON(http.StatusCreated, gin.H{
			"token":   token,
			"userId":  user.ID,
			"isAdmin": user.IsAdmin,
		})
	}
}

// Login émet un token 24h. La même erreur couvre email inconnu et mauvais
// mot de passe.
func Login(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var user models.User
		err := database.Users().FindOne(ctx, bson.M{"email": input.Email}).Decode(&user)
		if err != nil || !utils.CheckPassword(user.Password, input.Password) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateJWT(user, utils.LoginTokenTTL, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"token":   token,
			"userId":  user.ID,
			"isAdmin": user.IsAdmin,
		})
	}
}

// Profile renvoie l'utilisateur courant, sans jamais exposer le hash.
func Profile(c *gin.Context) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := database.Users().FindOne(ctx, bson.M{"_id": claims.UserID}).Decode(&user)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"email":    user.Email,
		"userName": user.UserName,
		"isAdmin":  user.IsAdmin,
	})
}

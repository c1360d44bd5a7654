package main

import (
	"context"
	"log"

	"bazario_back_end/internal/config"
	"bazario_back_end/internal/database"
	"bazario_back_end/internal/handlers/payement"
	"bazario_back_end/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	database.ConnectDatabases(cfg)
	defer database.Close()

	payement.Init(cfg)

	// ✅ Pré-chauffer le cache Redis
	warmupRedisCache()

	r := gin.Default()
	routes.RegisterRoutes(r, cfg)

	log.Println("🚀 Serveur Bazario lancé sur le port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("❌ Erreur serveur:", err)
	}
}

// warmupRedisCache fait un ping pour établir la connexion avant le premier
// appel.
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Cache Redis pré-chauffé")
	}
}

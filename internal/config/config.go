package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config regroupe toute la configuration du serveur, chargée une seule fois
// au démarrage puis passée par référence aux composants.
type Config struct {
	Port string

	MongoURI      string
	MongoDatabase string

	JWTSecret string

	RazorpayKeyID     string
	RazorpayKeySecret string

	RedisHost     string
	RedisPassword string

	ElasticURL      string
	ElasticUser     string
	ElasticPassword string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool

	SMTPHost     string
	SMTPUsername string
	SMTPPassword string
	EmailFrom    string

	// Taille maximale du body accepté (en octets)
	MaxBodyBytes int64
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:     getEnv("MONGO_DATABASE", "bazario"),
		JWTSecret:         getEnv("JWT_SECRET", "super_secret"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		RedisHost:         getEnv("REDIS_HOST", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		ElasticURL:        os.Getenv("ELASTIC_URL"),
		ElasticUser:       os.Getenv("ELASTIC_USER"),
		ElasticPassword:   os.Getenv("ELASTIC_PASSWORD"),
		MinioEndpoint:     os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey:    os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey:    os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:       getEnv("MINIO_BUCKET", "products"),
		MinioUseSSL:       os.Getenv("MINIO_USE_SSL") == "true",
		SMTPHost:          os.Getenv("SMTP_HOST"),
		SMTPUsername:      os.Getenv("SMTP_USERNAME"),
		SMTPPassword:      os.Getenv("SMTP_PASSWORD"),
		EmailFrom:         getEnv("EMAIL_FROM", "noreply@bazario.shop"),
		MaxBodyBytes:      getEnvInt64("MAX_BODY_BYTES", 10<<20), // 10 MB, comme l'ancien backend
	}

	if cfg.JWTSecret == "super_secret" {
		log.Println("⚠️ JWT_SECRET absent — secret de développement utilisé")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		log.Printf("⚠️ %s invalide (%q), valeur par défaut utilisée", key, v)
		return fallback
	}
	return n
}

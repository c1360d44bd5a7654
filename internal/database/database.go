package database

import (
	"context"
	"log"
	"time"

	"bazario_back_end/internal/config"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Clients globaux ---
var (
	MongoClient *mongo.Client
	Mongo       *mongo.Database
	Redis       *redis.Client
	Elastic     *elasticsearch.Client
	MinIO       *minio.Client
)

// ConnectDatabases initialise toutes les connexions. MongoDB et Redis sont
// obligatoires ; Elasticsearch et MinIO sont optionnels (désactivés si non
// configurés).
func ConnectDatabases(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectMongo(ctx, cfg)
	connectRedis(ctx, cfg)
	connectElastic(cfg)
	connectMinIO(ctx, cfg)

	log.Println("✅ Toutes les bases de données sont connectées")
}

// =============================================
// MONGODB
// =============================================
func connectMongo(ctx context.Context, cfg *config.Config) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("❌ Erreur connexion MongoDB:", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("❌ MongoDB injoignable:", err)
	}

	MongoClient = client
	Mongo = client.Database(cfg.MongoDatabase)
	log.Println("✅ Connecté à MongoDB:", cfg.MongoDatabase)

	ensureIndexes(ctx)
}

// ensureIndexes crée les index uniques qui garantissent les erreurs Conflict
// (email utilisateur, nom de catégorie) et l'unicité du panier par user.
func ensureIndexes(ctx context.Context) {
	unique := func(col *mongo.Collection, key string) {
		_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: key, Value: 1}},
			Options: options.Index().SetUnique(true),
		})
		if err != nil {
			log.Printf("⚠️ Index unique %s.%s: %v", col.Name(), key, err)
		}
	}

	unique(Users(), "email")
	unique(Categories(), "name")
	unique(Carts(), "user_id")

	_, err := Orders().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		log.Println("⚠️ Index orders.created_at:", err)
	}
}

// --- Accès aux collections ---

func Users() *mongo.Collection      { return Mongo.Collection("users") }
func Categories() *mongo.Collection { return Mongo.Collection("categories") }
func Products() *mongo.Collection   { return Mongo.Collection("products") }
func Carts() *mongo.Collection      { return Mongo.Collection("carts") }
func Orders() *mongo.Collection     { return Mongo.Collection("orders") }

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context, cfg *config.Config) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// =============================================
// ELASTICSEARCH
// =============================================
func connectElastic(cfg *config.Config) {
	if cfg.ElasticURL == "" {
		log.Println("⚠️ ELASTIC_URL absent — recherche produit désactivée")
		return
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{cfg.ElasticURL},
		Username:  cfg.ElasticUser,
		Password:  cfg.ElasticPassword,
	})
	if err != nil {
		log.Fatal("❌ Erreur création client Elasticsearch:", err)
	}

	res, err := client.Info()
	if err != nil {
		log.Fatal("❌ Erreur connexion Elasticsearch:", err)
	}
	defer res.Body.Close()

	Elastic = client
	log.Println("✅ Connecté à Elasticsearch")
}

// =============================================
// MINIO
// =============================================
func connectMinIO(ctx context.Context, cfg *config.Config) {
	if cfg.MinioEndpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT absent — upload d'images désactivé")
		return
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		log.Fatal("❌ Erreur connexion MinIO:", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		log.Fatal("❌ Erreur vérification bucket MinIO:", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			log.Fatal("❌ Erreur création bucket MinIO:", err)
		}
		log.Println("🪣 Bucket créé :", cfg.MinioBucket)
	} else {
		log.Println("🪣 Bucket MinIO déjà présent :", cfg.MinioBucket)
	}

	MinIO = client
	log.Println("✅ Connecté à MinIO :", cfg.MinioEndpoint)
}

// Close ferme proprement les connexions persistantes.
func Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if MongoClient != nil {
		if err := MongoClient.Disconnect(ctx); err != nil {
			log.Println("⚠️ Erreur fermeture MongoDB:", err)
		}
	}
	if Redis != nil {
		_ = Redis.Close()
	}
}

package database

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// --- Variables Globales ---
var (
	MongoClient *mongo.Client
	Mongo       *mongo.Database
	Redis       *redis.Client
	RedisClient *redis.Client // Alias pour compatibilité
)

// ErrNotConnected : la base n'est pas configurée ou injoignable.
// Les routes dépendantes du store échouent, le reste de l'API continue de tourner.
var ErrNotConnected = errors.New("base de données non connectée")

// ConnectDatabases initialise MongoDB et Redis.
// Volontairement non fatal : sans DATABASE_URL le serveur démarre quand même,
// seul /test signalera la dégradation.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectMongo(ctx)
	connectRedis(ctx)
}

// =============================================
// MONGODB
// =============================================
func connectMongo(ctx context.Context) {
	uri := os.Getenv("DATABASE_URL")
	name := os.Getenv("DATABASE_NAME")

	if uri == "" || name == "" {
		log.Println("⚠️ DATABASE_URL / DATABASE_NAME manquants — démarrage sans MongoDB")
		return
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("❌ Erreur connexion MongoDB:", err)
		return
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Println("❌ MongoDB injoignable:", err)
		return
	}

	MongoClient = client
	Mongo = client.Database(name)
	log.Println("✅ Connecté à MongoDB, base:", name)
}

// Collection retourne une collection Mongo, ou ErrNotConnected si la base
// n'a pas été initialisée.
func Collection(name string) (*mongo.Collection, error) {
	if Mongo == nil {
		return nil, ErrNotConnected
	}
	return Mongo.Collection(name), nil
}

// ListCollectionNames liste les collections de la base (diagnostic /test).
func ListCollectionNames(ctx context.Context) ([]string, error) {
	if Mongo == nil {
		return nil, ErrNotConnected
	}
	return Mongo.ListCollectionNames(ctx, bson.M{})
}

// CloseMongo ferme proprement la connexion MongoDB.
func CloseMongo(ctx context.Context) {
	if MongoClient == nil {
		return
	}
	if err := MongoClient.Disconnect(ctx); err != nil {
		log.Println("⚠️ Erreur fermeture MongoDB:", err)
		return
	}
	log.Println("🔌 Connexion MongoDB fermée")
}

// =============================================
// REDIS (optionnel : cache produits + rate limit)
// =============================================
func connectRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_HOST")
	if addr == "" {
		log.Println("⚠️ REDIS_HOST manquant — cache et rate limit désactivés")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("⚠️ Redis injoignable — cache et rate limit désactivés:", err)
		return
	}

	Redis = client
	RedisClient = Redis // Alias pour compatibilité
	log.Println("✅ Connecté à Redis")
}

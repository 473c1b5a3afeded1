package database

import (
	"context"
	"time"

	"tazaticket/config"
	"tazaticket/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// defaultDatabaseName is used when DATABASE_NAME is not configured.
const defaultDatabaseName = "tazaticket"

// MongoClient is the global MongoDB client instance.
var MongoClient *mongo.Client

// InitDB connects the global Mongo client and verifies the connection.
// Mongo only backs the search archive; the conversation path runs on Redis.
func InitDB() {
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.AppConfig.DatabaseURL))
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("Failed to ping MongoDB", zap.Error(err))
	}
	MongoClient = client
	logger.Info("✅ Connected to MongoDB", zap.String("database", DatabaseName()))
}

// DatabaseName resolves the configured application database name.
func DatabaseName() string {
	if name := config.AppConfig.DatabaseName; name != "" {
		return name
	}
	return defaultDatabaseName
}

// Database returns the application database handle.
func Database() *mongo.Database {
	return MongoClient.Database(DatabaseName())
}

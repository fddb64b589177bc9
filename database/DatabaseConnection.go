package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/anmol-virk/blitzgramm-backend/config"
	"github.com/anmol-virk/blitzgramm-backend/logger"
)

var (
	Client *mongo.Client
	dbName string
)

// Connect dials MongoDB and stores the shared client. Called once from main
// before any route is served.
func Connect(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	if err := client.Ping(ctx, nil); err != nil {
		logger.Log.Fatal("failed to ping MongoDB", zap.Error(err))
	}

	Client = client
	dbName = cfg.DBName
	logger.Log.Info("connected to MongoDB")
}

func OpenCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database(dbName).Collection(collectionName)
}

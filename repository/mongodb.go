package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/trakline/crm_backend/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// collection names
	EnquiriesCollection = "enquiries"
	CustomersCollection = "customers"
	TasksCollection     = "tasks"
)

var (
	client *mongo.Client
	db     *mongo.Database
	ctx    = context.Background()
)

// InitMongoDB opens the MongoDB connection.
func InitMongoDB(uri, dbName string) error {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	var err error
	clientOptions := options.Client().ApplyURI(uri)
	client, err = mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("connect to MongoDB: %w", err)
	}

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping MongoDB: %w", err)
	}

	db = client.Database(dbName)
	utils.Logger.Info().Str("database", dbName).Msg("connected to MongoDB")

	return nil
}

// CloseMongoDB closes the MongoDB connection.
func CloseMongoDB() {
	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			utils.Logger.Error().Err(err).Msg("disconnect from MongoDB failed")
			return
		}
		utils.Logger.Info().Msg("disconnected from MongoDB")
	}
}

// InitializeCollections creates the collections that do not exist yet.
func InitializeCollections() error {
	collections := []string{
		EnquiriesCollection,
		CustomersCollection,
		TasksCollection,
	}

	for _, collName := range collections {
		collExists, err := CollectionExists(collName)
		if err != nil {
			return fmt.Errorf("check collection: %w", err)
		}

		if !collExists {
			if err := db.CreateCollection(ctx, collName); err != nil {
				return fmt.Errorf("create collection: %w", err)
			}
			utils.Logger.Info().Str("collection", collName).Msg("collection created")
		} else {
			utils.Logger.Info().Str("collection", collName).Msg("collection exists")
		}
	}

	return nil
}

// CollectionExists checks whether a collection exists.
func CollectionExists(collName string) (bool, error) {
	collections, err := db.ListCollectionNames(ctx, bson.M{"name": collName})
	if err != nil {
		return false, err
	}

	for _, name := range collections {
		if name == collName {
			return true, nil
		}
	}

	return false, nil
}

// GetDatabaseStatus returns per-collection document counts.
func GetDatabaseStatus() (map[string]interface{}, error) {
	collections := []string{
		EnquiriesCollection,
		CustomersCollection,
		TasksCollection,
	}

	result := make(map[string]interface{})

	for _, collName := range collections {
		coll := db.Collection(collName)
		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			utils.Logger.Error().Err(err).Str("collection", collName).Msg("count failed")
			result[collName] = map[string]interface{}{
				"count": 0,
				"error": err.Error(),
			}
			continue
		}
		result[collName] = map[string]interface{}{
			"count": count,
		}
	}

	return result, nil
}

// Collection returns the named collection.
func Collection(name string) *mongo.Collection {
	return db.Collection(name)
}

// GetContext returns the context used for MongoDB operations.
func GetContext() context.Context {
	return ctx
}

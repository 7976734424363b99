package repository

import (
	"context"
	"fmt"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoProfileRepository implements ProfileRepository over the customer profile collection
type MongoProfileRepository struct {
	collection *mongo.Collection
}

// NewMongoProfileRepository creates a new profile store repository
func NewMongoProfileRepository(db *mongo.Database) repository.ProfileRepository {
	return &MongoProfileRepository{
		collection: db.Collection("customer_profiles"),
	}
}

// LoadAll reads the whole store in insertion order
func (r *MongoProfileRepository) LoadAll(ctx context.Context) ([]entity.ProfileRecord, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []entity.ProfileRecord
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}

	return profiles, nil
}

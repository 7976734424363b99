package repository

import (
	"context"
	"errors"
	"fmt"

	"flight-recovery-service/internal/domain/entity"
	"flight-recovery-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDisruptionRepository implements DisruptionRepository
type MongoDisruptionRepository struct {
	collection *mongo.Collection
}

// NewMongoDisruptionRepository creates a new disruption feed repository
func NewMongoDisruptionRepository(db *mongo.Database) repository.DisruptionRepository {
	collection := db.Collection("disruption_events")

	// PNR is not unique in the feed; the earliest record wins
	ctx := context.Background()
	pnrIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "pnr", Value: 1}, {Key: "_id", Value: 1}},
	}
	collection.Indexes().CreateOne(ctx, pnrIndex)

	return &MongoDisruptionRepository{
		collection: collection,
	}
}

// FindByPNR finds the first disruption record for pnr in insertion order
func (r *MongoDisruptionRepository) FindByPNR(ctx context.Context, pnr string) (*entity.DisruptionRecord, error) {
	var record entity.DisruptionRecord
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: 1}})

	err := r.collection.FindOne(ctx, bson.M{"pnr": pnr}, opts).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find disruption %s: %w", pnr, err)
	}
	return &record, nil
}

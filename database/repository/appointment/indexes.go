package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
func (repo *MongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on appointment ID.
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for the conflict-check query pattern.
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("provider_date_status_idx"),
		},
		// Unique slot guard: at most one non-cancelled appointment per
		// provider+date+startTime. Second line of defense behind the keyed
		// lock in the booking service.
		{
			Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "date", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_active_slot").
				SetPartialFilterExpression(bson.M{"status": bson.M{"$in": []string{"pending", "confirmed", "completed"}}}),
		},
		// Participant lookups.
		{
			Keys:    bson.D{{Key: "requesterId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("requester_created_idx"),
		},
		{
			Keys:    bson.D{{Key: "providerId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("provider_created_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}

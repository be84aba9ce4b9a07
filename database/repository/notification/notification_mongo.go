package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/database"
	"slotbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new instance of MongoNotificationRepo.
func NewMongoNotificationRepo() *MongoNotificationRepo {
	return &MongoNotificationRepo{
		coll: database.DB().Collection("notifications"),
	}
}

// Create inserts a new notification document.
func (repo *MongoNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, n); err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

// GetByID retrieves a notification by its ID.
func (repo *MongoNotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n models.Notification
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&n); err != nil {
		return nil, fmt.Errorf("notification %s not found: %w", id, err)
	}
	return &n, nil
}

// ListByRecipient retrieves a recipient's notifications, newest first.
func (repo *MongoNotificationRepo) ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"recipientId": recipientID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching notifications for %s: %w", recipientID, err)
	}
	defer cursor.Close(ctx)

	var items []models.Notification
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding notifications: %w", err)
	}
	return items, nil
}

// CountUnread returns the recipient's unread notification count.
func (repo *MongoNotificationRepo) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{"recipientId": recipientID, "isRead": false})
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications for %s: %w", recipientID, err)
	}
	return count, nil
}

// MarkRead sets isRead on a single notification.
func (repo *MongoNotificationRepo) MarkRead(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return fmt.Errorf("error marking notification %s read: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("notification %s not found: %w", id, mongo.ErrNoDocuments)
	}
	return nil
}

// MarkAllRead sets isRead on every unread notification owned by the recipient.
func (repo *MongoNotificationRepo) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateMany(ctx,
		bson.M{"recipientId": recipientID, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("error marking notifications read for %s: %w", recipientID, err)
	}
	return res.ModifiedCount, nil
}

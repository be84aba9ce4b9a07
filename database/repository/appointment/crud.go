package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"slotbook/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new appointment document.
func (repo *MongoAppointmentRepo) Create(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if _, err := repo.coll.InsertOne(ctx, appt); err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}
	return nil
}

// GetByID retrieves an appointment by its ID.
func (repo *MongoAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appt models.Appointment
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&appt); err != nil {
		return nil, fmt.Errorf("appointment %s not found: %w", id, err)
	}
	return &appt, nil
}

// UpdateStatus sets the status of an appointment and returns the updated document.
// Only the status field is touched; the payment subdocument is never altered here.
func (repo *MongoAppointmentRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{"status": status}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var appt models.Appointment
	if err := repo.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&appt); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("appointment %s not found: %w", id, err)
		}
		return nil, fmt.Errorf("error updating appointment %s status: %w", id, err)
	}
	return &appt, nil
}

package appointmentRepo

import (
	"context"

	"slotbook/models"
)

// AppointmentRepository defines the data access methods used by the booking engine.
type AppointmentRepository interface {
	// Create persists a new appointment record.
	Create(ctx context.Context, appt *models.Appointment) error
	// GetByID retrieves an appointment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetActiveByProviderAndDate retrieves all non-cancelled appointments for a provider on a given date.
	GetActiveByProviderAndDate(ctx context.Context, providerID, date string) ([]models.Appointment, error)
	// ListByParticipant retrieves all appointments where the actor is the requester or the provider.
	ListByParticipant(ctx context.Context, actorID string) ([]models.Appointment, error)
	// UpdateStatus sets the status field of an appointment and returns the updated record.
	UpdateStatus(ctx context.Context, id, status string) (*models.Appointment, error)
}

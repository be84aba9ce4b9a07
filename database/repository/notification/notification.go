package notificationRepo

import (
	"context"

	"slotbook/models"
)

// NotificationRepository defines the data access methods over per-user notifications.
type NotificationRepository interface {
	// Create persists a new notification record.
	Create(ctx context.Context, n *models.Notification) error
	// GetByID retrieves a notification by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Notification, error)
	// ListByRecipient retrieves a recipient's notifications, newest first.
	ListByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error)
	// CountUnread returns the number of unread notifications owned by the recipient.
	CountUnread(ctx context.Context, recipientID string) (int64, error)
	// MarkRead sets isRead on a single notification.
	MarkRead(ctx context.Context, id string) error
	// MarkAllRead sets isRead on every unread notification owned by the recipient.
	MarkAllRead(ctx context.Context, recipientID string) (int64, error)
}

package notification

import (
	"context"

	"slotbook/models"
)

// RealtimePublisher is the injected per-user push capability. Delivery is
// best-effort: implementations may drop events for recipients with no live
// channel, and callers never depend on the outcome.
type RealtimePublisher interface {
	Publish(ctx context.Context, userID string, event any) error
}

// NotificationService persists notifications and fans them out.
type NotificationService interface {
	// Notify persists the notification first, then attempts a realtime push.
	// Push failures never affect the returned value.
	Notify(ctx context.Context, recipientID, senderID, kind, message, link string) (*models.Notification, error)
	// List returns a recipient's notifications, newest first, with the unread count.
	List(ctx context.Context, recipientID string) ([]models.Notification, int64, error)
	// MarkRead flags a single notification read; only its recipient may do so.
	MarkRead(ctx context.Context, id, actorID string) error
	// MarkAllRead flags every unread notification owned by the actor.
	MarkAllRead(ctx context.Context, actorID string) (int64, error)
}

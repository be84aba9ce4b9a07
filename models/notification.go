package models

import "time"

// Notification kinds emitted by the booking core.
const (
	NotifBookingRequest   = "booking-request"
	NotifPaymentConfirmed = "payment-confirmed"
	NotifStatusChange     = "status-change"
	NotifReminder         = "appointment-reminder"
)

// Notification is a per-user message persisted before any realtime push.
// SenderID is empty for system-generated notifications.
type Notification struct {
	ID          string    `bson:"id" json:"id"`
	RecipientID string    `bson:"recipientId" json:"recipientId"`
	SenderID    string    `bson:"senderId,omitempty" json:"senderId,omitempty"`
	Type        string    `bson:"type" json:"type"`
	Message     string    `bson:"message" json:"message"`
	Link        string    `bson:"link,omitempty" json:"link,omitempty"`
	IsRead      bool      `bson:"isRead" json:"isRead"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

package models

import "time"

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Appointment represents a reserved 60-minute slot between a requester and a provider.
type Appointment struct {
	ID          string          `bson:"id" json:"id"`
	RequesterID string          `bson:"requesterId" json:"requesterId"`
	ProviderID  string          `bson:"providerId" json:"providerId"`
	Date        string          `bson:"date" json:"date"`           // calendar day, "2006-01-02"
	StartTime   string          `bson:"startTime" json:"startTime"` // wall clock "HH:MM", 24-hour
	EndTime     string          `bson:"endTime" json:"endTime"`
	Status      string          `bson:"status" json:"status"`
	Payment     *PaymentDetails `bson:"payment,omitempty" json:"payment,omitempty"`
	Notes       string          `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time       `bson:"createdAt" json:"createdAt"`
}

// BookedSlot is the public projection of an occupied range on a provider's day.
type BookedSlot struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

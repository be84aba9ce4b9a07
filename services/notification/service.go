package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	notificationRepo "slotbook/database/repository/notification"
	"slotbook/models"
	"slotbook/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo     notificationRepo.NotificationRepository
	Realtime RealtimePublisher
	Logger   *zap.Logger
}

func NewDefaultNotificationService(
	repo notificationRepo.NotificationRepository,
	realtime RealtimePublisher,
	logger *zap.Logger,
) (*DefaultNotificationService, error) {
	if repo == nil || logger == nil {
		return nil, fmt.Errorf("notification service initialization error: repo or logger is nil")
	}
	return &DefaultNotificationService{
		Repo:     repo,
		Realtime: realtime,
		Logger:   logger,
	}, nil
}

// Notify persists the notification, then pushes it over the realtime channel.
// The persisted write must succeed or the whole call fails; the push is
// fire-and-forget.
func (s *DefaultNotificationService) Notify(
	ctx context.Context,
	recipientID, senderID, kind, message, link string,
) (*models.Notification, error) {
	if recipientID == "" {
		return nil, utils.NewValidationError("notification recipient is required")
	}

	n := &models.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        kind,
		Message:     message,
		Link:        link,
		IsRead:      false,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("failed to persist notification: %w", err)
	}

	if s.Realtime != nil {
		if err := s.Realtime.Publish(ctx, recipientID, n); err != nil {
			// Recipient may simply not be connected; dropped silently.
			s.Logger.Debug("realtime push dropped",
				zap.String("recipientId", recipientID),
				zap.String("type", kind),
				zap.Error(err))
		}
	}

	return n, nil
}

// List returns the recipient's notifications with the unread count.
func (s *DefaultNotificationService) List(ctx context.Context, recipientID string) ([]models.Notification, int64, error) {
	items, err := s.Repo.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.Repo.CountUnread(ctx, recipientID)
	if err != nil {
		return nil, 0, err
	}
	return items, unread, nil
}

// MarkRead flags a notification read after confirming ownership.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, id, actorID string) error {
	n, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return utils.NewNotFoundError("notification not found")
		}
		return err
	}
	if n.RecipientID != actorID {
		return utils.NewForbiddenError("notification belongs to another user")
	}
	return s.Repo.MarkRead(ctx, id)
}

// MarkAllRead flags every unread notification owned by the actor.
func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, actorID string) (int64, error) {
	return s.Repo.MarkAllRead(ctx, actorID)
}

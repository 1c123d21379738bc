package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"whalebyte.core/internal/domain/entities"
	"whalebyte.core/internal/domain/repositories"
	"whalebyte.core/pkg/logger"
)

// Notifier is the fire-and-forget notification entry point used by the other
// flows. Delivery failures are logged, never propagated: a missed
// notification must not fail the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, notifType entities.NotificationType, content string, relatedType entities.RelatedEntityType, relatedID *uuid.UUID)
}

// NotificationUsecase handles notification business logic
type NotificationUsecase struct {
	notificationRepo repositories.NotificationRepository
	userRepo         repositories.UserRepository
}

// NewNotificationUsecase creates a new notification usecase
func NewNotificationUsecase(notificationRepo repositories.NotificationRepository, userRepo repositories.UserRepository) *NotificationUsecase {
	return &NotificationUsecase{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

// Notify records a notification for a user, honoring their per-category
// preferences. Opted-out categories are dropped silently.
func (u *NotificationUsecase) Notify(ctx context.Context, userID uuid.UUID, notifType entities.NotificationType, content string, relatedType entities.RelatedEntityType, relatedID *uuid.UUID) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "notification target lookup failed", zap.Error(err))
		return
	}
	if !user.WantsNotification(notifType) {
		return
	}

	n := &entities.Notification{
		ID:                uuid.New(),
		UserID:            userID,
		Type:              notifType,
		Content:           content,
		RelatedEntityType: relatedType,
		RelatedEntityID:   relatedID,
		CreatedAt:         time.Now(),
	}
	if err := u.notificationRepo.Create(ctx, n); err != nil {
		logger.Warn(ctx, "failed to record notification", zap.Error(err))
	}
}

// List returns a user's notifications, optionally only unread ones
func (u *NotificationUsecase) List(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]*entities.Notification, error) {
	return u.notificationRepo.ListForUser(ctx, userID, unreadOnly)
}

// MarkRead flips a notification to read; the transition is one-way
func (u *NotificationUsecase) MarkRead(ctx context.Context, id uuid.UUID) error {
	return u.notificationRepo.MarkRead(ctx, id)
}

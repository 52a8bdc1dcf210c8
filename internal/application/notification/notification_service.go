package notification

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/domain/notification"
	"github.com/wms/backend/internal/domain/shared"
)

// NotificationService stores and reads notifications. Notify is best-effort:
// a storage failure is logged and swallowed so it can never fail the business
// operation that triggered it.
type NotificationService struct {
	repo   notification.NotificationRepository
	logger *zap.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(repo notification.NotificationRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

// Notify persists a notification for the recipient, best-effort
func (s *NotificationService) Notify(ctx context.Context, recipient shared.Actor, title, body string, referenceID *uuid.UUID) {
	n := notification.New(recipient, title, body, referenceID)
	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Warn("failed to store notification",
			zap.String("recipient_id", recipient.ID.String()),
			zap.String("title", title),
			zap.Error(err),
		)
	}
}

// List retrieves the actor's notifications, newest first
func (s *NotificationService) List(ctx context.Context, actor shared.Actor, filter shared.Filter) (shared.Paginated[NotificationResponse], error) {
	page, err := s.repo.FindByRecipient(ctx, actor.ID, filter)
	if err != nil {
		return shared.Paginated[NotificationResponse]{}, err
	}
	return shared.NewPaginated(ToNotificationResponses(page.Items), page.Total, page.Page, page.PageSize), nil
}

// CountUnread returns the actor's unread notification count
func (s *NotificationService) CountUnread(ctx context.Context, actor shared.Actor) (int64, error) {
	return s.repo.CountUnread(ctx, actor.ID)
}

// MarkRead flags one of the actor's notifications as read
func (s *NotificationService) MarkRead(ctx context.Context, actor shared.Actor, notificationID uuid.UUID) error {
	n, err := s.repo.FindByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if n.RecipientID != actor.ID {
		return shared.ErrForbidden
	}
	n.MarkRead()
	return s.repo.Save(ctx, n)
}

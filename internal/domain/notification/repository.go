package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/shared"
)

// NotificationRepository defines persistence operations for notifications
type NotificationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter shared.Filter) (shared.Paginated[Notification], error)
	CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error)
	Create(ctx context.Context, n *Notification) error
	Save(ctx context.Context, n *Notification) error
}

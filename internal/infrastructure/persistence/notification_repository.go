package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wms/backend/internal/domain/notification"
	"github.com/wms/backend/internal/domain/shared"
)

// GormNotificationRepository implements notification.NotificationRepository
// using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// FindByID retrieves a notification by ID
func (r *GormNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*notification.Notification, error) {
	var n notification.Notification
	err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// FindByRecipient retrieves a recipient's notifications, newest first
func (r *GormNotificationRepository) FindByRecipient(ctx context.Context, recipientID uuid.UUID, filter shared.Filter) (shared.Paginated[notification.Notification], error) {
	base := r.db.WithContext(ctx).Model(&notification.Notification{}).Where("recipient_id = ?", recipientID)
	if unread, ok := filter.Filters["unread"]; ok && unread == true {
		base = base.Where("read = ?", false)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return shared.Paginated[notification.Notification]{}, err
	}

	var notifications []notification.Notification
	err := applyFilter(base, filter, CommonSortFields).Find(&notifications).Error
	if err != nil {
		return shared.Paginated[notification.Notification]{}, err
	}
	return shared.NewPaginated(notifications, total, filter.Page, filter.PageSize), nil
}

// CountUnread returns the number of unread notifications for a recipient
func (r *GormNotificationRepository) CountUnread(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&notification.Notification{}).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

// Create inserts a notification
func (r *GormNotificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

// Save persists a notification
func (r *GormNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

var _ notification.NotificationRepository = (*GormNotificationRepository)(nil)

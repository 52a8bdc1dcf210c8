package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/shared"
)

// Notification is a stored message for a single recipient. Delivery is
// fire-and-forget: failing to write a notification never fails the business
// operation that triggered it.
type Notification struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key"`
	RecipientID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Role        shared.Role `gorm:"type:varchar(30);not null"`
	Title       string      `gorm:"type:varchar(200);not null"`
	Body        string      `gorm:"type:text"`
	ReferenceID *uuid.UUID  `gorm:"type:uuid"`
	Read        bool        `gorm:"not null;default:false;index"`
	CreatedAt   time.Time   `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// New creates an unread notification for the recipient
func New(recipient shared.Actor, title, body string, referenceID *uuid.UUID) *Notification {
	return &Notification{
		ID:          uuid.New(),
		RecipientID: recipient.ID,
		Role:        recipient.Role,
		Title:       title,
		Body:        body,
		ReferenceID: referenceID,
		Read:        false,
		CreatedAt:   time.Now(),
	}
}

// MarkRead flags the notification as read
func (n *Notification) MarkRead() {
	n.Read = true
}

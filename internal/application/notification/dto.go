package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/notification"
)

// NotificationResponse is the API representation of a stored notification
type NotificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body,omitempty"`
	ReferenceID *uuid.UUID `json:"reference_id,omitempty"`
	Read        bool       `json:"read"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToNotificationResponse converts a Notification to its response
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:          n.ID,
		Title:       n.Title,
		Body:        n.Body,
		ReferenceID: n.ReferenceID,
		Read:        n.Read,
		CreatedAt:   n.CreatedAt,
	}
}

// ToNotificationResponses converts a slice of Notifications
func ToNotificationResponses(notifications []notification.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, ToNotificationResponse(&notifications[i]))
	}
	return responses
}

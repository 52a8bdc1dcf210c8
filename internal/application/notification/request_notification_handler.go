package notification

import (
	"context"
	"fmt"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
)

// RequestNotificationHandler turns request workflow events into stored
// notifications. It runs on the event bus, off the business transaction, so
// a failed notification never rolls anything back.
type RequestNotificationHandler struct {
	service *NotificationService
}

// NewRequestNotificationHandler creates a new RequestNotificationHandler
func NewRequestNotificationHandler(service *NotificationService) *RequestNotificationHandler {
	return &RequestNotificationHandler{service: service}
}

// EventTypes returns the request lifecycle events this handler consumes
func (h *RequestNotificationHandler) EventTypes() []string {
	return []string{
		document.EventTypeMaterialRequestCreated,
		document.EventTypeMaterialRequestApproved,
		document.EventTypeMaterialRequestRejected,
		document.EventTypeMaterialRequestDelivered,
		document.EventTypePurchaseRequestCreated,
		document.EventTypePurchaseRequestDecided,
	}
}

// Handle stores the notifications addressed by the event
func (h *RequestNotificationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	switch e := event.(type) {
	case *document.MaterialRequestCreatedEvent:
		id := e.RequestID
		h.service.Notify(ctx,
			shared.NewActor(e.ManagerID, shared.RoleManager),
			"Material request awaiting approval",
			fmt.Sprintf("A new material request %s needs your decision", e.RequestID),
			&id,
		)

	case *document.MaterialRequestApprovedEvent:
		id := e.RequestID
		h.service.Notify(ctx,
			shared.NewActor(e.RequesterID, shared.RoleUser),
			"Material request approved",
			fmt.Sprintf("Your material request %s was approved", e.RequestID),
			&id,
		)
		h.service.Notify(ctx,
			shared.NewActor(e.KeeperID, shared.RoleWarehouseKeeper),
			"Material request ready for fulfillment",
			fmt.Sprintf("Material request %s was approved and awaits an exit note", e.RequestID),
			&id,
		)

	case *document.MaterialRequestRejectedEvent:
		id := e.RequestID
		h.service.Notify(ctx,
			shared.NewActor(e.RequesterID, shared.RoleUser),
			"Material request rejected",
			fmt.Sprintf("Your material request %s was rejected", e.RequestID),
			&id,
		)

	case *document.MaterialRequestDeliveredEvent:
		id := e.RequestID
		h.service.Notify(ctx,
			shared.NewActor(e.RequesterID, shared.RoleUser),
			"Material request delivered",
			fmt.Sprintf("Your material request %s was fulfilled", e.RequestID),
			&id,
		)

	case *document.PurchaseRequestCreatedEvent:
		id := e.RequestID
		h.service.Notify(ctx,
			shared.NewActor(e.ManagerID, shared.RoleManager),
			"Purchase request awaiting approval",
			fmt.Sprintf("A new purchase request %s needs your decision", e.RequestID),
			&id,
		)

	case *document.PurchaseRequestDecidedEvent:
		id := e.RequestID
		h.service.Notify(ctx,
			shared.NewActor(e.KeeperID, shared.RoleWarehouseKeeper),
			fmt.Sprintf("Purchase request %s", e.Status),
			fmt.Sprintf("Your purchase request %s was %s", e.RequestID, e.Status),
			&id,
		)
	}

	return nil
}

// Ensure the handler satisfies the event bus contract
var _ shared.EventHandler = (*RequestNotificationHandler)(nil)

package warehouse

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// MovementType classifies a stock mutation
type MovementType string

const (
	MovementTypeEntry   MovementType = "entry"
	MovementTypeExit    MovementType = "exit"
	MovementTypeReceive MovementType = "receive"
	MovementTypeInstall MovementType = "install"
	MovementTypeScrap   MovementType = "scrap"
	MovementTypeReturn  MovementType = "return"
)

// IsValid checks if the movement type is known
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeEntry, MovementTypeExit, MovementTypeReceive,
		MovementTypeInstall, MovementTypeScrap, MovementTypeReturn:
		return true
	}
	return false
}

// ProductMovement is an append-only audit record of a single ledger mutation.
// Rows are never updated or deleted; before/after quantities make the trail
// reconcilable against the Stock table.
type ProductMovement struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	WarehouseID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type           MovementType    `gorm:"type:varchar(20);not null;index"`
	DocumentType   string          `gorm:"type:varchar(40);not null"`
	DocumentID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QuantityBefore decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QuantityAfter  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ActorID        uuid.UUID       `gorm:"type:uuid;not null"`
	ActorRole      shared.Role     `gorm:"type:varchar(30);not null"`
	CreatedAt      time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (ProductMovement) TableName() string {
	return "product_movements"
}

// NewProductMovement creates an audit record for a ledger mutation
func NewProductMovement(
	productID, warehouseID uuid.UUID,
	movementType MovementType,
	documentType string,
	documentID uuid.UUID,
	quantity, before, after decimal.Decimal,
	actor shared.Actor,
) (*ProductMovement, error) {
	if !movementType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Unknown movement type")
	}
	if productID == uuid.Nil || warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Product and warehouse are required")
	}
	if documentType == "" || documentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Source document reference is required")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	return &ProductMovement{
		ID:             uuid.New(),
		ProductID:      productID,
		WarehouseID:    warehouseID,
		Type:           movementType,
		DocumentType:   documentType,
		DocumentID:     documentID,
		Quantity:       quantity,
		QuantityBefore: before,
		QuantityAfter:  after,
		ActorID:        actor.ID,
		ActorRole:      actor.Role,
		CreatedAt:      time.Now(),
	}, nil
}

package warehouse

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/shared"
)

func TestNewProductMovement(t *testing.T) {
	actor := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	productID := uuid.New()
	warehouseID := uuid.New()
	documentID := uuid.New()

	mv, err := NewProductMovement(
		productID, warehouseID,
		MovementTypeEntry, "entry_note", documentID,
		decimal.NewFromInt(5), decimal.NewFromInt(10), decimal.NewFromInt(15),
		actor,
	)
	require.NoError(t, err)
	assert.Equal(t, MovementTypeEntry, mv.Type)
	assert.Equal(t, productID, mv.ProductID)
	assert.Equal(t, documentID, mv.DocumentID)
	assert.True(t, mv.QuantityBefore.Equal(decimal.NewFromInt(10)))
	assert.True(t, mv.QuantityAfter.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, actor.ID, mv.ActorID)
	assert.Equal(t, shared.RoleWarehouseKeeper, mv.ActorRole)
}

func TestNewProductMovement_Validation(t *testing.T) {
	actor := shared.NewActor(uuid.New(), shared.RoleWarehouseKeeper)
	one := decimal.NewFromInt(1)

	tests := []struct {
		name         string
		productID    uuid.UUID
		warehouseID  uuid.UUID
		movementType MovementType
		documentType string
		documentID   uuid.UUID
		quantity     decimal.Decimal
	}{
		{"unknown type", uuid.New(), uuid.New(), MovementType("teleport"), "entry_note", uuid.New(), one},
		{"nil product", uuid.Nil, uuid.New(), MovementTypeEntry, "entry_note", uuid.New(), one},
		{"nil warehouse", uuid.New(), uuid.Nil, MovementTypeEntry, "entry_note", uuid.New(), one},
		{"empty document type", uuid.New(), uuid.New(), MovementTypeEntry, "", uuid.New(), one},
		{"nil document id", uuid.New(), uuid.New(), MovementTypeEntry, "entry_note", uuid.Nil, one},
		{"zero quantity", uuid.New(), uuid.New(), MovementTypeEntry, "entry_note", uuid.New(), decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProductMovement(
				tt.productID, tt.warehouseID,
				tt.movementType, tt.documentType, tt.documentID,
				tt.quantity, decimal.Zero, tt.quantity,
				actor,
			)
			assert.Error(t, err)
		})
	}
}

func TestMovementType_IsValid(t *testing.T) {
	valid := []MovementType{
		MovementTypeEntry, MovementTypeExit, MovementTypeReceive,
		MovementTypeInstall, MovementTypeScrap, MovementTypeReturn,
	}
	for _, mt := range valid {
		assert.True(t, mt.IsValid(), string(mt))
	}
	assert.False(t, MovementType("").IsValid())
	assert.False(t, MovementType("transfer").IsValid())
}

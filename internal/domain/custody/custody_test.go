package custody

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustody(t *testing.T) {
	userID := uuid.New()
	warehouseID := uuid.New()

	c, err := NewCustody(userID, "room 12", []CustodyLine{
		{ExitNoteItemID: uuid.New(), ProductID: uuid.New(), WarehouseID: warehouseID, Quantity: decimal.NewFromInt(2)},
		{ExitNoteItemID: uuid.New(), ProductID: uuid.New(), WarehouseID: warehouseID, Quantity: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)

	assert.Equal(t, userID, c.UserID)
	assert.Equal(t, "room 12", c.Room)
	require.Len(t, c.Items, 2)
	for _, item := range c.Items {
		assert.Equal(t, c.ID, item.CustodyID)
		assert.Equal(t, warehouseID, item.WarehouseID)
	}
}

func TestNewCustody_Validation(t *testing.T) {
	line := CustodyLine{
		ExitNoteItemID: uuid.New(),
		ProductID:      uuid.New(),
		WarehouseID:    uuid.New(),
		Quantity:       decimal.NewFromInt(1),
	}

	_, err := NewCustody(uuid.Nil, "", []CustodyLine{line})
	assert.Error(t, err)

	_, err = NewCustody(uuid.New(), "", nil)
	assert.Error(t, err)

	bad := line
	bad.ExitNoteItemID = uuid.Nil
	_, err = NewCustody(uuid.New(), "", []CustodyLine{bad})
	assert.Error(t, err)

	bad = line
	bad.Quantity = decimal.Zero
	_, err = NewCustody(uuid.New(), "", []CustodyLine{bad})
	assert.Error(t, err)
}

func TestCustody_ItemByID(t *testing.T) {
	c, err := NewCustody(uuid.New(), "", []CustodyLine{
		{ExitNoteItemID: uuid.New(), ProductID: uuid.New(), WarehouseID: uuid.New(), Quantity: decimal.NewFromInt(1)},
	})
	require.NoError(t, err)

	assert.NotNil(t, c.ItemByID(c.Items[0].ID))
	assert.Nil(t, c.ItemByID(uuid.New()))
}

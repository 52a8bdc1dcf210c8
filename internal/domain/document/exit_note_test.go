package document

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExitNote(t *testing.T) {
	requestID := uuid.New()

	note, err := NewExitNote("(2/7)", uuid.New(), requestID, uuid.New(), []NoteLine{
		{ProductID: uuid.New(), Quantity: decimal.NewFromInt(5)},
	})
	require.NoError(t, err)

	assert.Equal(t, "(2/7)", note.SerialNumber)
	assert.Equal(t, requestID, note.MaterialRequestID)
	require.Len(t, note.Items, 1)
}

func TestNewExitNote_Validation(t *testing.T) {
	line := NoteLine{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1)}

	_, err := NewExitNote("", uuid.New(), uuid.New(), uuid.New(), []NoteLine{line})
	assert.Error(t, err)

	_, err = NewExitNote("(1/1)", uuid.New(), uuid.Nil, uuid.New(), []NoteLine{line})
	assert.Error(t, err)

	_, err = NewExitNote("(1/1)", uuid.New(), uuid.New(), uuid.New(), []NoteLine{})
	assert.Error(t, err)
}

func TestExitNote_ItemByID(t *testing.T) {
	note, err := NewExitNote("(1/1)", uuid.New(), uuid.New(), uuid.New(), []NoteLine{
		{ProductID: uuid.New(), Quantity: decimal.NewFromInt(5)},
	})
	require.NoError(t, err)

	assert.NotNil(t, note.ItemByID(note.Items[0].ID))
	assert.Nil(t, note.ItemByID(uuid.New()))
}

package notification

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/wms/backend/internal/domain/shared"
)

func TestNew(t *testing.T) {
	recipient := shared.NewActor(uuid.New(), shared.RoleManager)
	referenceID := uuid.New()

	n := New(recipient, "Material request pending", "A request awaits your approval", &referenceID)

	assert.Equal(t, recipient.ID, n.RecipientID)
	assert.Equal(t, shared.RoleManager, n.Role)
	assert.Equal(t, "Material request pending", n.Title)
	assert.Equal(t, referenceID, *n.ReferenceID)
	assert.False(t, n.Read)
}

func TestNotification_MarkRead(t *testing.T) {
	n := New(shared.NewActor(uuid.New(), shared.RoleUser), "t", "b", nil)
	n.MarkRead()
	assert.True(t, n.Read)
}

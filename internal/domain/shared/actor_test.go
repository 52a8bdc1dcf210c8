package shared

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	assert.True(t, RoleUser.IsValid())
	assert.True(t, RoleManager.IsValid())
	assert.True(t, RoleWarehouseKeeper.IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("admin").IsValid())
}

func TestActor_IsZero(t *testing.T) {
	assert.True(t, Actor{}.IsZero())
	assert.False(t, NewActor(uuid.New(), RoleUser).IsZero())
}

func TestActor_Is(t *testing.T) {
	actor := NewActor(uuid.New(), RoleManager)
	assert.True(t, actor.Is(RoleManager))
	assert.False(t, actor.Is(RoleUser))
}

package warehouse

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWarehouse(t *testing.T) {
	w, err := NewWarehouse("  Central  ", " 5 Dock Road ")
	require.NoError(t, err)
	assert.Equal(t, "Central", w.Name)
	assert.Equal(t, "5 Dock Road", w.Address)
	assert.Nil(t, w.DepartmentID)

	_, err = NewWarehouse("", "")
	assert.Error(t, err)
}

func TestWarehouse_AssignDepartment(t *testing.T) {
	w, err := NewWarehouse("Central", "")
	require.NoError(t, err)

	departmentID := uuid.New()
	require.NoError(t, w.AssignDepartment(departmentID))
	require.NotNil(t, w.DepartmentID)
	assert.Equal(t, departmentID, *w.DepartmentID)

	assert.Error(t, w.AssignDepartment(uuid.Nil))
}

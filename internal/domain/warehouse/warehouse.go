package warehouse

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/shared"
)

// Warehouse is a physical storage site. It belongs to a department, which is
// how the approving manager for a keeper's purchase requests is resolved
// (keeper -> warehouse -> department -> manager).
type Warehouse struct {
	shared.BaseAggregateRoot
	Name         string     `gorm:"type:varchar(120);not null;uniqueIndex"`
	Address      string     `gorm:"type:varchar(300)"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse
func NewWarehouse(name, address string) (*Warehouse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	return &Warehouse{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Address:           strings.TrimSpace(address),
	}, nil
}

// AssignDepartment attaches the warehouse to a department
func (w *Warehouse) AssignDepartment(departmentID uuid.UUID) error {
	if departmentID == uuid.Nil {
		return shared.NewDomainError("INVALID_DEPARTMENT", "Department ID cannot be empty")
	}
	w.DepartmentID = &departmentID
	w.UpdatedAt = time.Now()
	w.IncrementVersion()
	return nil
}

package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/shared"
)

// Department is an organizational unit. Its manager is the approver for
// material requests raised by the department's members and for purchase
// requests raised by keepers of warehouses attached to the department.
type Department struct {
	shared.BaseAggregateRoot
	Name      string     `gorm:"type:varchar(120);not null;uniqueIndex"`
	ManagerID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Department) TableName() string {
	return "departments"
}

// NewDepartment creates a new department
func NewDepartment(name string) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Department name cannot be empty")
	}
	return &Department{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
	}, nil
}

// AssignManager sets the approving manager for the department
func (d *Department) AssignManager(managerID uuid.UUID) error {
	if managerID == uuid.Nil {
		return shared.NewDomainError("INVALID_MANAGER", "Manager ID cannot be empty")
	}
	d.ManagerID = &managerID
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// HasManager reports whether an approving manager is assigned
func (d *Department) HasManager() bool {
	return d.ManagerID != nil && *d.ManagerID != uuid.Nil
}

package identity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/shared"
)

// User represents any authenticated person in the system: a regular requester,
// a department manager or a warehouse keeper. The role decides which document
// workflows the user may drive; DepartmentID links a requester to the
// department whose manager approves their material requests, WarehouseID links
// a keeper to the warehouse they fulfill from.
type User struct {
	shared.BaseAggregateRoot
	Name         string      `gorm:"type:varchar(120);not null"`
	Email        string      `gorm:"type:varchar(254);not null;uniqueIndex"`
	Role         shared.Role `gorm:"type:varchar(30);not null;index"`
	DepartmentID *uuid.UUID  `gorm:"type:uuid;index"`
	WarehouseID  *uuid.UUID  `gorm:"type:uuid;index"`
	Active       bool        `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with the given role
func NewUser(name, email string, role shared.Role) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "User name cannot be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, shared.NewDomainError("INVALID_EMAIL", "User email is invalid")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown user role")
	}

	return &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		Role:              role,
		Active:            true,
	}, nil
}

// Actor returns the user's identity as an actor value
func (u *User) Actor() shared.Actor {
	return shared.NewActor(u.ID, u.Role)
}

// AssignDepartment links the user to a department
func (u *User) AssignDepartment(departmentID uuid.UUID) error {
	if departmentID == uuid.Nil {
		return shared.NewDomainError("INVALID_DEPARTMENT", "Department ID cannot be empty")
	}
	u.DepartmentID = &departmentID
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// AssignWarehouse links a warehouse keeper to a warehouse
func (u *User) AssignWarehouse(warehouseID uuid.UUID) error {
	if u.Role != shared.RoleWarehouseKeeper {
		return shared.NewDomainError("INVALID_ROLE", "Only warehouse keepers can be assigned a warehouse")
	}
	if warehouseID == uuid.Nil {
		return shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}
	u.WarehouseID = &warehouseID
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Deactivate marks the user as inactive
func (u *User) Deactivate() {
	u.Active = false
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

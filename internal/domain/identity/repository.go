package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/shared"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindKeeperByWarehouse returns an active warehouse keeper assigned to
	// the warehouse.
	FindKeeperByWarehouse(ctx context.Context, warehouseID uuid.UUID) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)
	Save(ctx context.Context, user *User) error
}

// DepartmentRepository defines persistence operations for departments
type DepartmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Department, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Department, error)
	Save(ctx context.Context, department *Department) error
}

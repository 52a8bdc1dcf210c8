package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/identity"
)

// CreateUserInput carries the fields for user creation
type CreateUserInput struct {
	Name         string
	Email        string
	Role         string
	DepartmentID *uuid.UUID
	WarehouseID  *uuid.UUID
}

// CreateDepartmentInput carries the fields for department creation
type CreateDepartmentInput struct {
	Name      string
	ManagerID *uuid.UUID
}

// UserResponse is the API representation of a user
type UserResponse struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	WarehouseID  *uuid.UUID `json:"warehouse_id,omitempty"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ToUserResponse converts a User aggregate to its response
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role.String(),
		DepartmentID: u.DepartmentID,
		WarehouseID:  u.WarehouseID,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt,
	}
}

// ToUserResponses converts a slice of User aggregates
func ToUserResponses(users []identity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}

// DepartmentResponse is the API representation of a department
type DepartmentResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	ManagerID *uuid.UUID `json:"manager_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToDepartmentResponse converts a Department aggregate to its response
func ToDepartmentResponse(d *identity.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		ManagerID: d.ManagerID,
		CreatedAt: d.CreatedAt,
	}
}

// ToDepartmentResponses converts a slice of Department aggregates
func ToDepartmentResponses(departments []identity.Department) []DepartmentResponse {
	responses := make([]DepartmentResponse, 0, len(departments))
	for i := range departments {
		responses = append(responses, ToDepartmentResponse(&departments[i]))
	}
	return responses
}

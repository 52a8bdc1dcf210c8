package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/identity"
	"github.com/wms/backend/internal/domain/shared"
)

// UserService handles the user directory
type UserService struct {
	userRepo identity.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Create creates a user with the given role and optional links
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*UserResponse, error) {
	user, err := identity.NewUser(input.Name, input.Email, shared.Role(input.Role))
	if err != nil {
		return nil, err
	}
	if input.DepartmentID != nil {
		if err := user.AssignDepartment(*input.DepartmentID); err != nil {
			return nil, err
		}
	}
	if input.WarehouseID != nil {
		if err := user.AssignWarehouse(*input.WarehouseID); err != nil {
			return nil, err
		}
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// Get retrieves a user by ID
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// List retrieves users
func (s *UserService) List(ctx context.Context, filter shared.Filter) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToUserResponses(users), nil
}

// AssignDepartment links a user to a department
func (s *UserService) AssignDepartment(ctx context.Context, userID, departmentID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.AssignDepartment(departmentID); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// AssignWarehouse links a keeper to a warehouse
func (s *UserService) AssignWarehouse(ctx context.Context, userID, warehouseID uuid.UUID) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := user.AssignWarehouse(warehouseID); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	response := ToUserResponse(user)
	return &response, nil
}

// Deactivate marks a user inactive
func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.Deactivate()
	return s.userRepo.Save(ctx, user)
}

package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/wms/backend/internal/domain/identity"
	"github.com/wms/backend/internal/domain/shared"
)

// DepartmentService handles the department directory
type DepartmentService struct {
	departmentRepo identity.DepartmentRepository
	userRepo       identity.UserRepository
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departmentRepo identity.DepartmentRepository, userRepo identity.UserRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo, userRepo: userRepo}
}

// Create creates a department, optionally with its approving manager
func (s *DepartmentService) Create(ctx context.Context, input CreateDepartmentInput) (*DepartmentResponse, error) {
	department, err := identity.NewDepartment(input.Name)
	if err != nil {
		return nil, err
	}
	if input.ManagerID != nil {
		if err := s.assignManager(ctx, department, *input.ManagerID); err != nil {
			return nil, err
		}
	}
	if err := s.departmentRepo.Save(ctx, department); err != nil {
		return nil, err
	}
	response := ToDepartmentResponse(department)
	return &response, nil
}

// Get retrieves a department by ID
func (s *DepartmentService) Get(ctx context.Context, id uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToDepartmentResponse(department)
	return &response, nil
}

// List retrieves departments
func (s *DepartmentService) List(ctx context.Context, filter shared.Filter) ([]DepartmentResponse, error) {
	departments, err := s.departmentRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToDepartmentResponses(departments), nil
}

// AssignManager sets the approving manager of an existing department
func (s *DepartmentService) AssignManager(ctx context.Context, departmentID, managerID uuid.UUID) (*DepartmentResponse, error) {
	department, err := s.departmentRepo.FindByID(ctx, departmentID)
	if err != nil {
		return nil, err
	}
	if err := s.assignManager(ctx, department, managerID); err != nil {
		return nil, err
	}
	if err := s.departmentRepo.Save(ctx, department); err != nil {
		return nil, err
	}
	response := ToDepartmentResponse(department)
	return &response, nil
}

// assignManager verifies the manager exists and holds the manager role
func (s *DepartmentService) assignManager(ctx context.Context, department *identity.Department, managerID uuid.UUID) error {
	manager, err := s.userRepo.FindByID(ctx, managerID)
	if err != nil {
		return err
	}
	if !manager.Actor().Is(shared.RoleManager) {
		return shared.NewDomainError("INVALID_ROLE", "Department manager must hold the manager role")
	}
	return department.AssignManager(manager.ID)
}

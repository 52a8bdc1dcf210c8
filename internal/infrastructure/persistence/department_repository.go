package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wms/backend/internal/domain/identity"
	"github.com/wms/backend/internal/domain/shared"
)

// GormDepartmentRepository implements identity.DepartmentRepository using GORM
type GormDepartmentRepository struct {
	db *gorm.DB
}

// NewGormDepartmentRepository creates a new GormDepartmentRepository
func NewGormDepartmentRepository(db *gorm.DB) *GormDepartmentRepository {
	return &GormDepartmentRepository{db: db}
}

// FindByID retrieves a department by ID
func (r *GormDepartmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Department, error) {
	var department identity.Department
	err := r.db.WithContext(ctx).First(&department, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &department, nil
}

// FindAll retrieves departments matching the filter
func (r *GormDepartmentRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Department, error) {
	var departments []identity.Department
	query := r.db.WithContext(ctx).Model(&identity.Department{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	err := applyFilter(query, filter, CommonSortFields).Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

// Save persists a department
func (r *GormDepartmentRepository) Save(ctx context.Context, department *identity.Department) error {
	return r.db.WithContext(ctx).Save(department).Error
}

var _ identity.DepartmentRepository = (*GormDepartmentRepository)(nil)

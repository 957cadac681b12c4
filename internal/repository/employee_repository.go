package repository

import (
	"context"

	"github.com/yukikurage/workforce-management-api/internal/database"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"gorm.io/gorm"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// Create creates a new employee
func (r *GormEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// FindByID finds an employee by ID
func (r *GormEmployeeRepository) FindByID(ctx context.Context, id string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// ListByOrganisation lists the employees of one organisation
func (r *GormEmployeeRepository) ListByOrganisation(ctx context.Context, organisationID string) ([]models.Employee, error) {
	employees := []models.Employee{}
	if err := r.db.WithContext(ctx).
		Scopes(database.ForOrganisation(organisationID)).
		Order("created_at ASC").
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// ListByTeam lists the employees assigned to a team
func (r *GormEmployeeRepository) ListByTeam(ctx context.Context, teamID string) ([]models.Employee, error) {
	employees := []models.Employee{}
	if err := r.db.WithContext(ctx).
		Select("employees.*").
		Joins("JOIN memberships ON memberships.employee_id = employees.id").
		Where("memberships.team_id = ?", teamID).
		Order("memberships.assigned_at ASC").
		Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

// FilterIDsByOrganisation returns the ids that belong to employees of the organisation
func (r *GormEmployeeRepository) FilterIDsByOrganisation(ctx context.Context, organisationID string, ids []string) ([]string, error) {
	valid := []string{}
	if len(ids) == 0 {
		return valid, nil
	}

	err := r.db.WithContext(ctx).Model(&models.Employee{}).
		Scopes(database.ForOrganisation(organisationID)).
		Where("id IN ?", ids).
		Pluck("id", &valid).Error
	return valid, err
}

// Update saves an employee
func (r *GormEmployeeRepository) Update(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// Delete deletes an employee together with its memberships
func (r *GormEmployeeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Employee{}).Error
	})
}

// CountByOrganisation counts the employees of an organisation
func (r *GormEmployeeRepository) CountByOrganisation(ctx context.Context, organisationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Employee{}).
		Scopes(database.ForOrganisation(organisationID)).
		Count(&count).Error
	return count, err
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yukikurage/workforce-management-api/internal/auth"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"github.com/yukikurage/workforce-management-api/internal/repository"
)

// EmployeeService handles employee business logic
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployeeInput represents input for creating an employee
type CreateEmployeeInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// UpdateEmployeeInput represents a partial update; nil fields are left unchanged
type UpdateEmployeeInput struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// List returns the employees of the caller's organisation
func (s *EmployeeService) List(ctx context.Context, identity auth.Identity) ([]models.Employee, error) {
	employees, err := s.employeeRepo.ListByOrganisation(ctx, identity.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Get returns one employee owned by the caller's organisation
func (s *EmployeeService) Get(ctx context.Context, identity auth.Identity, id string) (*models.Employee, error) {
	return loadOwned(ctx, identity, id, s.employeeRepo.FindByID, ErrEmployeeNotFound)
}

// Create adds an employee to the caller's organisation
func (s *EmployeeService) Create(ctx context.Context, identity auth.Identity, input CreateEmployeeInput) (*models.Employee, error) {
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		return nil, ErrEmployeeNamesRequired
	}

	employee := &models.Employee{
		OrganisationID: identity.OrganisationID,
		FirstName:      firstName,
		LastName:       lastName,
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
	}
	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

// Update applies the provided fields to an owned employee
func (s *EmployeeService) Update(ctx context.Context, identity auth.Identity, id string, input UpdateEmployeeInput) (*models.Employee, error) {
	employee, err := s.Get(ctx, identity, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		firstName := strings.TrimSpace(*input.FirstName)
		if firstName == "" {
			return nil, ErrEmployeeNamesRequired
		}
		employee.FirstName = firstName
	}
	if input.LastName != nil {
		lastName := strings.TrimSpace(*input.LastName)
		if lastName == "" {
			return nil, ErrEmployeeNamesRequired
		}
		employee.LastName = lastName
	}
	if input.Email != nil {
		employee.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		employee.Phone = strings.TrimSpace(*input.Phone)
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// Delete removes an owned employee and its team memberships
func (s *EmployeeService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	employee, err := s.Get(ctx, identity, id)
	if err != nil {
		return err
	}

	if err := s.employeeRepo.Delete(ctx, employee.ID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

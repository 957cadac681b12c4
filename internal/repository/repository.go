package repository

import (
	"context"

	"github.com/yukikurage/workforce-management-api/internal/models"
)

// OrganisationRepository defines the interface for organisation data access
type OrganisationRepository interface {
	// Create creates a new organisation
	Create(ctx context.Context, org *models.Organisation) error

	// FindByID finds an organisation by ID
	FindByID(ctx context.Context, id string) (*models.Organisation, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id string) (*models.User, error)

	// FindByEmail finds a user by email across all organisations
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// CountAdmins counts the admins of an organisation
	CountAdmins(ctx context.Context, organisationID string) (int64, error)
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, employee *models.Employee) error

	// FindByID finds an employee by ID regardless of organisation
	FindByID(ctx context.Context, id string) (*models.Employee, error)

	// ListByOrganisation lists the employees of one organisation
	ListByOrganisation(ctx context.Context, organisationID string) ([]models.Employee, error)

	// ListByTeam lists the employees assigned to a team
	ListByTeam(ctx context.Context, teamID string) ([]models.Employee, error)

	// FilterIDsByOrganisation returns the subset of ids that are employees of the organisation
	FilterIDsByOrganisation(ctx context.Context, organisationID string, ids []string) ([]string, error)

	// Update saves an employee
	Update(ctx context.Context, employee *models.Employee) error

	// Delete deletes an employee and its team memberships
	Delete(ctx context.Context, id string) error

	// CountByOrganisation counts the employees of an organisation
	CountByOrganisation(ctx context.Context, organisationID string) (int64, error)
}

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create creates a new team
	Create(ctx context.Context, team *models.Team) error

	// FindByID finds a team by ID regardless of organisation
	FindByID(ctx context.Context, id string) (*models.Team, error)

	// ListByOrganisation lists the teams of one organisation
	ListByOrganisation(ctx context.Context, organisationID string) ([]models.Team, error)

	// Update saves a team
	Update(ctx context.Context, team *models.Team) error

	// Delete deletes a team after removing its memberships
	Delete(ctx context.Context, id string) error

	// CountByOrganisation counts the teams of an organisation
	CountByOrganisation(ctx context.Context, organisationID string) (int64, error)
}

// MembershipRepository defines the interface for employee-team links
type MembershipRepository interface {
	// Assign links employees to a team, ignoring existing links
	Assign(ctx context.Context, teamID string, employeeIDs []string) error

	// Unassign removes one link
	Unassign(ctx context.Context, teamID, employeeID string) error
}

// LogRepository defines the interface for audit log data access
type LogRepository interface {
	// Create appends an entry
	Create(ctx context.Context, entry *models.LogEntry) error

	// ListRecent lists the newest entries of every organisation with user and organisation loaded
	ListRecent(ctx context.Context, limit int) ([]models.LogEntry, error)
}

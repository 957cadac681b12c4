package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/workforce-management-api/internal/auth"
	"github.com/yukikurage/workforce-management-api/internal/repository"
)

// Summary holds the headline counts of one organisation
type Summary struct {
	TotalEmployees int64
	TotalTeams     int64
	TotalAdmins    int64
}

// StatsService computes organisation statistics
type StatsService struct {
	employeeRepo repository.EmployeeRepository
	teamRepo     repository.TeamRepository
	userRepo     repository.UserRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(employeeRepo repository.EmployeeRepository, teamRepo repository.TeamRepository, userRepo repository.UserRepository) *StatsService {
	return &StatsService{
		employeeRepo: employeeRepo,
		teamRepo:     teamRepo,
		userRepo:     userRepo,
	}
}

// Summary counts employees, teams and admins of the caller's organisation
func (s *StatsService) Summary(ctx context.Context, identity auth.Identity) (*Summary, error) {
	orgID := identity.OrganisationID

	employees, err := s.employeeRepo.CountByOrganisation(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees: %w", err)
	}
	teams, err := s.teamRepo.CountByOrganisation(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count teams: %w", err)
	}
	admins, err := s.userRepo.CountAdmins(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count admins: %w", err)
	}

	return &Summary{
		TotalEmployees: employees,
		TotalTeams:     teams,
		TotalAdmins:    admins,
	}, nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yukikurage/workforce-management-api/internal/auth"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"github.com/yukikurage/workforce-management-api/internal/repository"
)

// TeamService handles team and membership business logic
type TeamService struct {
	teamRepo       repository.TeamRepository
	employeeRepo   repository.EmployeeRepository
	membershipRepo repository.MembershipRepository
}

// NewTeamService creates a new TeamService
func NewTeamService(teamRepo repository.TeamRepository, employeeRepo repository.EmployeeRepository, membershipRepo repository.MembershipRepository) *TeamService {
	return &TeamService{
		teamRepo:       teamRepo,
		employeeRepo:   employeeRepo,
		membershipRepo: membershipRepo,
	}
}

// CreateTeamInput represents input for creating a team
type CreateTeamInput struct {
	Name        string
	Description string
}

// UpdateTeamInput represents a partial update; nil fields are left unchanged
type UpdateTeamInput struct {
	Name        *string
	Description *string
}

// TeamDetail is a team with the employees currently assigned to it
type TeamDetail struct {
	Team      *models.Team
	Employees []models.Employee
}

// List returns the teams of the caller's organisation
func (s *TeamService) List(ctx context.Context, identity auth.Identity) ([]models.Team, error) {
	teams, err := s.teamRepo.ListByOrganisation(ctx, identity.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	return teams, nil
}

// Get returns an owned team with its employees
func (s *TeamService) Get(ctx context.Context, identity auth.Identity, id string) (*TeamDetail, error) {
	team, err := s.load(ctx, identity, id, ErrTeamNotFound)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.ListByTeam(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team employees: %w", err)
	}
	return &TeamDetail{Team: team, Employees: employees}, nil
}

// Create adds a team to the caller's organisation
func (s *TeamService) Create(ctx context.Context, identity auth.Identity, input CreateTeamInput) (*models.Team, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrTeamNameRequired
	}

	team := &models.Team{
		OrganisationID: identity.OrganisationID,
		Name:           name,
		Description:    strings.TrimSpace(input.Description),
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

// Update applies the provided fields to an owned team
func (s *TeamService) Update(ctx context.Context, identity auth.Identity, id string, input UpdateTeamInput) (*models.Team, error) {
	team, err := s.load(ctx, identity, id, ErrTeamNotFound)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrTeamNameRequired
		}
		team.Name = name
	}
	if input.Description != nil {
		team.Description = strings.TrimSpace(*input.Description)
	}

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}
	return team, nil
}

// Delete removes an owned team and all of its memberships
func (s *TeamService) Delete(ctx context.Context, identity auth.Identity, id string) error {
	team, err := s.load(ctx, identity, id, ErrTeamNotFound)
	if err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, team.ID); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

// Assign links employees of the caller's organisation to an owned team.
// Ids that are malformed or belong to another organisation are dropped.
// It returns the number of eligible employees.
func (s *TeamService) Assign(ctx context.Context, identity auth.Identity, teamID string, employeeIDs []string) (int, error) {
	if len(employeeIDs) == 0 {
		return 0, ErrNoEmployeeIDs
	}

	team, err := s.load(ctx, identity, teamID, ErrMembershipTeamAbsent)
	if err != nil {
		return 0, err
	}

	eligible, err := s.employeeRepo.FilterIDsByOrganisation(ctx, identity.OrganisationID, validIDs(employeeIDs))
	if err != nil {
		return 0, fmt.Errorf("failed to filter employees: %w", err)
	}

	if err := s.membershipRepo.Assign(ctx, team.ID, eligible); err != nil {
		return 0, fmt.Errorf("failed to assign employees: %w", err)
	}
	return len(eligible), nil
}

// Unassign removes one employee from an owned team. Removing a link that
// does not exist succeeds.
func (s *TeamService) Unassign(ctx context.Context, identity auth.Identity, teamID, employeeID string) error {
	if strings.TrimSpace(employeeID) == "" {
		return ErrEmployeeIDRequired
	}

	team, err := s.load(ctx, identity, teamID, ErrMembershipTeamAbsent)
	if err != nil {
		return err
	}

	if err := s.membershipRepo.Unassign(ctx, team.ID, strings.TrimSpace(employeeID)); err != nil {
		return fmt.Errorf("failed to unassign employee: %w", err)
	}
	return nil
}

func (s *TeamService) load(ctx context.Context, identity auth.Identity, id string, notFound error) (*models.Team, error) {
	return loadOwned(ctx, identity, id, s.teamRepo.FindByID, notFound)
}

package repository

import (
	"context"

	"github.com/yukikurage/workforce-management-api/internal/database"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"gorm.io/gorm"
)

// GormTeamRepository is a GORM implementation of TeamRepository
type GormTeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &GormTeamRepository{db: db}
}

// Create creates a new team
func (r *GormTeamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// FindByID finds a team by ID
func (r *GormTeamRepository) FindByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&team).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// ListByOrganisation lists the teams of one organisation
func (r *GormTeamRepository) ListByOrganisation(ctx context.Context, organisationID string) ([]models.Team, error) {
	teams := []models.Team{}
	if err := r.db.WithContext(ctx).
		Scopes(database.ForOrganisation(organisationID)).
		Order("created_at ASC").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Update saves a team
func (r *GormTeamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

// Delete removes the team's memberships before the team row so no link
// outlives its team.
func (r *GormTeamRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", id).Delete(&models.Membership{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Team{}).Error
	})
}

// CountByOrganisation counts the teams of an organisation
func (r *GormTeamRepository) CountByOrganisation(ctx context.Context, organisationID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Team{}).
		Scopes(database.ForOrganisation(organisationID)).
		Count(&count).Error
	return count, err
}

package repository

import (
	"context"
	"time"

	"github.com/yukikurage/workforce-management-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMembershipRepository is a GORM implementation of MembershipRepository
type GormMembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new MembershipRepository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &GormMembershipRepository{db: db}
}

// Assign inserts the links in a single statement; rows that already exist
// are left untouched, keeping their original assignment time.
func (r *GormMembershipRepository) Assign(ctx context.Context, teamID string, employeeIDs []string) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	now := time.Now()
	memberships := make([]models.Membership, len(employeeIDs))
	for i, employeeID := range employeeIDs {
		memberships[i] = models.Membership{
			EmployeeID: employeeID,
			TeamID:     teamID,
			AssignedAt: now,
		}
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "team_id"}},
			DoNothing: true,
		}).
		Create(&memberships).Error
}

// Unassign removes one link
func (r *GormMembershipRepository) Unassign(ctx context.Context, teamID, employeeID string) error {
	return r.db.WithContext(ctx).
		Where("team_id = ? AND employee_id = ?", teamID, employeeID).
		Delete(&models.Membership{}).Error
}

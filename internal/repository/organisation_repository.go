package repository

import (
	"context"

	"github.com/yukikurage/workforce-management-api/internal/models"
	"gorm.io/gorm"
)

// GormOrganisationRepository is a GORM implementation of OrganisationRepository
type GormOrganisationRepository struct {
	db *gorm.DB
}

// NewOrganisationRepository creates a new OrganisationRepository
func NewOrganisationRepository(db *gorm.DB) OrganisationRepository {
	return &GormOrganisationRepository{db: db}
}

// Create creates a new organisation
func (r *GormOrganisationRepository) Create(ctx context.Context, org *models.Organisation) error {
	return r.db.WithContext(ctx).Create(org).Error
}

// FindByID finds an organisation by ID
func (r *GormOrganisationRepository) FindByID(ctx context.Context, id string) (*models.Organisation, error) {
	var org models.Organisation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

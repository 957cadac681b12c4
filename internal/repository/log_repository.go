package repository

import (
	"context"

	"github.com/yukikurage/workforce-management-api/internal/database"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"gorm.io/gorm"
)

// GormLogRepository is a GORM implementation of LogRepository
type GormLogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *gorm.DB) LogRepository {
	return &GormLogRepository{db: db}
}

// Create appends an entry
func (r *GormLogRepository) Create(ctx context.Context, entry *models.LogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListRecent lists the newest entries across all organisations
func (r *GormLogRepository) ListRecent(ctx context.Context, limit int) ([]models.LogEntry, error) {
	entries := []models.LogEntry{}
	if err := r.db.WithContext(ctx).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "email")
		}).
		Preload("Organisation", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name")
		}).
		Scopes(database.Newest(limit)).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

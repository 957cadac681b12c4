package database

import (
	"gorm.io/gorm"
)

// ForOrganisation restricts a query to rows of one organisation
func ForOrganisation(organisationID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("organisation_id = ?", organisationID)
	}
}

// Newest orders by timestamp descending and caps the result
func Newest(limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp DESC").Order("id DESC").Limit(limit)
	}
}

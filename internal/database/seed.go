package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yukikurage/workforce-management-api/internal/auth"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"gorm.io/gorm"
)

// SeedPassword is the password of every seeded admin.
const SeedPassword = "Password123"

// Seed populates demo organisations when the database holds none.
// It reports whether data was inserted.
func Seed(ctx context.Context, db *gorm.DB, log zerolog.Logger) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Organisation{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count organisations: %w", err)
	}
	if count > 0 {
		log.Info().Msg("Seed: data already present, skipping.")
		return false, nil
	}

	log.Info().Msg("Seed: populating initial data...")

	passwordHash, err := auth.HashPassword(SeedPassword)
	if err != nil {
		return false, fmt.Errorf("failed to hash seed password: %w", err)
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		org1 := &models.Organisation{Name: "Basant Technologies"}
		org2 := &models.Organisation{Name: "Infosys Software Solutions"}
		if err := tx.Create([]*models.Organisation{org1, org2}).Error; err != nil {
			return err
		}

		admin1 := &models.User{OrganisationID: org1.ID, Email: "admin1@basanttech.com", PasswordHash: passwordHash, Name: "Tony Admin", IsAdmin: true}
		admin2 := &models.User{OrganisationID: org2.ID, Email: "admin2@infosolutions.com", PasswordHash: passwordHash, Name: "Ravi Admin", IsAdmin: true}
		if err := tx.Create([]*models.User{admin1, admin2}).Error; err != nil {
			return err
		}

		emp1 := &models.Employee{OrganisationID: org1.ID, FirstName: "John", LastName: "Cena", Email: "john.cena@basanttech.com", Phone: "9876543210"}
		emp2 := &models.Employee{OrganisationID: org1.ID, FirstName: "Steve", LastName: "Smith", Email: "steve.smith@infosolutions.com", Phone: "9876543210"}
		emp3 := &models.Employee{OrganisationID: org2.ID, FirstName: "Mike", LastName: "Kumar", Email: "mike.kumar@infosolutions.com", Phone: "5555555555"}
		if err := tx.Create([]*models.Employee{emp1, emp2, emp3}).Error; err != nil {
			return err
		}

		team1 := &models.Team{OrganisationID: org1.ID, Name: "Development", Description: "Basant Development Team"}
		team2 := &models.Team{OrganisationID: org1.ID, Name: "Marketing", Description: "Basant Marketing Team"}
		team3 := &models.Team{OrganisationID: org2.ID, Name: "Sales", Description: "InfoSolutions Sales Team"}
		if err := tx.Create([]*models.Team{team1, team2, team3}).Error; err != nil {
			return err
		}

		now := time.Now()
		memberships := []models.Membership{
			{EmployeeID: emp1.ID, TeamID: team1.ID, AssignedAt: now},
			{EmployeeID: emp2.ID, TeamID: team1.ID, AssignedAt: now},
			{EmployeeID: emp2.ID, TeamID: team2.ID, AssignedAt: now},
			{EmployeeID: emp3.ID, TeamID: team3.ID, AssignedAt: now},
		}
		if err := tx.Create(&memberships).Error; err != nil {
			return err
		}

		event := "SEED_ADMIN_CREATED"
		status := 201
		ip := "127.0.0.1"
		logs := []*models.LogEntry{
			{OrganisationID: &org1.ID, UserID: &admin1.ID, Action: "Admin seeded and logged in", Event: &event, Status: &status, IP: &ip},
			{OrganisationID: &org2.ID, UserID: &admin2.ID, Action: "Admin seeded", Event: &event, Status: &status, IP: &ip},
		}
		return tx.Create(logs).Error
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed data: %w", err)
	}

	log.Info().Msg("Seed data inserted.")
	return true, nil
}

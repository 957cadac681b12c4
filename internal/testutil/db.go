// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/workforce-management-api/internal/auth"
	"github.com/yukikurage/workforce-management-api/internal/database"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated in-memory SQLite database. A single connection is
// used so every goroutine sees the same in-memory database.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.NewGormConfig(logger.Discard))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, database.Migrate(db, zerolog.Nop()))
	return db
}

// CreateOrganisation inserts an organisation
func CreateOrganisation(t testing.TB, db *gorm.DB, name string) *models.Organisation {
	t.Helper()
	org := &models.Organisation{Name: name}
	require.NoError(t, db.Create(org).Error)
	return org
}

// CreateUser inserts a user with the given password
func CreateUser(t testing.TB, db *gorm.DB, orgID, email, password string, isAdmin bool) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		OrganisationID: orgID,
		Email:          email,
		PasswordHash:   hash,
		Name:           "User " + email,
		IsAdmin:        isAdmin,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateEmployee inserts an employee
func CreateEmployee(t testing.TB, db *gorm.DB, orgID, firstName string) *models.Employee {
	t.Helper()
	emp := &models.Employee{
		OrganisationID: orgID,
		FirstName:      firstName,
		LastName:       "Doe",
		Email:          firstName + "@example.com",
	}
	require.NoError(t, db.Create(emp).Error)
	return emp
}

// CreateTeam inserts a team
func CreateTeam(t testing.TB, db *gorm.DB, orgID, name string) *models.Team {
	t.Helper()
	team := &models.Team{OrganisationID: orgID, Name: name, Description: name + " team"}
	require.NoError(t, db.Create(team).Error)
	return team
}

// IdentityOf builds the identity the auth middleware would attach for user
func IdentityOf(user *models.User) auth.Identity {
	return auth.Identity{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		OrganisationID: user.OrganisationID,
		IsAdmin:        user.IsAdmin,
	}
}

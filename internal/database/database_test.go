package database

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), NewGormConfig(logger.Discard))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func TestMigrate_CreatesTablesAndIndexes(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db, zerolog.Nop()))

	for _, table := range []string{"organisations", "users", "employees", "teams", "memberships", "logs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasIndex("memberships", "idx_memberships_team_id"))
	assert.True(t, db.Migrator().HasIndex("logs", "idx_logs_timestamp"))

	// Running twice is a no-op
	require.NoError(t, Migrate(db, zerolog.Nop()))
}

func TestSeed_OnlyOnEmptyDatabase(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db, zerolog.Nop()))

	inserted, err := Seed(context.Background(), db, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, inserted)

	var orgs, employees, memberships, logs int64
	db.Model(&models.Organisation{}).Count(&orgs)
	db.Model(&models.Employee{}).Count(&employees)
	db.Model(&models.Membership{}).Count(&memberships)
	db.Model(&models.LogEntry{}).Count(&logs)
	assert.Equal(t, int64(2), orgs)
	assert.Equal(t, int64(3), employees)
	assert.Equal(t, int64(4), memberships)
	assert.Equal(t, int64(2), logs)

	inserted, err = Seed(context.Background(), db, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, inserted)
}

func TestForOrganisation(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db, zerolog.Nop()))

	require.NoError(t, db.Create(&models.Team{OrganisationID: "org-a", Name: "A"}).Error)
	require.NoError(t, db.Create(&models.Team{OrganisationID: "org-b", Name: "B"}).Error)

	var teams []models.Team
	require.NoError(t, db.Scopes(ForOrganisation("org-a")).Find(&teams).Error)
	require.Len(t, teams, 1)
	assert.Equal(t, "A", teams[0].Name)
}

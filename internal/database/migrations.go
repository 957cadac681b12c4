package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// AddIndexes adds the tenant scoping and log ordering indexes
func AddIndexes(db *gorm.DB, log zerolog.Logger) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Tenant scoped listing and counting
		{"users", "idx_users_organisation_id", "organisation_id"},
		{"employees", "idx_employees_organisation_id", "organisation_id"},
		{"teams", "idx_teams_organisation_id", "organisation_id"},

		// Membership lookups by team (cascade delete, team detail)
		{"memberships", "idx_memberships_team_id", "team_id"},

		// Log retrieval, newest first
		{"logs", "idx_logs_timestamp", "timestamp"},
		{"logs", "idx_logs_organisation_id", "organisation_id"},
		{"logs", "idx_logs_user_id", "user_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.table, idx.name) {
			log.Debug().Str("index", idx.name).Msg("index already exists, skipping")
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}

		log.Info().Str("index", idx.name).Str("table", idx.table).Msg("created index")
	}

	return nil
}

package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yukikurage/workforce-management-api/internal/config"
	"github.com/yukikurage/workforce-management-api/internal/logging"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database selected by cfg and configures the pool.
func Connect(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.DSN())
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	level := logger.Warn
	if !cfg.IsProduction() {
		level = logger.Info
	}

	db, err := gorm.Open(dialector, NewGormConfig(logging.NewGormLogger(log, level)))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	log.Info().Str("driver", cfg.DBDriver).Msg("Database connection established")
	return db, nil
}

// NewGormConfig returns the GORM settings shared by every connection.
// Referential integrity is enforced by the application, not by foreign keys,
// and driver errors are translated so uniqueness violations surface as
// gorm.ErrDuplicatedKey.
func NewGormConfig(l logger.Interface) *gorm.Config {
	return &gorm.Config{
		Logger:                                   l,
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	}
}

// Migrate creates or updates every table and secondary index.
func Migrate(db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&models.Organisation{},
		&models.User{},
		&models.Employee{},
		&models.Team{},
		&models.Membership{},
		&models.LogEntry{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := AddIndexes(db, log); err != nil {
		return err
	}

	log.Info().Msg("Database migrations completed")
	return nil
}

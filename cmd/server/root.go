package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/yukikurage/workforce-management-api/internal/config"
	"github.com/yukikurage/workforce-management-api/internal/database"
	apierrors "github.com/yukikurage/workforce-management-api/internal/errors"
	"github.com/yukikurage/workforce-management-api/internal/logging"
	"gorm.io/gorm"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "server",
	Short:        "Workforce Management API",
	Long:         `Multi-tenant API for managing employees, teams and audit logs.`,
	SilenceUsage: true,
}

// app holds what every subcommand needs
type app struct {
	cfg    *config.Config
	logger zerolog.Logger
	db     *gorm.DB
}

// bootstrap loads configuration, sets up logging and opens the database.
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.IsProduction())
	gin.SetMode(cfg.GinMode())
	apierrors.SetExposeDetails(!cfg.IsProduction())

	db, err := database.Connect(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &app{cfg: cfg, logger: logger, db: db}, nil
}

func (a *app) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		sqlDB.Close()
	}
}

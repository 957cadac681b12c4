package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/yukikurage/workforce-management-api/internal/audit"
	"github.com/yukikurage/workforce-management-api/internal/auth"
	"github.com/yukikurage/workforce-management-api/internal/database"
	"github.com/yukikurage/workforce-management-api/internal/metrics"
	"github.com/yukikurage/workforce-management-api/internal/repository"
	"github.com/yukikurage/workforce-management-api/internal/router"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the HTTP API",
	Long:  `Migrate the schema, optionally seed demo data, then serve the API until SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if err := database.Migrate(a.db, a.logger); err != nil {
		return err
	}

	if a.cfg.SeedOnStart {
		if _, err := database.Seed(context.Background(), a.db, a.logger); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	tokens, err := auth.NewTokenIssuer(a.cfg.JWTSecret, a.cfg.TokenTTL)
	if err != nil {
		return err
	}

	m := metrics.New()
	auditor := audit.New(
		repository.NewLogRepository(a.db),
		a.logger,
		audit.WithTimeout(a.cfg.AuditWriteTimeout),
		audit.WithMetrics(m),
	)

	handler := router.New(router.Dependencies{
		DB:           a.db,
		Tokens:       tokens,
		Auditor:      auditor,
		Metrics:      m,
		Logger:       a.logger,
		ClientOrigin: a.cfg.ClientOrigin(),
		Environment:  a.cfg.Env,
	})

	srv := &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info().Str("port", a.cfg.Port).Str("env", a.cfg.Env).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-quit:
		a.logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	// drain audit writes spawned by the last requests
	auditor.Wait()
	a.logger.Info().Msg("server stopped")
	return nil
}

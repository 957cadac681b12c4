package services

import (
	"context"
	"fmt"

	"github.com/yukikurage/workforce-management-api/internal/constants"
	"github.com/yukikurage/workforce-management-api/internal/models"
	"github.com/yukikurage/workforce-management-api/internal/repository"
)

// LogService reads the audit log
type LogService struct {
	logRepo repository.LogRepository
}

// NewLogService creates a new LogService
func NewLogService(logRepo repository.LogRepository) *LogService {
	return &LogService{logRepo: logRepo}
}

// Recent returns the newest entries of every organisation, newest first.
// The limit is clamped to the retrieval cap.
func (s *LogService) Recent(ctx context.Context, limit int) ([]models.LogEntry, error) {
	if limit < constants.MinLogEntries || limit > constants.MaxLogEntries {
		limit = constants.MaxLogEntries
	}

	entries, err := s.logRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	return entries, nil
}

package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/yukikurage/workforce-management-api/internal/auth"
	"gorm.io/gorm"
)

// loadOwned fetches a tenant scoped resource and hides anything the caller
// does not own behind notFound. Malformed ids never reach the database.
func loadOwned[T auth.Owned](ctx context.Context, identity auth.Identity, id string, find func(context.Context, string) (T, error), notFound error) (T, error) {
	var zero T

	if _, err := uuid.Parse(id); err != nil {
		return zero, notFound
	}

	resource, err := find(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, notFound
		}
		return zero, err
	}

	if !auth.Owns(identity, resource) {
		return zero, notFound
	}
	return resource, nil
}

// validIDs drops blank and malformed ids and removes duplicates.
func validIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

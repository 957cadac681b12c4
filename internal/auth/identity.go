package auth

import "context"

// Identity is the caller resolved from a bearer token and the current
// user record. It is populated once per request and read-only thereafter.
type Identity struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	OrganisationID string `json:"organisationId"`
	IsAdmin        bool   `json:"isAdmin"`
}

// Owned is implemented by every tenant scoped resource.
type Owned interface {
	OrganisationKey() string
}

// Owns reports whether the resource belongs to the caller's organisation.
func Owns(identity Identity, resource Owned) bool {
	if identity.OrganisationID == "" {
		return false
	}
	return resource.OrganisationKey() == identity.OrganisationID
}

type contextKey int

const identityContextKey contextKey = iota

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext extracts the identity attached by the auth middleware.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(Identity)
	return identity, ok
}

package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type ownedResource string

func (o ownedResource) OrganisationKey() string { return string(o) }

func TestOwns(t *testing.T) {
	identity := Identity{ID: "u1", OrganisationID: "org-a"}

	assert.True(t, Owns(identity, ownedResource("org-a")))
	assert.False(t, Owns(identity, ownedResource("org-b")))
	assert.False(t, Owns(Identity{}, ownedResource("")), "an identity without organisation owns nothing")
}

func TestIdentityContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{ID: "u1", IsAdmin: true})
	identity, ok := IdentityFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", identity.ID)
	assert.True(t, identity.IsAdmin)
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("pw123456")
	assert.NoError(t, err)
	assert.NotEqual(t, "pw123456", hash)
	assert.True(t, CheckPassword(hash, "pw123456"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

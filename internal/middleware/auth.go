package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yukikurage/workforce-management-api/internal/auth"
	"github.com/yukikurage/workforce-management-api/internal/constants"
	apierrors "github.com/yukikurage/workforce-management-api/internal/errors"
	"github.com/yukikurage/workforce-management-api/internal/repository"
	"gorm.io/gorm"
)

// RequireAuth verifies the bearer token and resolves the caller from the
// current user record. Claims only locate the user; name, organisation and
// admin flag are read fresh so a revoked admin loses access on the next request.
func RequireAuth(tokens *auth.TokenIssuer, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, constants.BearerPrefix) {
			apierrors.Unauthorized(c, "Unauthorized", nil)
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(header, constants.BearerPrefix))
		if tokenString == "" {
			apierrors.Unauthorized(c, "Unauthorized", nil)
			return
		}

		claims, err := tokens.Parse(tokenString)
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token", err)
			return
		}

		if _, err := uuid.Parse(claims.UserID); err != nil {
			apierrors.Unauthorized(c, "User not found", nil)
			return
		}

		user, err := users.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apierrors.Unauthorized(c, "User not found", nil)
				return
			}
			apierrors.Respond(c, apierrors.Internal("Internal Server Error", err))
			return
		}

		identity := auth.Identity{
			ID:             user.ID,
			Name:           user.Name,
			Email:          user.Email,
			OrganisationID: user.OrganisationID,
			IsAdmin:        user.IsAdmin,
		}

		c.Set(constants.ContextKeyIdentity, identity)
		c.Set(constants.ContextKeyOrganisationID, identity.OrganisationID)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// GetIdentity retrieves the authenticated caller from context
func GetIdentity(c *gin.Context) (auth.Identity, bool) {
	value, exists := c.Get(constants.ContextKeyIdentity)
	if !exists {
		return auth.Identity{}, false
	}

	identity, ok := value.(auth.Identity)
	return identity, ok
}

// GetOrganisationID retrieves the caller's organisation id from context
func GetOrganisationID(c *gin.Context) (string, bool) {
	orgID := c.GetString(constants.ContextKeyOrganisationID)
	return orgID, orgID != ""
}

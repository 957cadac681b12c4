package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/workforce-management-api/internal/errors"
)

// RequireAdmin rejects callers without the admin flag. It must run after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			apierrors.Unauthorized(c, "Unauthorized", nil)
			return
		}

		if !identity.IsAdmin {
			apierrors.Forbidden(c, "Access denied. Admins only.")
			return
		}

		c.Next()
	}
}

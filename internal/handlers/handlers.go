package handlers

import (
	stderrors "errors"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/workforce-management-api/internal/auth"
	apierrors "github.com/yukikurage/workforce-management-api/internal/errors"
)

// bindJSON decodes the request body into req. An empty body leaves req at
// its zero value so the service can report the missing fields.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !stderrors.Is(err, io.EOF) {
		apierrors.RespondBinding(c, "Invalid request body", err)
		return false
	}
	return true
}

// respondError writes err, reporting unclassified failures with fallback.
func respondError(c *gin.Context, err error, fallback string) {
	var appErr *apierrors.AppError
	if stderrors.As(err, &appErr) {
		apierrors.Respond(c, err)
		return
	}
	apierrors.Respond(c, apierrors.Internal(fallback, err))
}

// requireIdentity reads the caller from the request context, where
// RequireAuth attaches it for the services below the handlers.
func requireIdentity(c *gin.Context) (auth.Identity, bool) {
	identity, ok := auth.IdentityFromContext(c.Request.Context())
	if !ok {
		apierrors.Unauthorized(c, "Unauthorized", nil)
	}
	return identity, ok
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	apierrors "github.com/yukikurage/workforce-management-api/internal/errors"
)

// Recovery turns a panic into a 500 response and logs it.
func Recovery(logger zerolog.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		apierrors.Respond(c, apierrors.New(apierrors.KindInternal, "Internal Server Error"))
	})
}

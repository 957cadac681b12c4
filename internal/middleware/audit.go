package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/workforce-management-api/internal/audit"
	"github.com/yukikurage/workforce-management-api/internal/constants"
)

// Audit records one log entry for every request once the handler chain has
// finished. It is installed before RequireAuth so rejected requests are
// recorded with their real status. The write never delays the response.
func Audit(auditor *audit.Auditor) gin.HandlerFunc {
	return func(c *gin.Context) {
		// a panicking handler has not written its status yet; record it as a
		// 500 and let Recovery produce the response
		defer func() {
			if r := recover(); r != nil {
				auditor.Record(audit.Resolve(requestInfo(c, http.StatusInternalServerError)))
				panic(r)
			}
		}()

		c.Next()

		auditor.Record(audit.Resolve(requestInfo(c, c.Writer.Status())))
	}
}

func requestInfo(c *gin.Context, status int) audit.RequestInfo {
	info := audit.RequestInfo{
		Method:       c.Request.Method,
		URL:          c.Request.URL.RequestURI(),
		Status:       status,
		ForwardedFor: c.GetHeader("X-Forwarded-For"),
		PeerAddr:     c.Request.RemoteAddr,
	}
	if identity, ok := GetIdentity(c); ok {
		info.Identity = &identity
	}

	info.Explicit.Action = c.GetString(constants.ContextKeyAuditAction)
	if event := c.GetString(constants.ContextKeyAuditEvent); event != "" {
		info.Explicit.Event = audit.String(event)
	} else {
		info.Explicit.Event = audit.String(EventForMethod(c.Request.Method))
	}
	return info
}

// Annotate names the action and event of the entry Audit writes for this request.
func Annotate(c *gin.Context, action, event string) {
	c.Set(constants.ContextKeyAuditAction, action)
	c.Set(constants.ContextKeyAuditEvent, event)
}

// EventForMethod maps an HTTP method to a generic audit event
func EventForMethod(method string) string {
	switch method {
	case http.MethodPost:
		return "CREATE"
	case http.MethodPut, http.MethodPatch:
		return "UPDATE"
	case http.MethodDelete:
		return "DELETE"
	case http.MethodGet:
		return "READ"
	default:
		return "REQUEST"
	}
}

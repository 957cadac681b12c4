package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/workforce-management-api/internal/dto"
	"github.com/yukikurage/workforce-management-api/internal/services"
	"github.com/yukikurage/workforce-management-api/internal/utils"
)

// LogHandler serves the audit log to admins
type LogHandler struct {
	logService *services.LogService
}

// NewLogHandler creates a new LogHandler
func NewLogHandler(logService *services.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// ListLogs returns the newest audit entries of every organisation
func (h *LogHandler) ListLogs(c *gin.Context) {
	entries, err := h.logService.Recent(c.Request.Context(), utils.GetLogLimit(c))
	if err != nil {
		respondError(c, err, "Failed to fetch logs")
		return
	}

	c.JSON(http.StatusOK, dto.ToLogListResponse(entries))
}

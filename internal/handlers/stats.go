package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/workforce-management-api/internal/dto"
	"github.com/yukikurage/workforce-management-api/internal/services"
)

// StatsHandler serves organisation statistics
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Summary returns employee, team and admin counts for the caller's organisation
func (h *StatsHandler) Summary(c *gin.Context) {
	identity, ok := requireIdentity(c)
	if !ok {
		return
	}

	summary, err := h.statsService.Summary(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Failed to load stats")
		return
	}

	c.JSON(http.StatusOK, dto.StatsSummaryResponse{
		TotalEmployees: summary.TotalEmployees,
		TotalTeams:     summary.TotalTeams,
		TotalAdmins:    summary.TotalAdmins,
	})
}

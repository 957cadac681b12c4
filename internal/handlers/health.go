package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const healthTimeout = 2 * time.Second

// HealthHandler reports liveness and database reachability
type HealthHandler struct {
	db  *gorm.DB
	env string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB, env string) *HealthHandler {
	return &HealthHandler{db: db, env: env}
}

// Banner identifies the API and its environment
func (h *HealthHandler) Banner(c *gin.Context) {
	c.String(http.StatusOK, fmt.Sprintf("HRMS API (env: %s)", h.env))
}

// Health pings the database
func (h *HealthHandler) Health(c *gin.Context) {
	sqlDB, err := h.db.DB()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

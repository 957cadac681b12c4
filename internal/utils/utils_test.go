package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/workforce-management-api/internal/constants"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name         string
		forwardedFor string
		peer         string
		want         string
	}{
		{"forwarded single", "203.0.113.7", "10.0.0.1:5555", "203.0.113.7"},
		{"forwarded chain", "203.0.113.7, 10.0.0.2", "10.0.0.1:5555", "203.0.113.7"},
		{"peer with port", "", "10.0.0.1:5555", "10.0.0.1"},
		{"peer ipv6", "", "[::1]:8080", "::1"},
		{"peer without port", "", "10.0.0.1", "10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientIP(tt.forwardedFor, tt.peer))
		})
	}
}

func TestGetLogLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		want  int
	}{
		{"", constants.MaxLogEntries},
		{"limit=10", 10},
		{"limit=0", constants.MaxLogEntries},
		{"limit=5000", constants.MaxLogEntries},
		{"limit=abc", constants.MaxLogEntries},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/logs?"+tt.query, nil)
		assert.Equal(t, tt.want, GetLogLimit(c), tt.query)
	}
}

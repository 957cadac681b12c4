package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/workforce-management-api/internal/constants"
)

// GetLogLimit reads the optional "limit" query parameter for log retrieval.
// Missing or out of range values fall back to the maximum.
func GetLogLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultLogEntries)))
	if err != nil || limit < constants.MinLogEntries || limit > constants.MaxLogEntries {
		return constants.DefaultLogEntries
	}
	return limit
}

package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
	MaxLimit     = 1000
)

// ParseListWindow extracts and validates the skip/limit query parameters
// used by the windowed list endpoints.
func ParseListWindow(c *gin.Context) (skip, limit int) {
	skipStr := c.DefaultQuery("skip", "0")
	skip, err := strconv.Atoi(skipStr)
	if err != nil || skip < 0 {
		skip = DefaultSkip
	}

	limitStr := c.DefaultQuery("limit", "100")
	limit, err = strconv.Atoi(limitStr)
	if err != nil || limit <= 0 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return skip, limit
}

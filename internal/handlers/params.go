package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// parseIDParam parses a numeric path parameter
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// parseDate parses an optional date field accepting both RFC 3339
// timestamps and bare date strings.
func parseDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, *value); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.DateOnly, *value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

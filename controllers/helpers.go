package controllers

import (
	"strconv"
	"time"
)

// queryID reads the integer id query parameter. A malformed value behaves
// like id 0, which no row ever has, so lookups fall through to 404.
func queryID(raw string) int {
	id, _ := strconv.Atoi(raw)
	return id
}

// parseDate parses an optional YYYY-MM-DD field from a request body.
func parseDate(raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

package service

import "strings"

// matchesQuery reports whether any field contains query, case-insensitively.
// An empty query matches everything (the cleared search box).
func matchesQuery(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

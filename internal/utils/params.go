package utils

import (
	"strconv"
	"strings"
)

// IntBounds clamps parsed values into an inclusive range. A zero bound means
// "no bound on that side".
type IntBounds struct {
	Min int
	Max int
}

// ParseIntParam parses a query parameter with clamping: missing, empty or
// non-numeric input falls back to the default; out-of-range input is clamped
// to the nearest bound, never rejected.
func ParseIntParam(raw string, defaultVal int, bounds IntBounds) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(trimmed)
	if err != nil {
		return defaultVal
	}
	if bounds.Min != 0 && parsed < bounds.Min {
		return bounds.Min
	}
	if bounds.Max != 0 && parsed > bounds.Max {
		return bounds.Max
	}
	return parsed
}

// ParseBoolParam accepts true/1/yes/y and false/0/no/n, case-insensitive.
// Anything else falls back to the default.
func ParseBoolParam(raw string, defaultVal bool) bool {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if normalized == "" {
		return defaultVal
	}
	switch normalized {
	case "true", "1", "yes", "y":
		return true
	case "false", "0", "no", "n":
		return false
	default:
		return defaultVal
	}
}

// ParseListParam splits a comma-separated parameter into a set, trimming
// whitespace and dropping empty segments.
func ParseListParam(raw string) map[string]bool {
	set := make(map[string]bool)
	if raw == "" {
		return set
	}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set[part] = true
	}
	return set
}

package utils

import "time"

// FormatTimestamp renders a timestamp as RFC3339 in UTC for API responses
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

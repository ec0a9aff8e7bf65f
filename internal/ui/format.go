package ui

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// formatSize renders a byte count using the largest base-1024 unit that keeps
// the scaled value at or above 1, rounded to the nearest whole number.
func formatSize(bytes int64) string {
	if bytes == 0 {
		return "0 Bytes"
	}
	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%d %s", int64(math.Round(value)), sizeUnits[unit])
}

// freshness describes how long ago the catalog was last updated.
func freshness(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

// truncate shortens a string to max characters with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// Package util holds small formatting helpers for user-facing text.
package util

import (
	"fmt"
	"time"
)

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats a duration for people, e.g. "30 minutes", "2 hours" or "1h30m".
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	switch {
	case duration < time.Minute:
		return plural(int(duration.Seconds()), "second")
	case duration < time.Hour && duration%time.Minute == 0:
		return plural(int(duration.Minutes()), "minute")
	case duration < time.Hour:
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	case duration%time.Hour == 0:
		return plural(int(duration.Hours()), "hour")
	}

	return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}

	return fmt.Sprintf("%d %ss", n, unit)
}

// Package sysinfo - formatting helpers for collected facts.
package sysinfo

import (
	"fmt"
	"strings"
)

// FormatUptime renders an uptime in seconds as "Xd Yh Zm".
//
// Parameters:
//   - seconds: The uptime to format
//
// Returns:
//   - The space-joined nonzero day and hour components followed by the
//     minutes; minutes are included whenever nonzero, and also when
//     days and hours are both zero, so sub-minute uptimes render as
//     "0m" rather than an empty string.
//
// Example: FormatUptime(90000) returns "1d 1h".
func FormatUptime(seconds uint64) string {
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	mins := (seconds % 3600) / 60

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dm", mins))
	}
	return strings.Join(parts, " ")
}

// FormatBytes converts a byte count to a human-readable string.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - Gigabytes to one decimal place for counts of 1 GiB and above,
//     otherwise megabytes to one decimal place, suffixed "GB"/"MB"
//
// Example: FormatBytes(1610612736) returns "1.5 GB".
func FormatBytes(bytes uint64) string {
	const (
		gb = 1 << 30
		mb = 1 << 20
	)
	if bytes >= gb {
		return fmt.Sprintf("%.1f GB", float64(bytes)/float64(gb))
	}
	return fmt.Sprintf("%.1f MB", float64(bytes)/float64(mb))
}

// TruncateString truncates a string to a maximum character count and
// adds an ellipsis if needed. Counting is rune-based so multi-byte CPU
// model names are never cut mid-glyph.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: Maximum character count of the resulting string
//
// Returns:
//   - The original string if its character count is at most maxLen
//   - A truncated string with "..." appended otherwise
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

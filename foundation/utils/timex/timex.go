// File: timex.go
// Title: Time Utilities
// Description: Duration and relative-time formatting used by the workspace
//              listing and operation timers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-17 v0.2.0: Reduced to duration and relative-time formatting

package timex

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration formats a duration in compact form (1d 2h 30m 45s). Larger
// units force the smaller ones down to seconds; sub-second remainders are
// shown as ms and μs.
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	if d < 0 {
		return "-" + FormatDuration(-d)
	}

	var parts []string
	if days := d / (24 * time.Hour); days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
		d -= days * 24 * time.Hour
	}
	if hours := d / time.Hour; hours > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
		d -= hours * time.Hour
	}
	if minutes := d / time.Minute; minutes > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
		d -= minutes * time.Minute
	}
	if seconds := d / time.Second; seconds > 0 || len(parts) > 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
		d -= seconds * time.Second
	}
	if ms := d / time.Millisecond; ms > 0 {
		parts = append(parts, fmt.Sprintf("%dms", ms))
		d -= ms * time.Millisecond
	}
	if us := d / time.Microsecond; us > 0 {
		parts = append(parts, fmt.Sprintf("%dμs", us))
		d -= us * time.Microsecond
	}
	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%dns", d))
	}
	return strings.Join(parts, " ")
}

// Ago describes t relative to now in the largest whole unit: "just now",
// "5m ago", "3h ago", "2d ago". Times more than a week back are rendered as
// a date, times in the future as "in 5m".
func Ago(t, now time.Time) string {
	d := now.Sub(t)
	suffix, prefix := " ago", ""
	if d < 0 {
		d, suffix, prefix = -d, "", "in "
	}

	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%s%dm%s", prefix, d/time.Minute, suffix)
	case d < 24*time.Hour:
		return fmt.Sprintf("%s%dh%s", prefix, d/time.Hour, suffix)
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%s%dd%s", prefix, d/(24*time.Hour), suffix)
	default:
		return t.In(now.Location()).Format(time.DateOnly)
	}
}

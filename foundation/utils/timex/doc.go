// File: doc.go
// Title: Package Documentation for timex
// Description: Package timex formats durations and relative times for
//              terminal output.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Reduced to formatting helpers

// Package timex formats durations and relative times for terminal output.
//
//	timex.FormatDuration(26*time.Hour + 90*time.Second) // "1d 2h 1m 30s"
//	timex.Ago(entry.UpdatedAt, time.Now())              // "5m ago"
package timex

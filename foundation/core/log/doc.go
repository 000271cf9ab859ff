// Package log provides structured logging for the gauss foundation and CLI.
//
// Package: log
// Title: gauss Structured Logging
// Description: Structured logging with levels, several output formats and
//              integration with the gauss error taxonomy.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-16 v0.2.0: Nop default, deterministic field order
//
// Library packages never print on their own. They take a *Logger option and
// fall back to GetDefault, which discards until the application installs a
// logger with SetDefault.
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: os.Stderr,
//	}).WithName("linalgx")
//
//	logger.Debug("determinant", log.Fields{"rows": 3, "method": "cofactor"})
//
//	timer := logger.StartTimer("inverse")
//	inv, err := m.Inverse()
//	timer.StopWithError(err)
package log

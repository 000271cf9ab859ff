// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads gauss configuration from TOML or YAML files,
//              applies GAUSS_* environment overrides, validates the result and
//              hot reloads watched files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Typed Settings, caarlos0/env overrides, fsnotify watching

/*
Package config provides configuration management for gauss.

Key Features:
  - Multi-format support (TOML, YAML) with detection by file extension
  - Dot notation access with environment variable overrides
  - Rule based validation with collected error messages
  - Typed Settings decoded from the file and GAUSS_* variables
  - Hot reloading through fsnotify with change callbacks

# Basic Configuration Loading

	cfg, err := config.Load("gauss.toml")
	if err != nil {
		return err
	}
	precision := cfg.GetInt("precision", 34)
	order := cfg.GetStringSlice("detection_order")

# Typed Settings

LoadSettings discovers ./gauss.toml (or .yaml/.yml) and the user config
directory when no path is given:

	s, _, err := config.LoadSettings("")
	if err != nil {
		return err
	}
	ctx := s.MathContext() // explicit mathx.Context, never a global

Environment variables override file values:

	GAUSS_PRECISION=50
	GAUSS_ROUNDING=half_up
	GAUSS_DETECTION_ORDER=de-DE,en-US
	GAUSS_LOG_LEVEL=debug

# Hot Reloading

	cfg.OnChange(func(old, new *config.Config) {
		// re-derive settings
	})
	if err := cfg.Watch(ctx); err != nil {
		return err
	}
*/
package config

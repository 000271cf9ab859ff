// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex provides the small set of file system helpers
//              shared by configuration discovery, locale loading and the
//              workspace store.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Reduced to config, i18n and workspace helpers

// Package filex provides file system helpers.
//
//	if filex.IsFile(candidate) { ... }
//	files, err := filex.ListFiles(dir, ".yaml", ".yml", ".toml")
//	err = filex.EnsureParentDir(dbPath, 0o755)
package filex

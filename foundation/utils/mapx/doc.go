// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides generic map helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Reduced to the helpers used by operation tables

// Package mapx provides generic map helpers. SortedKeys gives operation
// tables a stable listing order:
//
//	for _, name := range mapx.SortedKeys(ops) {
//		fmt.Println(name)
//	}
package mapx

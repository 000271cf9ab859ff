// Package stringx provides string helpers shared by the gauss foundation.
//
// Package: stringx
// Title: String Utilities
// Description: Blank checks, padding and ASCII digit string helpers used by
//              decimal values, locale formatting and terminal rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Digit helpers
package stringx

// Package error provides structured error values for the gauss libraries.
//
// Package: error
// Title: gauss Error Handling Framework
// Description: This package implements a structured error type with an error code
//              from the numeric failure taxonomy, a severity, free-form details and a
//              captured stack trace. All packages of the foundation tree return these
//              errors so that callers can branch on codes instead of message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Numeric failure taxonomy, errors.Is matching by code
//
// Usage:
//
//	import gerror "github.com/msto63/gauss/foundation/core/error"
//
//	err := gerror.New("division by zero").
//		WithCode(gerror.CodeDivisionByZero).
//		WithOperation("mathx.Divide").
//		WithDetail("dividend", "12.5")
//
//	if gerror.HasCode(err, gerror.CodeDivisionByZero) {
//		// handle
//	}
//
// Two errors with the same known code compare equal under errors.Is, which is what
// the sentinels of package core/errors rely on.
package error

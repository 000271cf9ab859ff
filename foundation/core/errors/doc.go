// File: doc.go
// Title: Package errors documentation
// Description: Standardized constructors and sentinels on top of core/error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial documentation
// - 2026-10-16 v0.2.0: Numeric taxonomy

// Package errors provides the constructors every foundation module uses to
// report failures, plus one sentinel per failure kind.
//
// Constructors return *gerror.Error values carrying a taxonomy code, the
// reporting module and the operation. Callers test for a kind with errors.Is:
//
//	q, err := a.Div(b)
//	if errors.Is(err, fe.ErrDivisionByZero) {
//		// ...
//	}
//
// Custom errors can be assembled with NewErrorBuilder:
//
//	err := fe.NewErrorBuilder(fe.ModuleLinalgx).
//		Operation("solve").
//		Code(gerror.CodeSingularMatrix).
//		Detail("pivot", 3).
//		Build()
package errors

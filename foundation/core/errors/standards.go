// File: standards.go
// Title: Error Standards for the gauss Foundation
// Description: Module identifiers and sentinel errors shared by all foundation
//              packages. Sentinels carry a code only; errors.Is matches any error
//              built by the constructors in utils.go against them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-16 v0.2.0: Numeric modules and sentinels

package errors

import (
	gerror "github.com/msto63/gauss/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleMathx     = "mathx"
	ModuleI18n      = "i18n"
	ModuleLinalgx   = "linalgx"
	ModuleStatx     = "statx"
	ModuleConfig    = "config"
	ModuleWorkspace = "workspace"
)

func sentinel(message string, code gerror.Code) *gerror.Error {
	return gerror.New(message).WithCode(code)
}

// Sentinels for errors.Is checks. Never return these directly; use the constructors.
var (
	ErrInvalidArgument      = sentinel("invalid argument", gerror.CodeInvalidArgument)
	ErrDivisionByZero       = sentinel("division by zero", gerror.CodeDivisionByZero)
	ErrIntegerRequired      = sentinel("integer required", gerror.CodeIntegerRequired)
	ErrInvalidRange         = sentinel("invalid range", gerror.CodeInvalidRange)
	ErrNegativeValue        = sentinel("negative value", gerror.CodeNegativeValue)
	ErrNotANumber           = sentinel("not a number", gerror.CodeNotANumber)
	ErrParseFailure         = sentinel("parse failure", gerror.CodeParseFailure)
	ErrNoMatchingLocale     = sentinel("no matching locale", gerror.CodeNoMatchingLocale)
	ErrUnknownLocale        = sentinel("unknown locale", gerror.CodeUnknownLocale)
	ErrInvalidFormat        = sentinel("invalid format", gerror.CodeInvalidFormat)
	ErrDimensionMismatch    = sentinel("dimension mismatch", gerror.CodeDimensionMismatch)
	ErrNotSquare            = sentinel("not square", gerror.CodeNotSquare)
	ErrSingularMatrix       = sentinel("singular matrix", gerror.CodeSingularMatrix)
	ErrInvalidExponent      = sentinel("invalid exponent", gerror.CodeInvalidExponent)
	ErrIndexOutOfRange      = sentinel("index out of range", gerror.CodeIndexOutOfRange)
	ErrInvalidShape         = sentinel("invalid shape", gerror.CodeInvalidShape)
	ErrEmptySequence        = sentinel("empty sequence", gerror.CodeEmptySequence)
	ErrInsufficientElements = sentinel("insufficient elements", gerror.CodeInsufficientElements)
	ErrNotFound             = sentinel("not found", gerror.CodeNotFound)
	ErrInvalidConfig        = sentinel("invalid configuration", gerror.CodeInvalidConfig)
	ErrDatabase             = sentinel("database error", gerror.CodeDatabaseError)
	ErrValidationFailed     = sentinel("validation failed", gerror.CodeValidationFailed)
)

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

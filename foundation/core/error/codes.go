// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the gauss libraries. Codes map the arithmetic, parsing, matrix
//              and statistics failure taxonomy onto stable identifiers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Replaced service codes with the numeric failure taxonomy

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Arithmetic
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeDivisionByZero  Code = "DIVISION_BY_ZERO"
	CodeIntegerRequired Code = "INTEGER_REQUIRED"
	CodeInvalidRange    Code = "INVALID_RANGE"
	CodeNegativeValue   Code = "NEGATIVE_VALUE"

	// Parsing and formatting
	CodeNotANumber       Code = "NOT_A_NUMBER"
	CodeParseFailure     Code = "PARSE_FAILURE"
	CodeNoMatchingLocale Code = "NO_MATCHING_LOCALE"
	CodeUnknownLocale    Code = "UNKNOWN_LOCALE"
	CodeInvalidFormat    Code = "INVALID_FORMAT"

	// Matrix
	CodeDimensionMismatch Code = "DIMENSION_MISMATCH"
	CodeNotSquare         Code = "NOT_SQUARE"
	CodeSingularMatrix    Code = "SINGULAR_MATRIX"
	CodeInvalidExponent   Code = "INVALID_EXPONENT"
	CodeIndexOutOfRange   Code = "INDEX_OUT_OF_RANGE"
	CodeInvalidShape      Code = "INVALID_SHAPE"

	// Statistics
	CodeEmptySequence        Code = "EMPTY_SEQUENCE"
	CodeInsufficientElements Code = "INSUFFICIENT_ELEMENTS"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Storage
	CodeDatabaseError Code = "DATABASE_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidArgument, CodeDivisionByZero, CodeIntegerRequired, CodeInvalidRange, CodeNegativeValue,
		CodeNotANumber, CodeParseFailure, CodeNoMatchingLocale, CodeUnknownLocale, CodeInvalidFormat,
		CodeDimensionMismatch, CodeNotSquare, CodeSingularMatrix, CodeInvalidExponent, CodeIndexOutOfRange, CodeInvalidShape,
		CodeEmptySequence, CodeInsufficientElements,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeDatabaseError, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeDivisionByZero, CodeIntegerRequired, CodeInvalidRange, CodeNegativeValue:
		return "arithmetic"
	case CodeNotANumber, CodeParseFailure, CodeNoMatchingLocale, CodeUnknownLocale, CodeInvalidFormat:
		return "parsing"
	case CodeDimensionMismatch, CodeNotSquare, CodeSingularMatrix, CodeInvalidExponent, CodeIndexOutOfRange, CodeInvalidShape:
		return "matrix"
	case CodeEmptySequence, CodeInsufficientElements:
		return "statistics"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeDatabaseError:
		return "storage"
	case CodeValidationFailed, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code.
// Usage errors map to 2, domain failures to 3, infrastructure failures to 4.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "parsing", "validation":
		return 2
	case "arithmetic", "matrix", "statistics":
		return 3
	case "configuration", "storage":
		return 4
	default:
		return 1
	}
}

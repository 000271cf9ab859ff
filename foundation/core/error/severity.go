// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so callers and the CLI can
//              decide how loudly a failure is reported.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for the numeric error codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed number text, out-of-range indexes
	SeverityLow Severity = iota
	
	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: division by zero, incompatible matrix shapes
	SeverityMedium
	
	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unreadable configuration, singular systems in batch runs
	SeverityHigh
	
	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: corrupted workspace database, internal invariant violations
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeDatabaseError:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeSingularMatrix:
		return SeverityHigh

	case CodeDivisionByZero, CodeDimensionMismatch, CodeNotSquare, CodeInvalidExponent,
		CodeEmptySequence, CodeInsufficientElements, CodeNegativeValue:
		return SeverityMedium

	case CodeInvalidInput, CodeInvalidArgument, CodeIntegerRequired, CodeInvalidRange,
		CodeNotANumber, CodeParseFailure, CodeNoMatchingLocale, CodeUnknownLocale,
		CodeInvalidFormat, CodeIndexOutOfRange, CodeInvalidShape, CodeNotFound,
		CodeValidationFailed:
		return SeverityLow

	default:
		return SeverityMedium
	}
}

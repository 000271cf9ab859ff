// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Fluent ErrorBuilder and the constructors every foundation module
//              uses to report failures. Each constructor fills in module and
//              operation details and the taxonomy code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function
// - 2026-10-16 v0.2.0: Constructors for arithmetic, parsing, matrix and statistics failures

package errors

import (
	"errors"
	"fmt"
	"strings"

	gerror "github.com/msto63/gauss/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  gerror.Severity
	code      gerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: gerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity gerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code gerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *gerror.Error {
	if eb.code == "" {
		eb.code = gerror.CodeUnknown
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	op := eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
		op = eb.module + "." + eb.operation
	}

	var err *gerror.Error
	if eb.cause != nil {
		err = gerror.Wrap(eb.cause, eb.message)
	} else {
		err = gerror.New(eb.message)
	}

	return err.
		WithSeverity(eb.severity).
		WithCode(eb.code).
		WithOperation(op).
		WithDetails(eb.details)
}

func build(module, operation string, code gerror.Code, message string) *ErrorBuilder {
	return NewErrorBuilder(module).Operation(operation).Code(code).Message(message)
}

// InvalidArgument reports an argument outside the domain of an operation
func InvalidArgument(module, operation string, input interface{}, reason string) *gerror.Error {
	return build(module, operation, gerror.CodeInvalidArgument, "invalid argument: "+reason).
		Detail("input", input).
		Severity(gerror.SeverityLow).
		Build()
}

// DivisionByZero reports an exact zero divisor
func DivisionByZero(module, operation string) *gerror.Error {
	return build(module, operation, gerror.CodeDivisionByZero, "division by zero").Build()
}

// IntegerRequired reports a fractional operand where an integer is needed
func IntegerRequired(module, operation string, input interface{}) *gerror.Error {
	return build(module, operation, gerror.CodeIntegerRequired, "integer required").
		Detail("input", input).
		Severity(gerror.SeverityLow).
		Build()
}

// InvalidRange reports an operand pair outside 0 <= k <= n
func InvalidRange(module, operation string, n, k interface{}) *gerror.Error {
	return build(module, operation, gerror.CodeInvalidRange, fmt.Sprintf("invalid range: k=%v, n=%v", k, n)).
		Detail("n", n).
		Detail("k", k).
		Severity(gerror.SeverityLow).
		Build()
}

// NegativeValue reports a negative operand where none is allowed
func NegativeValue(module, operation string, input interface{}) *gerror.Error {
	return build(module, operation, gerror.CodeNegativeValue, "negative value").
		Detail("input", input).
		Build()
}

// NotANumber reports text that is blank or does not match the number grammar
func NotANumber(input, locale string) *gerror.Error {
	return build(ModuleI18n, "parse", gerror.CodeNotANumber, fmt.Sprintf("not a number: %q", input)).
		Detail("input", input).
		Detail("locale", locale).
		Severity(gerror.SeverityLow).
		Build()
}

// ParseFailure reports malformed structured text such as matrix grammar
func ParseFailure(module, operation, input, reason string) *gerror.Error {
	return build(module, operation, gerror.CodeParseFailure, "parse failure: "+reason).
		Detail("input", input).
		Severity(gerror.SeverityLow).
		Build()
}

// NoMatchingLocale reports that auto detection found no consistent locale
func NoMatchingLocale(input string, tried int) *gerror.Error {
	return build(ModuleI18n, "detect", gerror.CodeNoMatchingLocale, fmt.Sprintf("no matching locale for %q", input)).
		Detail("input", input).
		Detail("tried", tried).
		Build()
}

// UnknownLocale reports a locale tag the registry does not know
func UnknownLocale(tag string) *gerror.Error {
	return build(ModuleI18n, "lookup", gerror.CodeUnknownLocale, fmt.Sprintf("unknown locale %q", tag)).
		Detail("locale", tag).
		Build()
}

// InvalidFormat reports a value that does not have the expected shape
func InvalidFormat(module string, input interface{}, expectedFormat string) *gerror.Error {
	return build(module, "format", gerror.CodeInvalidFormat, "invalid format, expected "+expectedFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(gerror.SeverityLow).
		Build()
}

// DimensionMismatch reports incompatible operand shapes
func DimensionMismatch(operation string, left, right string) *gerror.Error {
	return build(ModuleLinalgx, operation, gerror.CodeDimensionMismatch,
		fmt.Sprintf("dimension mismatch: %s vs %s", left, right)).
		Detail("left", left).
		Detail("right", right).
		Build()
}

// NotSquare reports a non-square matrix where a square one is required
func NotSquare(operation string, rows, cols int) *gerror.Error {
	return build(ModuleLinalgx, operation, gerror.CodeNotSquare, fmt.Sprintf("matrix %dx%d is not square", rows, cols)).
		Detail("rows", rows).
		Detail("cols", cols).
		Build()
}

// SingularMatrix reports a zero determinant or zero pivot
func SingularMatrix(operation string) *gerror.Error {
	return build(ModuleLinalgx, operation, gerror.CodeSingularMatrix, "singular matrix").Build()
}

// InvalidExponent reports a negative matrix power
func InvalidExponent(operation string, exponent int) *gerror.Error {
	return build(ModuleLinalgx, operation, gerror.CodeInvalidExponent, fmt.Sprintf("invalid exponent %d", exponent)).
		Detail("exponent", exponent).
		Build()
}

// IndexOutOfRange reports a cell index outside the matrix
func IndexOutOfRange(operation string, row, col, rows, cols int) *gerror.Error {
	return build(ModuleLinalgx, operation, gerror.CodeIndexOutOfRange,
		fmt.Sprintf("index (%d,%d) out of range for %dx%d", row, col, rows, cols)).
		Detail("row", row).
		Detail("col", col).
		Build()
}

// InvalidShape reports negative or oversized matrix dimensions
func InvalidShape(operation string, rows, cols, max int) *gerror.Error {
	return build(ModuleLinalgx, operation, gerror.CodeInvalidShape,
		fmt.Sprintf("invalid shape %dx%d (max %d)", rows, cols, max)).
		Detail("rows", rows).
		Detail("cols", cols).
		Build()
}

// EmptySequence reports an aggregate over no values
func EmptySequence(module, operation string) *gerror.Error {
	return build(module, operation, gerror.CodeEmptySequence, "empty sequence").Build()
}

// InsufficientElements reports too few values for an aggregate
func InsufficientElements(module, operation string, have, need int) *gerror.Error {
	return build(module, operation, gerror.CodeInsufficientElements,
		fmt.Sprintf("insufficient elements: have %d, need %d", have, need)).
		Detail("have", have).
		Detail("need", need).
		Build()
}

// ValidationFailed reports input rejected by a validator chain
func ValidationFailed(module, operation, field string, input interface{}, messages []string) *gerror.Error {
	return build(module, operation, gerror.CodeValidationFailed,
		fmt.Sprintf("invalid %s: %s", field, strings.Join(messages, "; "))).
		Detail("field", field).
		Detail("input", input).
		Detail("messages", messages).
		Severity(gerror.SeverityLow).
		Build()
}

// NotFound reports a missing named entity
func NotFound(module, operation string, identifier interface{}) *gerror.Error {
	return build(module, operation, gerror.CodeNotFound, fmt.Sprintf("%v not found", identifier)).
		Detail("identifier", identifier).
		Build()
}

// InvalidConfig reports a configuration value that fails validation
func InvalidConfig(field string, value interface{}, reason string) *gerror.Error {
	return build(ModuleConfig, "validate", gerror.CodeInvalidConfig, fmt.Sprintf("invalid %s: %s", field, reason)).
		Detail("field", field).
		Detail("value", value).
		Build()
}

// OperationFailed wraps an infrastructure failure with module context
func OperationFailed(module, operation string, code gerror.Code, cause error) *gerror.Error {
	return build(module, operation, code, fmt.Sprintf("%s.%s failed", module, operation)).
		Cause(cause).
		Build()
}

// ExtractDetails returns the details of the outermost structured error
func ExtractDetails(err error) map[string]interface{} {
	var e *gerror.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractModule returns the module recorded by the constructors
func ExtractModule(err error) string {
	if m, ok := ExtractDetails(err)["module"].(string); ok {
		return m
	}
	return ""
}

// ExtractOperation returns the operation recorded by the constructors
func ExtractOperation(err error) string {
	if op, ok := ExtractDetails(err)["operation"].(string); ok {
		return op
	}
	return ""
}

// File: interfaces.go
// Title: Core Validation Interfaces and Types
// Description: Defines the Validator interface, the structured result types
//              and their conversion into foundation errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework interfaces
// - 2026-10-17 v0.2.0: Results convert to module-scoped VALIDATION_FAILED errors

package validation

import (
	"fmt"
	"strings"

	"github.com/msto63/gauss/foundation/core/errors"
)

// Standard validation error codes
const (
	CodeRequired = "VALIDATION_REQUIRED" // value is missing or blank
	CodeFormat   = "VALIDATION_FORMAT"   // value does not decode
	CodeLength   = "VALIDATION_LENGTH"   // string length out of bounds
	CodeType     = "VALIDATION_TYPE"     // value has the wrong Go type
	CodePattern  = "VALIDATION_PATTERN"  // regular expression mismatch
	CodeOneOf    = "VALIDATION_ONE_OF"   // value outside an allowed set
	CodeLocale   = "VALIDATION_LOCALE"   // unknown or malformed locale tag
)

// Validator checks one value
type Validator interface {
	Validate(value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation failure
type ValidationError struct {
	Code    string      `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Code: code, Message: message}},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Message: message})
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts a failed result into a VALIDATION_FAILED error of module
// and operation. The field and value of the first failure become details.
// Returns nil if validation passed.
func (r ValidationResult) ToError(module, operation string) error {
	if r.Valid {
		return nil
	}
	first := ValidationError{Field: "value"}
	if len(r.Errors) > 0 {
		first = r.Errors[0]
	}
	field := first.Field
	if field == "" {
		field = "value"
	}
	messages := r.ErrorMessages()
	if len(messages) == 0 {
		messages = []string{"validation failed"}
	}
	return errors.ValidationFailed(module, operation, field, first.Value, messages)
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, e.String())
	}
	return fmt.Sprintf("ValidationResult{valid: false, errors: [%s]}", strings.Join(parts, ", "))
}

// String returns a human-readable representation of a validation error
func (e ValidationError) String() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Code)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}

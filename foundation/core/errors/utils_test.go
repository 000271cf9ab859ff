// File: utils_test.go
// Title: Tests for shared error utilities
// Description: Verifies builders, constructors and sentinel matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial tests
// - 2026-10-16 v0.2.0: Sentinel matching tests

package errors

import (
	"errors"
	"fmt"
	"testing"

	gerror "github.com/msto63/gauss/foundation/core/error"
)

func TestErrorBuilder(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := NewErrorBuilder(ModuleWorkspace).
		Operation("save").
		Messagef("cannot save %s", "m1").
		Cause(cause).
		Code(gerror.CodeDatabaseError).
		Detail("name", "m1").
		Build()

	if err.Code() != gerror.CodeDatabaseError {
		t.Errorf("Code() = %s, want DATABASE_ERROR", err.Code())
	}
	if err.Operation() != "workspace.save" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if !errors.Is(err, cause) {
		t.Error("builder error should wrap its cause")
	}
	if err.Details()["name"] != "m1" {
		t.Error("missing detail")
	}
	if err.Severity() != gerror.SeverityCritical {
		t.Errorf("Severity() = %s, want CRITICAL", err.Severity())
	}
}

func TestErrorBuilderDefaultMessage(t *testing.T) {
	err := NewErrorBuilder(ModuleStatx).Operation("mean").Build()
	if err.Message() != "statx.mean failed" {
		t.Errorf("Message() = %q", err.Message())
	}
	if err.Code() != gerror.CodeUnknown {
		t.Errorf("Code() = %s", err.Code())
	}
}

func TestConstructorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		module   string
	}{
		{"division", DivisionByZero(ModuleMathx, "div"), ErrDivisionByZero, ModuleMathx},
		{"integer", IntegerRequired(ModuleMathx, "gcd", "1.5"), ErrIntegerRequired, ModuleMathx},
		{"range", InvalidRange(ModuleMathx, "combination", 3, 5), ErrInvalidRange, ModuleMathx},
		{"negative", NegativeValue(ModuleMathx, "sqrt", "-4"), ErrNegativeValue, ModuleMathx},
		{"nan", NotANumber("abc", "en-US"), ErrNotANumber, ModuleI18n},
		{"nomatch", NoMatchingLocale("1,2,3", 40), ErrNoMatchingLocale, ModuleI18n},
		{"unknown locale", UnknownLocale("xx-XX"), ErrUnknownLocale, ModuleI18n},
		{"dims", DimensionMismatch("add", "2x2", "3x3"), ErrDimensionMismatch, ModuleLinalgx},
		{"square", NotSquare("determinant", 2, 3), ErrNotSquare, ModuleLinalgx},
		{"singular", SingularMatrix("inverse"), ErrSingularMatrix, ModuleLinalgx},
		{"exponent", InvalidExponent("power", -1), ErrInvalidExponent, ModuleLinalgx},
		{"index", IndexOutOfRange("at", 5, 0, 2, 2), ErrIndexOutOfRange, ModuleLinalgx},
		{"shape", InvalidShape("zero", -1, 2, 4096), ErrInvalidShape, ModuleLinalgx},
		{"empty", EmptySequence(ModuleStatx, "mean"), ErrEmptySequence, ModuleStatx},
		{"insufficient", InsufficientElements(ModuleStatx, "sample_variance", 1, 2), ErrInsufficientElements, ModuleStatx},
		{"config", InvalidConfig("precision", 0, "must be positive"), ErrInvalidConfig, ModuleConfig},
		{"validation", ValidationFailed(ModuleWorkspace, "validate", "name", "1x", []string{"bad"}), ErrValidationFailed, ModuleWorkspace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false", tt.err, tt.sentinel)
			}
			if errors.Is(tt.err, ErrParseFailure) {
				t.Errorf("%v should not match ErrParseFailure", tt.err)
			}
			if got := ExtractModule(tt.err); got != tt.module {
				t.Errorf("ExtractModule() = %q, want %q", got, tt.module)
			}
			if !IsModuleError(tt.err, tt.module) {
				t.Error("IsModuleError() = false")
			}
		})
	}
}

func TestWrappedConstructorStillMatches(t *testing.T) {
	err := fmt.Errorf("evaluating cell: %w", DivisionByZero(ModuleMathx, "div"))
	if !errors.Is(err, ErrDivisionByZero) {
		t.Error("wrapped error lost its kind")
	}
	if ExtractOperation(err) != "div" {
		t.Errorf("ExtractOperation() = %q", ExtractOperation(err))
	}
}

func TestExtractFromPlainError(t *testing.T) {
	err := fmt.Errorf("plain")
	if ExtractModule(err) != "" || ExtractOperation(err) != "" || ExtractDetails(err) != nil {
		t.Error("plain errors carry no structured details")
	}
}

// File: validation_test.go
// Title: Validation Framework Tests
// Description: Tests for results, chains and error conversion. Concrete
//              validators are tested in utils/validationx.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Chain field attribution and ToError

package validation

import (
	stderrors "errors"
	"strings"
	"testing"

	gerror "github.com/msto63/gauss/foundation/core/error"
	"github.com/msto63/gauss/foundation/core/errors"
)

func nonEmpty(value interface{}) ValidationResult {
	if s, _ := value.(string); s == "" {
		return NewValidationError(CodeRequired, "value is required")
	}
	return NewValidationResult()
}

func short(value interface{}) ValidationResult {
	if s, _ := value.(string); len(s) > 3 {
		return NewValidationError(CodeLength, "must be at most 3 characters long")
	}
	return NewValidationResult()
}

func noDigits(value interface{}) ValidationResult {
	if s, _ := value.(string); strings.ContainsAny(s, "0123456789") {
		return NewValidationError(CodePattern, "must not contain digits")
	}
	return NewValidationResult()
}

func TestValidationResult(t *testing.T) {
	ok := NewValidationResult()
	if !ok.Valid || ok.FirstError() != nil || ok.ToError("m", "op") != nil {
		t.Errorf("successful result = %v", ok)
	}

	r := NewValidationResult()
	r.AddError(CodeRequired, "missing").AddError(CodeLength, "too long")
	if r.Valid || len(r.Errors) != 2 {
		t.Fatalf("AddError() result = %v", r)
	}
	if !r.HasError(CodeLength) || r.HasError(CodePattern) {
		t.Error("HasError() returned wrong result")
	}
	if got := r.FirstError().Code; got != CodeRequired {
		t.Errorf("FirstError().Code = %s", got)
	}
	if got := strings.Join(r.ErrorMessages(), "|"); got != "missing|too long" {
		t.Errorf("ErrorMessages() = %s", got)
	}
}

func TestCombine(t *testing.T) {
	got := Combine(
		NewValidationResult(),
		NewValidationError(CodeRequired, "a"),
		NewValidationError(CodeLength, "b"),
	)
	if got.Valid || len(got.Errors) != 2 {
		t.Errorf("Combine() = %v", got)
	}
	if !Combine().Valid {
		t.Error("Combine() of nothing should be valid")
	}
}

func TestValidatorChain(t *testing.T) {
	chain := NewValidatorChain("name").
		AddFunc(nonEmpty).
		Add(ValidatorFunc(short), ValidatorFunc(noDigits))

	if chain.Name() != "name" || chain.Length() != 3 {
		t.Errorf("chain = %s", chain)
	}
	if r := chain.Validate("abc"); !r.Valid {
		t.Errorf("Validate(abc) = %v", r)
	}

	r := chain.Validate("abcd1")
	if r.Valid || len(r.Errors) != 2 {
		t.Fatalf("Validate(abcd1) = %v", r)
	}
	for _, e := range r.Errors {
		if e.Field != "name" || e.Value != "abcd1" {
			t.Errorf("error not attributed to chain: %v", e)
		}
	}

	r = chain.StopOnFirstError(true).Validate("abcd1")
	if len(r.Errors) != 1 || r.Errors[0].Code != CodeLength {
		t.Errorf("StopOnFirstError Validate(abcd1) = %v", r)
	}
}

func TestToError(t *testing.T) {
	r := NewValidatorChain("name").AddFunc(short).AddFunc(noDigits).Validate("x1234")
	err := r.ToError("workspace", "validate")
	if err == nil {
		t.Fatal("ToError() = nil for failed result")
	}
	if !stderrors.Is(err, errors.ErrValidationFailed) {
		t.Errorf("ToError() = %v, want VALIDATION_FAILED", err)
	}
	if got := gerror.GetCode(err); got.ExitCode() != 2 {
		t.Errorf("exit code = %d", got.ExitCode())
	}
	msg := err.Error()
	if !strings.Contains(msg, "invalid name") || !strings.Contains(msg, "must not contain digits") {
		t.Errorf("ToError() message = %q", msg)
	}
	if errors.ExtractModule(err) != "workspace" {
		t.Errorf("module = %q", errors.ExtractModule(err))
	}
}

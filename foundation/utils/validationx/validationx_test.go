// File: validationx_test.go
// Title: Concrete Validator Tests
// Description: Table tests for every validator.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Decimal and locale validators

package validationx

import (
	"testing"

	"github.com/msto63/gauss/foundation/core/validation"
)

type kind string

func (k kind) String() string { return string(k) }

func TestValidators(t *testing.T) {
	testCases := []struct {
		name      string
		validator validation.Validator
		value     interface{}
		wantCode  string
	}{
		{"required ok", Required, "x", ""},
		{"required blank", Required, "  ", validation.CodeRequired},
		{"required nil", Required, nil, validation.CodeRequired},
		{"required wrong type", Required, 42, validation.CodeType},
		{"optional blank", Optional(MinLength(3)), "", ""},
		{"optional runs", Optional(MinLength(3)), "ab", validation.CodeLength},
		{"min length ok", MinLength(2), "äb", ""},
		{"min length short", MinLength(3), "äb", validation.CodeLength},
		{"max length ok", MaxLength(3), "äöü", ""},
		{"max length long", MaxLength(3), "abcd", validation.CodeLength},
		{"pattern ok", Pattern(`^[a-z]+$`, "lower case"), "abc", ""},
		{"pattern mismatch", Pattern(`^[a-z]+$`, "lower case"), "aBc", validation.CodePattern},
		{"pattern invalid", Pattern(`(`, "broken"), "abc", validation.CodePattern},
		{"one of ok", OneOf("value", "matrix"), "matrix", ""},
		{"one of stringer", OneOf("value", "matrix"), kind("value"), ""},
		{"one of miss", OneOf("value", "matrix"), "tensor", validation.CodeOneOf},
		{"decimal ok", Decimal, "-1234.5", ""},
		{"decimal grouped", Decimal, "1,234.5", validation.CodeFormat},
		{"decimal comma", Decimal, "1,5", validation.CodeFormat},
		{"locale ok", Locale, "de-DE", ""},
		{"locale underscore", Locale, "de_de", ""},
		{"locale bad", Locale, "??", validation.CodeLocale},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.validator.Validate(tc.value)
			if tc.wantCode == "" {
				if !r.Valid {
					t.Errorf("Validate(%v) = %v, want valid", tc.value, r)
				}
				return
			}
			if r.Valid || !r.HasError(tc.wantCode) {
				t.Errorf("Validate(%v) = %v, want %s", tc.value, r, tc.wantCode)
			}
		})
	}
}

func TestPatternMessage(t *testing.T) {
	r := Pattern(`^\d+$`, "digits only").Validate("x")
	if got := r.FirstError().Message; got != "must be digits only" {
		t.Errorf("message = %q", got)
	}
}

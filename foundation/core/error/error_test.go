// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, code matching, severity and
//              JSON rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("boom")

	if err.Error() != "boom" {
		t.Errorf("Error() = %q, want %q", err.Error(), "boom")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{name: "nil error", err: nil, message: "ctx", wantNil: true},
		{name: "standard error", err: errors.New("low"), message: "high", wantMsg: "high: low", wantCode: CodeUnknown},
		{
			name:     "structured error keeps code",
			err:      New("zero divisor").WithCode(CodeDivisionByZero),
			message:  "mean",
			wantMsg:  "mean: zero divisor",
			wantCode: CodeDivisionByZero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("Wrap(nil) = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause")
			}
		})
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = New("root").WithCode(CodeParseFailure)
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	if depth := chainDepth(err); depth > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want <= %d", depth, MaxErrorChainDepth+1)
	}
	if GetCode(err) != CodeParseFailure {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeParseFailure)
	}
}

func TestIsMatchesByCode(t *testing.T) {
	sentinel := New("not square").WithCode(CodeNotSquare)
	fresh := New("matrix 2x3 is not square").WithCode(CodeNotSquare)
	other := New("singular").WithCode(CodeSingularMatrix)

	if !errors.Is(fresh, sentinel) {
		t.Error("errors with equal codes should match")
	}
	if errors.Is(other, sentinel) {
		t.Error("errors with different codes should not match")
	}
	if errors.Is(New("a"), New("a")) {
		t.Error("unknown codes should never match")
	}
	if !errors.Is(fmt.Errorf("outer: %w", fresh), sentinel) {
		t.Error("match should survive fmt wrapping")
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeNotANumber, SeverityLow},
		{CodeDivisionByZero, SeverityMedium},
		{CodeSingularMatrix, SeverityHigh},
		{CodeDatabaseError, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("severity = %v, want %v", got, tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeNotANumber)
	if explicit.Severity() != SeverityCritical {
		t.Error("explicit severity must not be overridden by WithCode")
	}
}

func TestHasCode(t *testing.T) {
	inner := New("bad cell").WithCode(CodeParseFailure)
	outer := fmt.Errorf("matrix: %w", inner)

	if !HasCode(outer, CodeParseFailure) {
		t.Error("HasCode should look through the chain")
	}
	if HasCode(outer, CodeNotSquare) {
		t.Error("HasCode reported an absent code")
	}
	if HasCode(errors.New("plain"), CodeParseFailure) {
		t.Error("plain errors carry no code")
	}
}

func TestDetailsAreCopied(t *testing.T) {
	err := New("x").WithDetail("k", 1).WithDetails(map[string]interface{}{"m": "n"})
	d := err.Details()
	d["k"] = 2

	if err.Details()["k"] != 1 {
		t.Error("Details() must return a copy")
	}
	if err.Details()["m"] != "n" {
		t.Error("WithDetails lost a value")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "outer").
		WithCode(CodeInvalidRange).
		WithOperation("mathx.Combination").
		WithDetail("k", 7)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("unmarshal: %v", jerr)
	}
	if decoded["code"] != string(CodeInvalidRange) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "mathx.Combination" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestStringIsSorted(t *testing.T) {
	s := New("x").WithDetail("b", 2).WithDetail("a", 1).String()
	if !strings.Contains(s, "Details: {a=1, b=2}") {
		t.Errorf("String() = %q", s)
	}
}

func TestCodeCategoryAndExitCode(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeNotANumber, "parsing", 2},
		{CodeDivisionByZero, "arithmetic", 3},
		{CodeNotSquare, "matrix", 3},
		{CodeEmptySequence, "statistics", 3},
		{CodeInvalidConfig, "configuration", 4},
		{CodeUnknown, "generic", 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if !tt.code.IsValid() {
				t.Errorf("%s should be valid", tt.code)
			}
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.ExitCode(); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
		})
	}

	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
}

func TestSeverityString(t *testing.T) {
	tests := map[Severity]string{
		SeverityLow:      "low",
		SeverityMedium:   "medium",
		SeverityHigh:     "high",
		SeverityCritical: "critical",
		Severity(42):     "unknown",
	}
	for sev, want := range tests {
		if sev.String() != want {
			t.Errorf("Severity(%d).String() = %q, want %q", sev, sev.String(), want)
		}
	}
	if !SeverityHigh.ShouldAlert() || SeverityMedium.ShouldAlert() {
		t.Error("ShouldAlert threshold is SeverityHigh")
	}
}

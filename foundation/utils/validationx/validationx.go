// File: validationx.go
// Title: Concrete Validators
// Description: Reusable validators built on the core validation framework:
//              presence, length, pattern, allowed values, canonical decimals
//              and locale tags.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive validators
// - 2026-10-17 v0.2.0: Decimal and locale validators, reduced general set

package validationx

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/msto63/gauss/foundation/core/i18n"
	"github.com/msto63/gauss/foundation/core/validation"
	"github.com/msto63/gauss/foundation/utils/mathx"
)

var (
	regexCache = make(map[string]*regexp.Regexp)
	regexMu    sync.RWMutex
)

// getCompiledRegex returns a cached compiled regex or compiles and caches a new one
func getCompiledRegex(pattern string) (*regexp.Regexp, error) {
	regexMu.RLock()
	if regex, exists := regexCache[pattern]; exists {
		regexMu.RUnlock()
		return regex, nil
	}
	regexMu.RUnlock()

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	regexMu.Lock()
	regexCache[pattern] = regex
	regexMu.Unlock()

	return regex, nil
}

func asString(value interface{}) (string, validation.ValidationResult, bool) {
	switch v := value.(type) {
	case string:
		return v, validation.NewValidationResult(), true
	case fmt.Stringer:
		return v.String(), validation.NewValidationResult(), true
	}
	return "", validation.NewValidationError(validation.CodeType, "value must be a string"), false
}

// Required validates that a string is not blank
var Required validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	if value == nil {
		return validation.NewValidationError(validation.CodeRequired, "value is required")
	}
	s, res, ok := asString(value)
	if !ok {
		return res
	}
	if strings.TrimSpace(s) == "" {
		return validation.NewValidationError(validation.CodeRequired, "value is required")
	}
	return validation.NewValidationResult()
}

// Optional runs validator only when the value is a non-blank string
func Optional(validator validation.Validator) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		if s, _, ok := asString(value); value == nil || ok && strings.TrimSpace(s) == "" {
			return validation.NewValidationResult()
		}
		return validator.Validate(value)
	}
}

// MinLength validates minimum string length in runes
func MinLength(min int) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		s, res, ok := asString(value)
		if !ok {
			return res
		}
		if utf8.RuneCountInString(s) < min {
			return validation.NewValidationError(validation.CodeLength, fmt.Sprintf("must be at least %d characters long", min))
		}
		return validation.NewValidationResult()
	}
}

// MaxLength validates maximum string length in runes
func MaxLength(max int) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		s, res, ok := asString(value)
		if !ok {
			return res
		}
		if utf8.RuneCountInString(s) > max {
			return validation.NewValidationError(validation.CodeLength, fmt.Sprintf("must be at most %d characters long", max))
		}
		return validation.NewValidationResult()
	}
}

// Pattern validates that a string matches a regular expression. The
// description is used in the failure message.
func Pattern(pattern, description string) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		s, res, ok := asString(value)
		if !ok {
			return res
		}
		regex, err := getCompiledRegex(pattern)
		if err != nil {
			return validation.NewValidationError(validation.CodePattern, fmt.Sprintf("invalid pattern: %v", err))
		}
		if !regex.MatchString(s) {
			return validation.NewValidationError(validation.CodePattern, "must be "+description)
		}
		return validation.NewValidationResult()
	}
}

// OneOf validates that a string is one of the allowed values
func OneOf(allowed ...string) validation.ValidatorFunc {
	return func(value interface{}) validation.ValidationResult {
		s, res, ok := asString(value)
		if !ok {
			return res
		}
		for _, a := range allowed {
			if s == a {
				return validation.NewValidationResult()
			}
		}
		return validation.NewValidationError(validation.CodeOneOf,
			fmt.Sprintf("must be one of %s", strings.Join(allowed, ", ")))
	}
}

// Decimal validates that a string is a canonical decimal: optional sign,
// digits, at most one '.' and no grouping.
var Decimal validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	s, res, ok := asString(value)
	if !ok {
		return res
	}
	if _, err := mathx.NewDecimal(s); err != nil {
		return validation.NewValidationError(validation.CodeFormat, "must be a canonical decimal such as -1234.5")
	}
	return validation.NewValidationResult()
}

// Locale validates that a string is a well formed BCP 47 locale tag
var Locale validation.ValidatorFunc = func(value interface{}) validation.ValidationResult {
	s, res, ok := asString(value)
	if !ok {
		return res
	}
	if i18n.NormalizeLocale(s) == "" {
		return validation.NewValidationError(validation.CodeLocale, "must be a locale tag such as de-DE")
	}
	return validation.NewValidationResult()
}

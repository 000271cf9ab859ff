// File: i18n.go
// Title: Package Level Number Parsing and Formatting
// Description: Convenience functions operating on the default registry.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with translation manager
// - 2026-10-16 v0.2.0: Number parsing and formatting on the default registry

package i18n

import (
	"github.com/msto63/gauss/foundation/utils/mathx"
)

// Parse reads text in the locale named by tag using the default registry
func Parse(text, tag string) (mathx.Decimal, error) {
	return Default().Parse(text, tag)
}

// ParseAutoDetect reads text of unknown locale, trying the default registry
// in DefaultDetectionOrder.
func ParseAutoDetect(text string) (mathx.Decimal, error) {
	d, err := NewDetector(Default())
	if err != nil {
		return mathx.Decimal{}, err
	}
	return d.Parse(text)
}

// DefaultDetectionOrder returns the tags tried by ParseAutoDetect
func DefaultDetectionOrder() []string {
	return Default().Tags()
}

// Format renders v in the locale named by tag using the default registry.
// An empty tag means the value's own locale.
func Format(v mathx.Decimal, tag string) (string, error) {
	return Default().Format(v, tag)
}

// FormatFixed renders v with exactly places fraction digits
func FormatFixed(v mathx.Decimal, tag string, places int) (string, error) {
	return Default().FormatFixed(v, tag, places)
}

// Lookup finds a locale in the default registry
func Lookup(tag string) (Locale, error) {
	return Default().Lookup(tag)
}

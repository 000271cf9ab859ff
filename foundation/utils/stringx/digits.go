// File: digits.go
// Title: Digit String Helpers
// Description: Helpers for ASCII digit strings: validation, zero trimming and
//              digit grouping. Decimal values and locale formatting are built
//              on these.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import "strings"

// IsDigits reports whether s is non-empty and consists of ASCII digits only.
// Other Unicode decimal digits are rejected.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// TrimLeadingZeros removes leading zeros, returning "0" when nothing remains
func TrimLeadingZeros(s string) string {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// TrimTrailingZeros removes trailing zeros, returning "0" when nothing remains
func TrimTrailingZeros(s string) string {
	s = strings.TrimRight(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// GroupDigits inserts sep between every size digits counted from the right.
// A size below one or an empty separator returns digits unchanged.
//
//	GroupDigits("1234567", ",", 3) // "1,234,567"
func GroupDigits(digits, sep string, size int) string {
	if size < 1 || sep == "" || len(digits) <= size {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + (len(digits)/size)*len(sep))

	head := len(digits) % size
	if head == 0 {
		head = size
	}
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += size {
		b.WriteString(sep)
		b.WriteString(digits[i : i+size])
	}
	return b.String()
}

// ValidGrouping reports whether groups, split from an integer part by its
// grouping separator, follow the every-size-digits convention: the first
// group has 1..size digits and all others exactly size.
func ValidGrouping(groups []string, size int) bool {
	if len(groups) == 0 {
		return false
	}
	for i, g := range groups {
		if !IsDigits(g) {
			return false
		}
		if i == 0 && len(g) > size {
			return false
		}
		if i > 0 && len(g) != size {
			return false
		}
	}
	return true
}

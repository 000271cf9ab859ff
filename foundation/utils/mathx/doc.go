// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides exact decimal numbers with a digit string
//              representation, precision contexts and the arithmetic, power,
//              root and number theory operations the rest of gauss builds on.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-16 v0.3.0: Digit string decimals, precision contexts, apd backed transcendental functions

// Package mathx provides exact decimal arithmetic.
//
// Package: mathx
// Title: Exact Decimal Numbers and Arithmetic
// Description: A Decimal is a sign flag plus two ASCII digit strings (integer and
//              fraction part) together with a locale tag, a precision context and
//              an angle mode. Addition, subtraction, multiplication, comparison and
//              non-negative integer powers are exact. Division, fractional powers,
//              roots and logarithms round to the caller's Context.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Overview
//
// Values are created from canonical strings or integers:
//
//	a := mathx.MustNewDecimal("0.1")
//	b := mathx.MustNewDecimal("0.2")
//	fmt.Println(a.Add(b)) // 0.3
//
// Canonical strings use '.' as decimal separator and no grouping. Locale aware
// parsing and formatting lives in package i18n; a Decimal only remembers the
// locale tag it was parsed with.
//
// Precision Contexts
//
// Operations that cannot be exact take a Context. The zero Context is the
// default of 34 significant digits with banker's rounding:
//
//	q, err := mathx.One().Divide(mathx.NewDecimalFromInt(3), mathx.Context{Precision: 10})
//	// q = 0.3333333333
//
// Multi-step operations (roots, fractional powers, logarithms) run with nine
// guard digits and round once at the end.
//
// Error Handling
//
// Failures are *error.Error values built by foundation/core/errors and match
// the package sentinels through errors.Is:
//
//	_, err := x.Divide(mathx.Zero(), ctx)
//	if errors.Is(err, fe.ErrDivisionByZero) {
//	    // handle
//	}
package mathx

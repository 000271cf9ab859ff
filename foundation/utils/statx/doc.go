// Package statx computes descriptive statistics over sequences of decimals.
//
// Package: statx
// Title: Statistics over Decimal Sequences
// Description: Sum, mean, median, modes, population and sample variance,
//              standard deviation, geometric and harmonic means, minimum,
//              maximum and range for []mathx.Decimal.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// # Precision
//
// Sums, products, minimum, maximum and range are exact. Operations that
// divide or take roots accept a mathx.Context and round once to it;
// intermediate reciprocals and variances carry mathx.GuardDigits extra
// digits. Results take the locale and context of the first element.
//
// # Errors
//
// An empty sequence fails with EMPTY_SEQUENCE for every operation. The
// variance family needs two values (INSUFFICIENT_ELEMENTS), the geometric
// mean rejects negative values (NEGATIVE_VALUE) and the harmonic mean
// rejects zeros (DIVISION_BY_ZERO).
//
//	values := []mathx.Decimal{mathx.MustNewDecimal("2"), mathx.MustNewDecimal("8")}
//	g, err := statx.GeometricMean(values, mathx.DefaultContext()) // 4
package statx

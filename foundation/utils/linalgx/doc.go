// Package linalgx implements matrices of exact decimals.
//
// Package: linalgx
// Title: Decimal Matrix Engine
// Description: Construction, parsing, formatting and the usual linear algebra
//              of matrices whose cells are mathx.Decimal values: addition,
//              products, transpose, powers, determinant, adjugate and inverse.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
//
// # Construction
//
// Matrices are created zero-filled with New, copied from a grid with
// FromGrid, read from text with Parse or built as Identity. All of them take
// functional options:
//
//	m, err := linalgx.Parse("1,5|2;3|4", linalgx.WithLocale("de-DE"))
//	inv, err := m.Inverse()
//
// WithContext sets the precision of divisions, WithCofactorLimit the size up
// to which determinants and inverses are exact, WithRegistry the locale table
// and WithLogger a logger that records algorithm choices at debug level.
//
// # Text form
//
// Rows are separated by ";" and cells by ",". Locales whose decimal separator
// is "," use "|" between cells. String renders the canonical form; Format
// renders the form of any registered locale.
//
// # Exactness
//
// Add, Subtract, ScalarMultiply, Multiply, Power, Trace and Determinant are
// exact. Up to the cofactor limit the determinant comes from cofactor
// expansion; beyond it from fraction-free elimination on the cells scaled to
// integers, so a singular matrix is detected exactly. Inverse rounds each
// cell once, to the matrix context.
//
// # Errors
//
// Shape errors are DIMENSION_MISMATCH, NOT_SQUARE and INVALID_SHAPE; a zero
// determinant is SINGULAR_MATRIX; negative powers are INVALID_EXPONENT; bad
// indices are INDEX_OUT_OF_RANGE; malformed text is PARSE_FAILURE.
//
// A Matrix is not safe for concurrent mutation through Set.
package linalgx

// Package slicex provides generic helpers for value sequences.
//
// Package: slicex
// Title: Generic Sequence Helpers
// Description: Mapping, reduction, stable ordering, frequency counting and grid
//              construction over slices of any element type. The numeric
//              packages use it for decimal sequences and matrix cells.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2025-01-26 v0.1.1: Enhanced documentation
// - 2026-10-17 v0.2.0: Reduced to the helpers the numeric packages need
//
// # Overview
//
// All functions are pure: inputs are never modified and results are fresh
// slices. Functions taking a callback treat a nil callback as "no result"
// rather than panicking.
//
//   - Map, MapErr: transform elements, MapErr stops at the first error
//   - Reduce, Filter, Some, Every, IndexFunc: folding and searching
//   - Clone, SortFunc, MinFunc, MaxFunc: copies and ordering by a compare func
//   - Frequencies: occurrence counts in first seen order
//   - Grid: build a rectangular grid cell by cell
//   - Join: render a slice with a custom element formatter
//
// # Example
//
//	cells, err := slicex.MapErr(fields, func(s string) (mathx.Decimal, error) {
//		return reg.Parse(s, "de-DE")
//	})
//	sorted := slicex.SortFunc(cells, mathx.Decimal.Compare)
package slicex

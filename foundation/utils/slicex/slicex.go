// File: slicex.go
// Title: Generic Sequence Helpers
// Description: Small generic helpers for the value sequences handled by statx,
//              linalgx and the command line: mapping with and without errors,
//              reduction, stable ordering, frequency counting and grid building.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-17 v0.2.0: Reduced to the helpers used by the numeric packages,
//                       added MapErr, Grid, Frequencies and stable SortFunc

package slicex

import (
	"fmt"
	"slices"
	"strings"
)

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// MapErr transforms each element and stops at the first error. The error is
// annotated with the index of the failing element.
func MapErr[T, R any](slice []T, mapper func(T) (R, error)) ([]R, error) {
	if slice == nil || mapper == nil {
		return nil, nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		r, err := mapper(item)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		result[i] = r
	}
	return result, nil
}

// Reduce folds the slice into a single value, left to right
func Reduce[T, R any](slice []T, initial R, reducer func(R, T) R) R {
	if reducer == nil {
		return initial
	}

	acc := initial
	for _, item := range slice {
		acc = reducer(acc, item)
	}
	return acc
}

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Some reports whether any element matches the predicate
func Some[T any](slice []T, predicate func(T) bool) bool {
	return IndexFunc(slice, predicate) >= 0
}

// Every reports whether all elements match the predicate. It is true for an
// empty slice.
func Every[T any](slice []T, predicate func(T) bool) bool {
	if predicate == nil {
		return false
	}
	for _, item := range slice {
		if !predicate(item) {
			return false
		}
	}
	return true
}

// IndexFunc returns the index of the first element matching the predicate, or -1
func IndexFunc[T any](slice []T, predicate func(T) bool) int {
	if predicate == nil {
		return -1
	}
	for i, item := range slice {
		if predicate(item) {
			return i
		}
	}
	return -1
}

// Clone returns a shallow copy. A nil slice stays nil.
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	result := make([]T, len(slice))
	copy(result, slice)
	return result
}

// SortFunc returns a sorted copy ordered by compare. Equal elements keep their
// original order.
func SortFunc[T any](slice []T, compare func(a, b T) int) []T {
	result := Clone(slice)
	if compare != nil {
		slices.SortStableFunc(result, compare)
	}
	return result
}

// MinFunc returns the first smallest element by compare
func MinFunc[T any](slice []T, compare func(a, b T) int) (T, bool) {
	var zero T
	if len(slice) == 0 || compare == nil {
		return zero, false
	}

	best := slice[0]
	for _, item := range slice[1:] {
		if compare(item, best) < 0 {
			best = item
		}
	}
	return best, true
}

// MaxFunc returns the first largest element by compare
func MaxFunc[T any](slice []T, compare func(a, b T) int) (T, bool) {
	var zero T
	if len(slice) == 0 || compare == nil {
		return zero, false
	}

	best := slice[0]
	for _, item := range slice[1:] {
		if compare(item, best) > 0 {
			best = item
		}
	}
	return best, true
}

// Frequency is an element together with the number of times it occurs
type Frequency[T any] struct {
	Value T
	Count int
}

// Frequencies counts the elements under an equivalence given by key. The
// result lists each distinct element once, in order of first occurrence,
// represented by its first occurrence.
func Frequencies[T any, K comparable](slice []T, key func(T) K) []Frequency[T] {
	if key == nil {
		return nil
	}

	index := make(map[K]int, len(slice))
	result := make([]Frequency[T], 0, len(slice))
	for _, item := range slice {
		k := key(item)
		if i, ok := index[k]; ok {
			result[i].Count++
			continue
		}
		index[k] = len(result)
		result = append(result, Frequency[T]{Value: item, Count: 1})
	}
	return result
}

// Grid builds a rows x cols grid whose cells are produced by fill
func Grid[T any](rows, cols int, fill func(i, j int) T) [][]T {
	if rows < 0 || cols < 0 {
		return nil
	}

	grid := make([][]T, rows)
	for i := range grid {
		grid[i] = make([]T, cols)
		if fill == nil {
			continue
		}
		for j := range grid[i] {
			grid[i][j] = fill(i, j)
		}
	}
	return grid
}

// Join renders each element with format and joins them with separator
func Join[T any](slice []T, separator string, format func(T) string) string {
	if format == nil {
		format = func(v T) string { return fmt.Sprint(v) }
	}
	var b strings.Builder
	for i, item := range slice {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(format(item))
	}
	return b.String()
}

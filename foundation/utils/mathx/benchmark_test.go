// File: benchmark_test.go
// Title: Performance Benchmarks for MathX Functions
// Description: Benchmarks for decimal construction, exact arithmetic and the
//              context rounded operations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial benchmark implementation
// - 2026-10-16 v0.2.0: Benchmarks for digit string decimals

package mathx

import (
	"testing"
)

// Benchmark decimal creation
func BenchmarkNewDecimal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = NewDecimal("123.456789")
	}
}

func BenchmarkNewDecimalFromInt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = NewDecimalFromInt(123456)
	}
}

// Benchmark basic arithmetic operations
func BenchmarkDecimalAdd(b *testing.B) {
	d1 := MustNewDecimal("123.456")
	d2 := MustNewDecimal("789.123")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d1.Add(d2)
	}
}

func BenchmarkDecimalMultiply(b *testing.B) {
	d1 := MustNewDecimal("123.456")
	d2 := MustNewDecimal("789.123")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d1.Multiply(d2)
	}
}

func BenchmarkDecimalDivide(b *testing.B) {
	d1 := MustNewDecimal("123.456")
	d2 := MustNewDecimal("7")
	ctx := DefaultContext()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d1.Divide(d2, ctx)
	}
}

func BenchmarkDecimalSqrt(b *testing.B) {
	d := MustNewDecimal("2")
	ctx := DefaultContext()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Sqrt(ctx)
	}
}

func BenchmarkFactorial(b *testing.B) {
	n := NewDecimalFromInt(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Factorial(n)
	}
}

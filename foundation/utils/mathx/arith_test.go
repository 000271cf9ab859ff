// File: arith_test.go
// Title: Unit Tests for Decimal Arithmetic
// Description: Exact arithmetic, precision-bound division, rounding modes,
//              powers, roots and the algebraic identities they must satisfy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package mathx

import (
	"errors"
	"strings"
	"testing"

	fe "github.com/msto63/gauss/foundation/core/errors"
)

func d(s string) Decimal {
	return MustNewDecimal(s)
}

func TestExactArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Decimal
		want string
	}{
		{"add tenths", d("0.1").Add(d("0.2")), "0.3"},
		{"add carry", d("99999999999999999999.99").Add(d("0.01")), "100000000000000000000"},
		{"add signs", d("-5").Add(d("3.25")), "-1.75"},
		{"subtract", d("1.5").Subtract(d("2.25")), "-0.75"},
		{"subtract to zero", d("-1.1").Subtract(d("-1.10")), "0"},
		{"multiply sign", d("-1.5").Multiply(d("2")), "-3"},
		{"multiply scale", d("123.456").Multiply(d("0.001")), "0.123456"},
		{"multiply large", d("12345678901234567890").Multiply(d("98765432109876543210")), "1219326311370217952237463801111263526900"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got.String() != tt.want {
				t.Errorf("got %s, want %s", tt.got, tt.want)
			}
		})
	}
}

func TestDivide(t *testing.T) {
	tests := []struct {
		a, b string
		ctx  Context
		want string
	}{
		{"1", "3", Context{Precision: 10}, "0.3333333333"},
		{"2", "3", Context{Precision: 5}, "0.66667"},
		{"2", "3", Context{Precision: 5, Rounding: RoundingModeDown}, "0.66666"},
		{"10", "4", Context{}, "2.5"},
		{"-7", "2", Context{}, "-3.5"},
		{"0", "5", Context{}, "0"},
		{"1", "8", DefaultContext(), "0.125"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			got, err := d(tt.a).Divide(d(tt.b), tt.ctx)
			if err != nil {
				t.Fatalf("Divide() error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Divide() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	_, err := d("1").Divide(Zero(), DefaultContext())
	if !errors.Is(err, fe.ErrDivisionByZero) {
		t.Errorf("Divide by zero error = %v", err)
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.10", "1.1", 0},
		{"-2", "-1.5", -1},
		{"0", "-0", 0},
		{"0.001", "0", 1},
		{"-0.001", "0", -1},
		{"100", "99.999", 1},
		{"-100", "-99.999", -1},
	}
	for _, tt := range tests {
		if got := d(tt.a).Compare(d(tt.b)); got != tt.want {
			t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	a, b := d("1"), d("2")
	if !a.LessThan(b) || !a.LessThanOrEqual(a) || !b.GreaterThan(a) || !b.GreaterThanOrEqual(b) {
		t.Error("ordering predicates inconsistent")
	}
	if !a.Min(b).Equal(a) || !a.Max(b).Equal(b) {
		t.Error("Min/Max wrong")
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		input  string
		places int
		mode   RoundingMode
		want   string
	}{
		{"2.345", 2, RoundingModeHalfUp, "2.35"},
		{"2.345", 2, RoundingModeHalfEven, "2.34"},
		{"2.355", 2, RoundingModeHalfEven, "2.36"},
		{"2.345", 2, RoundingModeHalfDown, "2.34"},
		{"2.3451", 2, RoundingModeHalfDown, "2.35"},
		{"2.341", 2, RoundingModeUp, "2.35"},
		{"2.349", 2, RoundingModeDown, "2.34"},
		{"-2.345", 2, RoundingModeHalfUp, "-2.35"},
		{"-2.341", 2, RoundingModeCeiling, "-2.34"},
		{"-2.341", 2, RoundingModeFloor, "-2.35"},
		{"2.341", 2, RoundingModeCeiling, "2.35"},
		{"2.349", 2, RoundingModeFloor, "2.34"},
		{"1250", -2, RoundingModeHalfEven, "1200"},
		{"1350", -2, RoundingModeHalfEven, "1400"},
		{"1.5", 5, RoundingModeHalfEven, "1.5"},
		{"0.004", 2, RoundingModeHalfUp, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.mode.String(), func(t *testing.T) {
			if got := d(tt.input).Round(tt.places, tt.mode); got.String() != tt.want {
				t.Errorf("Round(%s, %d, %s) = %s, want %s", tt.input, tt.places, tt.mode, got, tt.want)
			}
		})
	}

	if got := d("-7.99").Truncate(1); got.String() != "-7.9" {
		t.Errorf("Truncate() = %s", got)
	}
	if got := d("7.5").RoundToInt(RoundingModeHalfEven); got.String() != "8" {
		t.Errorf("RoundToInt() = %s", got)
	}
}

func TestRoundBeyondMagnitude(t *testing.T) {
	tests := []struct {
		input  string
		places int
		mode   RoundingMode
		want   string
	}{
		{"5", -999999999, RoundingModeHalfEven, "0"},
		{"-7.25", -1 << 30, RoundingModeDown, "0"},
		{"0.004", -3, RoundingModeHalfUp, "0"},
		{"999", -3, RoundingModeHalfUp, "1000"},
		{"999", -4, RoundingModeHalfUp, "0"},
		{"7", -40, RoundingModeUp, "1" + strings.Repeat("0", 40)},
		{"7", -40, RoundingModeCeiling, "1" + strings.Repeat("0", 40)},
		{"-7", -40, RoundingModeFloor, "-1" + strings.Repeat("0", 40)},
		{"-7", -40, RoundingModeCeiling, "0"},
		{"0.0000001", 2, RoundingModeUp, "0.01"},
	}

	for _, tt := range tests {
		if got := d(tt.input).Round(tt.places, tt.mode); got.String() != tt.want {
			t.Errorf("Round(%s, %d, %s) = %s, want %s", tt.input, tt.places, tt.mode, got, tt.want)
		}
	}
	if got := d("5").Round(-999999999, RoundingModeHalfEven); got.IsNegative() || got.Locale() != DefaultLocale {
		t.Errorf("zero result should keep the template, got %+v", got)
	}
}

func TestRoundToContext(t *testing.T) {
	tests := []struct {
		input string
		ctx   Context
		want  string
	}{
		{"123.456", Context{Precision: 4}, "123.5"},
		{"0.000123456", Context{Precision: 3}, "0.000123"},
		{"987654", Context{Precision: 2}, "990000"},
		{"9.99", Context{Precision: 2, Rounding: RoundingModeHalfUp}, "10"},
		{"1.5", Context{Precision: 10}, "1.5"},
		{"0", Context{Precision: 1}, "0"},
	}
	for _, tt := range tests {
		if got := d(tt.input).RoundToContext(tt.ctx); got.String() != tt.want {
			t.Errorf("RoundToContext(%s, %v) = %s, want %s", tt.input, tt.ctx, got, tt.want)
		}
	}
}

func TestPower(t *testing.T) {
	ctx := DefaultContext()
	tests := []struct {
		base, exp string
		want      string
	}{
		{"2", "10", "1024"},
		{"1.5", "2", "2.25"},
		{"-3", "3", "-27"},
		{"7", "0", "1"},
		{"0", "0", "1"},
		{"2", "-2", "0.25"},
		{"4", "0.5", "2"},
		{"0", "0.5", "0"},
		{"0.1", "3", "0.001"},
	}

	for _, tt := range tests {
		t.Run(tt.base+"^"+tt.exp, func(t *testing.T) {
			got, err := d(tt.base).Power(d(tt.exp), ctx)
			if err != nil {
				t.Fatalf("Power() error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Power() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPowerErrors(t *testing.T) {
	ctx := DefaultContext()
	if _, err := Zero().Power(d("-1"), ctx); !errors.Is(err, fe.ErrDivisionByZero) {
		t.Errorf("0^-1 error = %v", err)
	}
	if _, err := d("-8").Power(d("0.5"), ctx); !errors.Is(err, fe.ErrInvalidArgument) {
		t.Errorf("(-8)^0.5 error = %v", err)
	}
	if _, err := Zero().Power(d("-0.5"), ctx); !errors.Is(err, fe.ErrDivisionByZero) {
		t.Errorf("0^-0.5 error = %v", err)
	}
	if _, err := d("10").PowInt(1<<40, ctx); !errors.Is(err, fe.ErrInvalidArgument) {
		t.Errorf("huge exponent error = %v", err)
	}
	if got, err := One().PowInt(1<<40, ctx); err != nil || !got.Equal(One()) {
		t.Errorf("1^huge = %s, %v", got, err)
	}
}

func TestNthRoot(t *testing.T) {
	tests := []struct {
		input string
		n     int64
		ctx   Context
		want  string
	}{
		{"27", 3, DefaultContext(), "3"},
		{"-27", 3, DefaultContext(), "-3"},
		{"16", 4, DefaultContext(), "2"},
		{"2", 2, Context{Precision: 10}, "1.414213562"},
		{"5", 1, DefaultContext(), "5"},
		{"0", 5, DefaultContext(), "0"},
		{"0.0081", 4, DefaultContext(), "0.3"},
	}
	for _, tt := range tests {
		got, err := d(tt.input).NthRoot(tt.n, tt.ctx)
		if err != nil {
			t.Errorf("NthRoot(%s, %d) error: %v", tt.input, tt.n, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("NthRoot(%s, %d) = %s, want %s", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestNthRootErrors(t *testing.T) {
	ctx := DefaultContext()
	cases := []struct {
		input string
		n     int64
	}{
		{"4", 0},
		{"4", -2},
		{"-4", 2},
		{"-16", 4},
	}
	for _, c := range cases {
		if _, err := d(c.input).NthRoot(c.n, ctx); !errors.Is(err, fe.ErrInvalidArgument) {
			t.Errorf("NthRoot(%s, %d) error = %v", c.input, c.n, err)
		}
	}
	if _, err := d("-1").Sqrt(ctx); !errors.Is(err, fe.ErrInvalidArgument) {
		t.Errorf("Sqrt(-1) error = %v", err)
	}
}

func TestArithmeticIdentities(t *testing.T) {
	values := []string{"0", "1", "-1", "0.1", "123.456", "-98765.4321", "0.000000001", "31415926535897932384626"}
	ctx := DefaultContext()

	for _, as := range values {
		a := d(as)
		if !a.Multiply(One()).Equal(a) {
			t.Errorf("%s * 1 != %s", as, as)
		}
		for _, bs := range values {
			b := d(bs)
			if !a.Add(b).Subtract(b).Equal(a) {
				t.Errorf("%s + %s - %s != %s", as, bs, bs, as)
			}
			if !a.Add(b).Equal(b.Add(a)) || !a.Multiply(b).Equal(b.Multiply(a)) {
				t.Errorf("commutativity fails for %s, %s", as, bs)
			}
		}
		if !a.IsZero() {
			q, err := a.Divide(a, ctx)
			if err != nil || !q.Equal(One()) {
				t.Errorf("%s / %s = %s, %v", as, as, q, err)
			}
		}
	}
}

func TestPowerOfPower(t *testing.T) {
	ctx := DefaultContext()
	for _, base := range []string{"1.1", "-2", "0.5", "3"} {
		for m := int64(0); m <= 4; m++ {
			for n := int64(0); n <= 3; n++ {
				am, _ := d(base).PowInt(m, ctx)
				lhs, _ := am.PowInt(n, ctx)
				rhs, _ := d(base).PowInt(m*n, ctx)
				if !lhs.Equal(rhs) {
					t.Errorf("(%s^%d)^%d = %s, want %s", base, m, n, lhs, rhs)
				}
			}
		}
	}
}

// File: arith.go
// Title: Decimal Arithmetic
// Description: Arithmetic, comparison and rounding on Decimal. Addition,
//              subtraction, multiplication, comparison and integer powers are
//              exact on scaled big.Int coefficients; division, roots and
//              fractional powers are rounded to an explicit Context using apd.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Arithmetic on big.Rat
// - 2026-10-16 v0.2.0: Exact coefficient arithmetic, apd for inexact operations,
//                       ceiling/floor rounding, significant digit rounding
// - 2026-10-17 v0.2.1: Round no longer scales by 10^k when k exceeds the magnitude

package mathx

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"

	gerror "github.com/msto63/gauss/foundation/core/error"
	"github.com/msto63/gauss/foundation/core/errors"
)

// Add returns d + other. The result carries the locale and context of d.
func (d Decimal) Add(other Decimal) Decimal {
	a, b, scale := aligned(d, other)
	return fromBig(a.Add(a, b), scale, d)
}

// Subtract returns d - other
func (d Decimal) Subtract(other Decimal) Decimal {
	a, b, scale := aligned(d, other)
	return fromBig(a.Sub(a, b), scale, d)
}

// Multiply returns d * other
func (d Decimal) Multiply(other Decimal) Decimal {
	a, sa := d.coefficient()
	b, sb := other.coefficient()
	return fromBig(a.Mul(a, b), sa+sb, d)
}

// Divide returns d / other rounded to ctx. A zero ctx means DefaultContext.
func (d Decimal) Divide(other Decimal, ctx Context) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, errors.DivisionByZero(errors.ModuleMathx, "divide")
	}
	if d.IsZero() {
		return fromBig(new(big.Int), 0, d), nil
	}

	res := new(apd.Decimal)
	if _, err := ctx.apd().Quo(res, d.apd(), other.apd()); err != nil {
		return Decimal{}, errors.OperationFailed(errors.ModuleMathx, "divide", gerror.CodeInvalidArgument, err)
	}
	return fromAPD(res, d, "divide")
}

// MustDivide is Divide at DefaultContext, panicking on error.
// Use it only where the divisor is known to be non-zero.
func (d Decimal) MustDivide(other Decimal) Decimal {
	q, err := d.Divide(other, DefaultContext())
	if err != nil {
		panic(err)
	}
	return q
}

// Compare returns -1, 0 or 1 as d is less than, equal to or greater than
// other. The comparison is exact.
func (d Decimal) Compare(other Decimal) int {
	if d.negative != other.negative {
		if d.negative {
			return -1
		}
		return 1
	}
	a, b, _ := aligned(d, other)
	return a.Cmp(b)
}

// Equal reports numeric equality; locale and context tags are ignored
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// LessThan reports d < other
func (d Decimal) LessThan(other Decimal) bool {
	return d.Compare(other) < 0
}

// LessThanOrEqual reports d <= other
func (d Decimal) LessThanOrEqual(other Decimal) bool {
	return d.Compare(other) <= 0
}

// GreaterThan reports d > other
func (d Decimal) GreaterThan(other Decimal) bool {
	return d.Compare(other) > 0
}

// GreaterThanOrEqual reports d >= other
func (d Decimal) GreaterThanOrEqual(other Decimal) bool {
	return d.Compare(other) >= 0
}

// Min returns the smaller of d and other
func (d Decimal) Min(other Decimal) Decimal {
	if other.LessThan(d) {
		return other
	}
	return d
}

// Max returns the larger of d and other
func (d Decimal) Max(other Decimal) Decimal {
	if other.GreaterThan(d) {
		return other
	}
	return d
}

// Round rounds to places fraction digits. Negative places round to tens,
// hundreds and so on. Rounding at a place above the leading digit yields zero,
// or one unit of that place when the mode rounds away from zero.
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	c, scale := d.coefficient()
	if scale <= places {
		return d
	}

	// past the leading digit the quotient is below 0.1 either way
	drop := min(scale-places, len(new(big.Int).Abs(c).String())+1)
	q := roundCoefficient(c, drop, mode)
	if q.Sign() == 0 {
		return fromBig(q, 0, d)
	}
	if places < 0 {
		return fromBig(q.Mul(q, pow10(-places)), 0, d)
	}
	return fromBig(q, places, d)
}

// RoundToInt rounds to an integer
func (d Decimal) RoundToInt(mode RoundingMode) Decimal {
	return d.Round(0, mode)
}

// Truncate drops fraction digits beyond places
func (d Decimal) Truncate(places int) Decimal {
	return d.Round(places, RoundingModeDown)
}

// RoundToContext rounds to ctx.Precision significant digits
func (d Decimal) RoundToContext(ctx Context) Decimal {
	ctx = ctx.effective()
	c, scale := d.coefficient()
	digits := len(new(big.Int).Abs(c).String())
	if c.Sign() == 0 || digits <= int(ctx.Precision) {
		return d
	}
	return d.Round(scale-(digits-int(ctx.Precision)), ctx.Rounding)
}

// roundCoefficient divides c by 10^drop and rounds the quotient by mode
func roundCoefficient(c *big.Int, drop int, mode RoundingMode) *big.Int {
	divisor := pow10(drop)
	q, r := new(big.Int).QuoRem(c, divisor, new(big.Int))
	if r.Sign() == 0 {
		return q
	}

	// compare 2|r| with the divisor to locate the tie
	half := new(big.Int).Abs(r)
	half.Lsh(half, 1)
	tie := half.Cmp(divisor)

	away := false
	switch mode {
	case RoundingModeUp:
		away = true
	case RoundingModeDown:
		away = false
	case RoundingModeHalfUp:
		away = tie >= 0
	case RoundingModeHalfDown:
		away = tie > 0
	case RoundingModeCeiling:
		away = c.Sign() > 0
	case RoundingModeFloor:
		away = c.Sign() < 0
	default:
		away = tie > 0 || tie == 0 && q.Bit(0) == 1
	}

	if away {
		q.Add(q, big.NewInt(int64(c.Sign())))
	}
	return q
}

// maxExactDigits bounds the size of exact integer powers
const maxExactDigits = 1 << 22

// PowInt returns d^n. Non-negative n is exact; negative n divides at ctx.
func (d Decimal) PowInt(n int64, ctx Context) (Decimal, error) {
	if n >= 0 {
		c, scale := d.coefficient()
		trivial := scale == 0 && c.CmpAbs(big.NewInt(1)) <= 0
		if !trivial && (n > maxExactDigits || int64(len(c.String())+scale)*n > maxExactDigits) {
			return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "power", n, "exact result too large")
		}
		c.Exp(c, big.NewInt(n), nil)
		return fromBig(c, scale*int(n), d), nil
	}
	if d.IsZero() {
		return Decimal{}, errors.DivisionByZero(errors.ModuleMathx, "power")
	}
	if n == math.MinInt64 {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "power", n, "exponent out of range")
	}
	p, err := d.PowInt(-n, ctx)
	if err != nil {
		return Decimal{}, err
	}
	return One().WithLocale(d.locale).WithContext(d.ctx).Divide(p, ctx)
}

// Power returns d^exp. Integer exponents go through PowInt; fractional
// exponents require a non-negative base and are rounded to ctx.
func (d Decimal) Power(exp Decimal, ctx Context) (Decimal, error) {
	if exp.IsInteger() {
		n, err := exp.Int64()
		if err != nil {
			return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "power", exp.String(), "exponent out of range")
		}
		return d.PowInt(n, ctx)
	}

	switch {
	case d.IsNegative():
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "power", d.String(), "fractional power of a negative base")
	case d.IsZero() && exp.IsNegative():
		return Decimal{}, errors.DivisionByZero(errors.ModuleMathx, "power")
	case d.IsZero():
		return d, nil
	}

	work := guarded(ctx)
	res := new(apd.Decimal)
	if _, err := work.apd().Pow(res, d.apd(), exp.apd()); err != nil {
		return Decimal{}, errors.OperationFailed(errors.ModuleMathx, "power", gerror.CodeInvalidArgument, err)
	}
	r, err := fromAPD(res, d, "power")
	if err != nil {
		return Decimal{}, err
	}
	return r.RoundToContext(ctx), nil
}

// NthRoot returns the n-th root of d rounded to ctx. Odd roots of negative
// values are negative; even roots of negative values fail.
func (d Decimal) NthRoot(n int64, ctx Context) (Decimal, error) {
	switch {
	case n <= 0:
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "nth_root", n, "root degree must be positive")
	case d.IsNegative() && n%2 == 0:
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "nth_root", d.String(), "even root of a negative value")
	case n == 1 || d.IsZero():
		return d, nil
	}

	work := guarded(ctx)
	ac := work.apd()
	x := d.Abs().apd()
	res := new(apd.Decimal)

	var err error
	switch n {
	case 2:
		_, err = ac.Sqrt(res, x)
	case 3:
		_, err = ac.Cbrt(res, x)
	default:
		inv := new(apd.Decimal)
		if _, err = ac.Quo(inv, apd.New(1, 0), apd.New(n, 0)); err == nil {
			_, err = ac.Pow(res, x, inv)
		}
	}
	if err != nil {
		return Decimal{}, errors.OperationFailed(errors.ModuleMathx, "nth_root", gerror.CodeInvalidArgument, err)
	}

	r, err := fromAPD(res, d, "nth_root")
	if err != nil {
		return Decimal{}, err
	}
	r = r.RoundToContext(ctx)
	if d.IsNegative() {
		r = r.Neg()
	}
	return r, nil
}

// Sqrt returns the square root of d rounded to ctx
func (d Decimal) Sqrt(ctx Context) (Decimal, error) {
	return d.NthRoot(2, ctx)
}

func guarded(ctx Context) Context {
	return ctx.Guarded()
}

func (d Decimal) apd() *apd.Decimal {
	a, _, err := apd.NewFromString(d.String())
	if err != nil {
		panic("mathx: canonical form rejected: " + d.String())
	}
	return a
}

func fromAPD(a *apd.Decimal, template Decimal, op string) (Decimal, error) {
	if a.Form != apd.Finite {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, op, a.String(), "result is not finite")
	}
	r, err := NewDecimal(a.Text('f'))
	if err != nil {
		return Decimal{}, err
	}
	r.locale, r.ctx, r.angle = template.locale, template.ctx, template.angle
	return r, nil
}

// File: functions.go
// Title: Special Function Provider
// Description: Function and Evaluator collaborator types, plus the logarithm
//              and exponential functions computed by apd at an explicit
//              precision context.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package mathx

import (
	"github.com/cockroachdb/apd/v3"

	gerror "github.com/msto63/gauss/foundation/core/error"
	"github.com/msto63/gauss/foundation/core/errors"
)

// Function is a special function evaluated at a precision context.
// Matrix and statistics code never calls these; they exist for callers
// such as calculators.
type Function func(x Decimal, ctx Context) (Decimal, error)

// Evaluator turns expression text such as "1+2*3" into a value.
// The foundation declares the contract only.
type Evaluator interface {
	Evaluate(expression string) (Decimal, error)
}

// Functions maps names to the functions provided by this package
var Functions = map[string]Function{
	"sqrt":  Decimal.Sqrt,
	"cbrt":  func(x Decimal, ctx Context) (Decimal, error) { return x.NthRoot(3, ctx) },
	"ln":    Ln,
	"log10": Log10,
	"exp":   Exp,
}

type apdUnary func(c *apd.Context, d, x *apd.Decimal) (apd.Condition, error)

func unary(x Decimal, ctx Context, op string, fn apdUnary) (Decimal, error) {
	work := guarded(ctx)
	res := new(apd.Decimal)
	if _, err := fn(work.apd(), res, x.apd()); err != nil {
		return Decimal{}, errors.OperationFailed(errors.ModuleMathx, op, gerror.CodeInvalidArgument, err)
	}
	r, err := fromAPD(res, x, op)
	if err != nil {
		return Decimal{}, err
	}
	return r.RoundToContext(ctx), nil
}

// Ln returns the natural logarithm of x, which must be positive
func Ln(x Decimal, ctx Context) (Decimal, error) {
	if !x.IsPositive() {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "ln", x.String(), "logarithm of a non-positive value")
	}
	return unary(x, ctx, "ln", (*apd.Context).Ln)
}

// Log10 returns the base-10 logarithm of x, which must be positive
func Log10(x Decimal, ctx Context) (Decimal, error) {
	if !x.IsPositive() {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "log10", x.String(), "logarithm of a non-positive value")
	}
	return unary(x, ctx, "log10", (*apd.Context).Log10)
}

// Log returns the logarithm of x to base. The base must be positive and
// different from one.
func Log(x, base Decimal, ctx Context) (Decimal, error) {
	if !base.IsPositive() || base.Equal(One()) {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "log", base.String(), "base must be positive and not 1")
	}
	if !x.IsPositive() {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "log", x.String(), "logarithm of a non-positive value")
	}

	work := guarded(ctx)
	num, err := Ln(x, work)
	if err != nil {
		return Decimal{}, err
	}
	den, err := Ln(base, work)
	if err != nil {
		return Decimal{}, err
	}
	q, err := num.Divide(den, work)
	if err != nil {
		return Decimal{}, err
	}
	return q.RoundToContext(ctx), nil
}

// Exp returns e raised to x
func Exp(x Decimal, ctx Context) (Decimal, error) {
	return unary(x, ctx, "exp", (*apd.Context).Exp)
}

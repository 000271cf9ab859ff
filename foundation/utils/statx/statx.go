// File: statx.go
// Title: Statistics over Decimal Sequences
// Description: Descriptive statistics over sequences of mathx.Decimal values.
//              Sums and integer numerators are exact; every division, root and
//              reciprocal is rounded once to the caller's Context.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package statx

import (
	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/utils/mathx"
	"github.com/msto63/gauss/foundation/utils/slicex"
)

func nonEmpty(values []mathx.Decimal, op string) error {
	if len(values) == 0 {
		return errors.EmptySequence(errors.ModuleStatx, op)
	}
	return nil
}

func sum(values []mathx.Decimal) mathx.Decimal {
	return slicex.Reduce(values[1:], values[0], mathx.Decimal.Add)
}

func count(values []mathx.Decimal) mathx.Decimal {
	return mathx.NewDecimalFromInt(int64(len(values)))
}

// Sum returns the exact sum of values. The result carries the locale and
// context of the first element.
func Sum(values []mathx.Decimal) (mathx.Decimal, error) {
	if err := nonEmpty(values, "sum"); err != nil {
		return mathx.Decimal{}, err
	}
	return sum(values), nil
}

// Mean returns the arithmetic mean rounded to ctx
func Mean(values []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
	if err := nonEmpty(values, "mean"); err != nil {
		return mathx.Decimal{}, err
	}
	return sum(values).Divide(count(values), ctx)
}

// Median returns the middle value of the sorted sequence. For an even count
// it is the mean of the two middle values, rounded to ctx. The input is not
// reordered.
func Median(values []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
	if err := nonEmpty(values, "median"); err != nil {
		return mathx.Decimal{}, err
	}

	sorted := slicex.SortFunc(values, mathx.Decimal.Compare)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}
	return sorted[mid-1].Add(sorted[mid]).Divide(mathx.NewDecimalFromInt(2), ctx)
}

// Modes returns every value that occurs with the highest frequency, in order
// of first occurrence. Values are equal when their digits are equal, so 1.50
// and 1.5 count as the same value.
func Modes(values []mathx.Decimal) ([]mathx.Decimal, error) {
	if err := nonEmpty(values, "modes"); err != nil {
		return nil, err
	}

	freq := slicex.Frequencies(values, mathx.Decimal.Canonical)
	top := slicex.Reduce(freq, 0, func(acc int, f slicex.Frequency[mathx.Decimal]) int {
		return max(acc, f.Count)
	})
	modes := slicex.Filter(freq, func(f slicex.Frequency[mathx.Decimal]) bool { return f.Count == top })
	return slicex.Map(modes, func(f slicex.Frequency[mathx.Decimal]) mathx.Decimal { return f.Value }), nil
}

// spread returns n*sum(x^2) - (sum x)^2, the exact numerator shared by the
// variance estimators.
func spread(values []mathx.Decimal) mathx.Decimal {
	s := sum(values)
	squares := slicex.Reduce(values, mathx.Zero(), func(acc, v mathx.Decimal) mathx.Decimal {
		return acc.Add(v.Multiply(v))
	})
	return count(values).Multiply(squares).Subtract(s.Multiply(s)).
		WithLocale(values[0].Locale()).
		WithContext(values[0].Context())
}

func variance(values []mathx.Decimal, ctx mathx.Context, op string, sample bool) (mathx.Decimal, error) {
	if err := nonEmpty(values, op); err != nil {
		return mathx.Decimal{}, err
	}
	if len(values) < 2 {
		return mathx.Decimal{}, errors.InsufficientElements(errors.ModuleStatx, op, len(values), 2)
	}

	n := count(values)
	denominator := n.Multiply(n)
	if sample {
		denominator = n.Multiply(n.Subtract(mathx.One()))
	}
	return spread(values).Divide(denominator, ctx)
}

// Variance returns the population variance, the mean squared deviation from
// the mean, rounded to ctx. It needs at least two values.
func Variance(values []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
	return variance(values, ctx, "variance", false)
}

// SampleVariance returns the unbiased sample variance with an n-1 denominator
func SampleVariance(values []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
	return variance(values, ctx, "sample_variance", true)
}

// StandardDeviation returns the square root of the population variance
func StandardDeviation(values []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
	v, err := variance(values, ctx.Guarded(), "standard_deviation", false)
	if err != nil {
		return mathx.Decimal{}, err
	}
	return v.Sqrt(ctx)
}

// GeometricMean returns the n-th root of the product of n values. Negative
// values are rejected; any zero makes the result zero.
func GeometricMean(values []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
	if err := nonEmpty(values, "geometric_mean"); err != nil {
		return mathx.Decimal{}, err
	}
	if i := slicex.IndexFunc(values, mathx.Decimal.IsNegative); i >= 0 {
		return mathx.Decimal{}, errors.NegativeValue(errors.ModuleStatx, "geometric_mean", values[i].String())
	}

	product := slicex.Reduce(values[1:], values[0], mathx.Decimal.Multiply)
	return product.NthRoot(int64(len(values)), ctx)
}

// HarmonicMean returns n divided by the sum of reciprocals. A zero value, or
// reciprocals that cancel out, fail with DIVISION_BY_ZERO.
func HarmonicMean(values []mathx.Decimal, ctx mathx.Context) (mathx.Decimal, error) {
	if err := nonEmpty(values, "harmonic_mean"); err != nil {
		return mathx.Decimal{}, err
	}
	if slicex.Some(values, mathx.Decimal.IsZero) {
		return mathx.Decimal{}, errors.DivisionByZero(errors.ModuleStatx, "harmonic_mean")
	}

	work := ctx.Guarded()
	reciprocals, err := slicex.MapErr(values, func(v mathx.Decimal) (mathx.Decimal, error) {
		return mathx.One().WithLocale(v.Locale()).WithContext(v.Context()).Divide(v, work)
	})
	if err != nil {
		return mathx.Decimal{}, err
	}

	total := sum(reciprocals)
	if total.IsZero() {
		return mathx.Decimal{}, errors.DivisionByZero(errors.ModuleStatx, "harmonic_mean")
	}
	return count(values).WithLocale(values[0].Locale()).WithContext(values[0].Context()).Divide(total, ctx)
}

// Min returns the smallest value; ties keep the first occurrence
func Min(values []mathx.Decimal) (mathx.Decimal, error) {
	if err := nonEmpty(values, "min"); err != nil {
		return mathx.Decimal{}, err
	}
	v, _ := slicex.MinFunc(values, mathx.Decimal.Compare)
	return v, nil
}

// Max returns the largest value; ties keep the first occurrence
func Max(values []mathx.Decimal) (mathx.Decimal, error) {
	if err := nonEmpty(values, "max"); err != nil {
		return mathx.Decimal{}, err
	}
	v, _ := slicex.MaxFunc(values, mathx.Decimal.Compare)
	return v, nil
}

// Range returns Max - Min, exactly
func Range(values []mathx.Decimal) (mathx.Decimal, error) {
	if err := nonEmpty(values, "range"); err != nil {
		return mathx.Decimal{}, err
	}
	lo, _ := slicex.MinFunc(values, mathx.Decimal.Compare)
	hi, _ := slicex.MaxFunc(values, mathx.Decimal.Compare)
	return hi.Subtract(lo), nil
}

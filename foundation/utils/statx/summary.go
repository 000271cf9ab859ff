// File: summary.go
// Title: Sequence Summary
// Description: Computes the common descriptive statistics of a sequence in one
//              call, as shown by the stats command of the CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package statx

import (
	"github.com/msto63/gauss/foundation/utils/mathx"
)

// Summary holds the descriptive statistics of a sequence. Variance and
// StandardDeviation are only meaningful when HasSpread is set, which needs
// at least two values.
type Summary struct {
	Count             int
	Sum               mathx.Decimal
	Mean              mathx.Decimal
	Median            mathx.Decimal
	Modes             []mathx.Decimal
	Min               mathx.Decimal
	Max               mathx.Decimal
	Range             mathx.Decimal
	HasSpread         bool
	Variance          mathx.Decimal
	StandardDeviation mathx.Decimal
}

// Describe computes a Summary of values at ctx
func Describe(values []mathx.Decimal, ctx mathx.Context) (Summary, error) {
	if err := nonEmpty(values, "describe"); err != nil {
		return Summary{}, err
	}

	s := Summary{Count: len(values), Sum: sum(values)}
	var err error
	if s.Mean, err = Mean(values, ctx); err != nil {
		return Summary{}, err
	}
	if s.Median, err = Median(values, ctx); err != nil {
		return Summary{}, err
	}
	if s.Modes, err = Modes(values); err != nil {
		return Summary{}, err
	}
	if s.Min, err = Min(values); err != nil {
		return Summary{}, err
	}
	if s.Max, err = Max(values); err != nil {
		return Summary{}, err
	}
	s.Range = s.Max.Subtract(s.Min)

	if len(values) < 2 {
		return s, nil
	}
	s.HasSpread = true
	if s.Variance, err = Variance(values, ctx); err != nil {
		return Summary{}, err
	}
	if s.StandardDeviation, err = StandardDeviation(values, ctx); err != nil {
		return Summary{}, err
	}
	return s, nil
}

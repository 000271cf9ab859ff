// File: statx_test.go
// Title: Statistics Tests
// Description: Tests for the statx aggregates: known datasets, exactness,
//              rounding to the caller's context and the error taxonomy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package statx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fe "github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/utils/mathx"
)

func decimals(t *testing.T, values ...string) []mathx.Decimal {
	t.Helper()
	out := make([]mathx.Decimal, len(values))
	for i, v := range values {
		d, err := mathx.NewDecimal(v)
		require.NoError(t, err, "fixture %q", v)
		out[i] = d
	}
	return out
}

func requireDecimal(t *testing.T, want string, got mathx.Decimal) {
	t.Helper()
	require.Truef(t, mathx.MustNewDecimal(want).Equal(got), "got %s, want %s", got, want)
}

// 2 4 4 4 5 5 7 9 has mean 5 and population standard deviation 2
func classic(t *testing.T) []mathx.Decimal {
	return decimals(t, "2", "4", "4", "4", "5", "5", "7", "9")
}

func TestClassicDataset(t *testing.T) {
	values := classic(t)
	ctx := mathx.DefaultContext()

	s, err := Sum(values)
	require.NoError(t, err)
	requireDecimal(t, "40", s)

	mean, err := Mean(values, ctx)
	require.NoError(t, err)
	requireDecimal(t, "5", mean)

	median, err := Median(values, ctx)
	require.NoError(t, err)
	requireDecimal(t, "4.5", median)

	v, err := Variance(values, ctx)
	require.NoError(t, err)
	requireDecimal(t, "4", v)

	sd, err := StandardDeviation(values, ctx)
	require.NoError(t, err)
	requireDecimal(t, "2", sd)

	sv, err := SampleVariance(values, ctx)
	require.NoError(t, err)
	requireDecimal(t, "4.571428571428571428571428571428571", sv)

	modes, err := Modes(values)
	require.NoError(t, err)
	require.Len(t, modes, 1)
	requireDecimal(t, "4", modes[0])

	lo, err := Min(values)
	require.NoError(t, err)
	requireDecimal(t, "2", lo)
	hi, err := Max(values)
	require.NoError(t, err)
	requireDecimal(t, "9", hi)
	r, err := Range(values)
	require.NoError(t, err)
	requireDecimal(t, "7", r)
}

func TestMeanRoundsToContext(t *testing.T) {
	values := decimals(t, "1", "2", "2")

	m, err := Mean(values, mathx.DefaultContext())
	require.NoError(t, err)
	requireDecimal(t, "1.666666666666666666666666666666667", m)

	m, err = Mean(values, mathx.Context{Precision: 2})
	require.NoError(t, err)
	requireDecimal(t, "1.7", m)

	m, err = Mean(values, mathx.Context{Precision: 2, Rounding: mathx.RoundingModeDown})
	require.NoError(t, err)
	requireDecimal(t, "1.6", m)
}

func TestSumIsExact(t *testing.T) {
	values := decimals(t, "0.1", "0.2", "0.0000000000000000000000000000000000000001")
	s, err := Sum(values)
	require.NoError(t, err)
	requireDecimal(t, "0.3000000000000000000000000000000000000001", s)
}

func TestMedian(t *testing.T) {
	t.Run("odd count", func(t *testing.T) {
		m, err := Median(decimals(t, "9", "1", "5"), mathx.Context{})
		require.NoError(t, err)
		requireDecimal(t, "5", m)
	})

	t.Run("even count does not reorder input", func(t *testing.T) {
		values := decimals(t, "4", "1", "3", "2")
		m, err := Median(values, mathx.Context{})
		require.NoError(t, err)
		requireDecimal(t, "2.5", m)
		requireDecimal(t, "4", values[0])
		requireDecimal(t, "1", values[1])
	})

	t.Run("negative values", func(t *testing.T) {
		m, err := Median(decimals(t, "-1.5", "-0.5"), mathx.Context{})
		require.NoError(t, err)
		requireDecimal(t, "-1", m)
	})
}

func TestModes(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   []string
	}{
		{"single mode", []string{"1", "2", "2", "3"}, []string{"2"}},
		{"tie keeps first seen order", []string{"3", "1", "3", "1", "2"}, []string{"3", "1"}},
		{"all distinct", []string{"5", "6"}, []string{"5", "6"}},
		{"equal digits are one value", []string{"1.5", "2", "1.50"}, []string{"1.5"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Modes(decimals(t, tt.values...))
			require.NoError(t, err)
			require.Len(t, got, len(tt.want))
			for i, w := range tt.want {
				requireDecimal(t, w, got[i])
			}
		})
	}
}

func TestMeans(t *testing.T) {
	ctx := mathx.DefaultContext()

	g, err := GeometricMean(decimals(t, "2", "8"), ctx)
	require.NoError(t, err)
	requireDecimal(t, "4", g)

	g, err = GeometricMean(decimals(t, "3", "0", "7"), ctx)
	require.NoError(t, err)
	assert.True(t, g.IsZero())

	h, err := HarmonicMean(decimals(t, "1", "2", "4"), ctx)
	require.NoError(t, err)
	requireDecimal(t, "1.714285714285714285714285714285714", h)

	h, err = HarmonicMean(decimals(t, "6", "6", "6"), ctx)
	require.NoError(t, err)
	requireDecimal(t, "6", h)
}

func TestConstantSequence(t *testing.T) {
	values := decimals(t, "3.25", "3.25", "3.25", "3.25")
	ctx := mathx.DefaultContext()

	m, err := Mean(values, ctx)
	require.NoError(t, err)
	requireDecimal(t, "3.25", m)

	v, err := Variance(values, ctx)
	require.NoError(t, err)
	assert.True(t, v.IsZero())

	sd, err := StandardDeviation(values, ctx)
	require.NoError(t, err)
	assert.True(t, sd.IsZero())

	r, err := Range(values)
	require.NoError(t, err)
	assert.True(t, r.IsZero())
}

func TestResultsKeepLocaleOfFirstElement(t *testing.T) {
	values := decimals(t, "1", "2")
	values[0] = values[0].WithLocale("de-DE")

	m, err := Mean(values, mathx.Context{})
	require.NoError(t, err)
	assert.Equal(t, "de-DE", m.Locale())

	s, err := Sum(values)
	require.NoError(t, err)
	assert.Equal(t, "de-DE", s.Locale())
}

func TestErrors(t *testing.T) {
	ctx := mathx.Context{}
	empty := []mathx.Decimal{}

	emptyCases := map[string]func() error{
		"sum":       func() error { _, err := Sum(empty); return err },
		"mean":      func() error { _, err := Mean(empty, ctx); return err },
		"median":    func() error { _, err := Median(empty, ctx); return err },
		"modes":     func() error { _, err := Modes(empty); return err },
		"variance":  func() error { _, err := Variance(empty, ctx); return err },
		"sample":    func() error { _, err := SampleVariance(empty, ctx); return err },
		"stddev":    func() error { _, err := StandardDeviation(empty, ctx); return err },
		"geometric": func() error { _, err := GeometricMean(nil, ctx); return err },
		"harmonic":  func() error { _, err := HarmonicMean(nil, ctx); return err },
		"min":       func() error { _, err := Min(empty); return err },
		"max":       func() error { _, err := Max(empty); return err },
		"range":     func() error { _, err := Range(empty); return err },
		"describe":  func() error { _, err := Describe(empty, ctx); return err },
	}
	for name, call := range emptyCases {
		t.Run("empty "+name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, errors.Is(err, fe.ErrEmptySequence), "got %v", err)
			assert.Equal(t, fe.ModuleStatx, fe.ExtractModule(err))
		})
	}

	one := decimals(t, "5")
	_, err := Variance(one, ctx)
	assert.True(t, errors.Is(err, fe.ErrInsufficientElements))
	_, err = SampleVariance(one, ctx)
	assert.True(t, errors.Is(err, fe.ErrInsufficientElements))
	_, err = StandardDeviation(one, ctx)
	assert.True(t, errors.Is(err, fe.ErrInsufficientElements))

	_, err = GeometricMean(decimals(t, "4", "-1"), ctx)
	assert.True(t, errors.Is(err, fe.ErrNegativeValue))

	_, err = HarmonicMean(decimals(t, "4", "0"), ctx)
	assert.True(t, errors.Is(err, fe.ErrDivisionByZero))

	_, err = HarmonicMean(decimals(t, "1", "-1"), ctx)
	assert.True(t, errors.Is(err, fe.ErrDivisionByZero))
}

func TestDescribe(t *testing.T) {
	s, err := Describe(classic(t), mathx.DefaultContext())
	require.NoError(t, err)
	assert.Equal(t, 8, s.Count)
	requireDecimal(t, "40", s.Sum)
	requireDecimal(t, "5", s.Mean)
	requireDecimal(t, "4.5", s.Median)
	requireDecimal(t, "7", s.Range)
	require.True(t, s.HasSpread)
	requireDecimal(t, "4", s.Variance)
	requireDecimal(t, "2", s.StandardDeviation)

	single, err := Describe(decimals(t, "1.5"), mathx.DefaultContext())
	require.NoError(t, err)
	assert.Equal(t, 1, single.Count)
	assert.False(t, single.HasSpread)
	requireDecimal(t, "1.5", single.Mean)
}

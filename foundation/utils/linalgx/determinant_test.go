// File: determinant_test.go
// Title: Determinant and Inverse Tests
// Description: Suite covering the determinant family on both algorithm paths:
//              exact cofactor expansion and elimination beyond the cofactor
//              limit.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Wide value ranges and 7x7 matrices on the elimination path

package linalgx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	fe "github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/mathx"
)

// tolerance for results that went through rounded elimination
var tolerance = mathx.MustNewDecimal("0.000000000000000000000000000001")

type DeterminantSuite struct {
	suite.Suite
}

func TestDeterminantSuite(t *testing.T) {
	suite.Run(t, new(DeterminantSuite))
}

func (s *DeterminantSuite) parse(text string, opts ...Option) *Matrix {
	m, err := Parse(text, opts...)
	s.Require().NoError(err, "Parse(%q)", text)
	return m
}

func (s *DeterminantSuite) det(m *Matrix) mathx.Decimal {
	d, err := m.Determinant()
	s.Require().NoError(err)
	return d
}

func (s *DeterminantSuite) near(want string, got mathx.Decimal) {
	diff := got.Subtract(mathx.MustNewDecimal(want)).Abs()
	s.Require().Truef(diff.LessThanOrEqual(tolerance), "got %s, want %s", got, want)
}

func (s *DeterminantSuite) TestClosedForms() {
	s.True(s.det(s.parse("1,2;3,4")).Equal(dec("-2")))
	s.True(s.det(s.parse("-4.5")).Equal(dec("-4.5")))

	empty, err := New(0, 0)
	s.Require().NoError(err)
	s.True(s.det(empty).Equal(dec("1")))

	id, err := Identity(5)
	s.Require().NoError(err)
	s.True(s.det(id).Equal(dec("1")))
}

func (s *DeterminantSuite) TestCofactorExpansion() {
	s.True(s.det(s.parse("4,3,2;1,3,1;2,1,4")).Equal(dec("28")))
	s.True(s.det(s.parse("2,-1,0,3;1,3,2,-2;0,1,4,1;5,2,-3,1")).Equal(dec("30")))
	s.True(s.det(s.parse("1,2,3;4,5,6;7,8,9")).IsZero())
	s.True(s.det(s.parse("0.1,0.2,0;0,1,0;0.3,0,2")).Equal(dec("0.2")))
}

func (s *DeterminantSuite) TestElimination() {
	limit := WithCofactorLimit(1)

	s.near("28", s.det(s.parse("4,3,2;1,3,1;2,1,4", limit)))
	s.near("30", s.det(s.parse("2,-1,0,3;1,3,2,-2;0,1,4,1;5,2,-3,1", limit)))
	s.near("0.2", s.det(s.parse("0.1,0.2,0;0,1,0;0.3,0,2", limit)))
	s.True(s.det(s.parse("1,2,3;4,5,6;7,8,9", limit)).IsZero())
	s.True(s.det(s.parse("0,1,0;1,0,0;0,0,1", limit)).Equal(dec("-1")), "row swap flips the sign")
}

func (s *DeterminantSuite) requireInverse(m *Matrix, tol mathx.Decimal) *Matrix {
	inv, err := m.Inverse()
	s.Require().NoError(err)
	prod, err := m.Multiply(inv)
	s.Require().NoError(err)
	id, err := Identity(m.Rows())
	s.Require().NoError(err)
	s.Require().True(prod.EqualWithin(id, tol), "A * inv(A) = %s", prod)
	return inv
}

func (s *DeterminantSuite) TestEliminationWithWideRange() {
	low := WithContext(mathx.Context{Precision: 4})
	m := s.parse("10000,0,0;0,1,0;0,0,1", low, WithCofactorLimit(1))
	s.True(s.det(m).Equal(dec("10000")), "got %s", s.det(m))
	inv := s.requireInverse(m, mathx.Zero())
	s.Equal("0.0001,0,0;0,1,0;0,0,1", inv.String())

	huge := "1" + strings.Repeat("0", 35)
	m = s.parse(huge+",0,0;0,1,0;0,0,1", WithCofactorLimit(2))
	s.True(s.det(m).Equal(dec(huge)), "got %s", s.det(m))
	s.requireInverse(m, mathx.Zero())

	tiny := "1,1;1,1." + strings.Repeat("0", 38) + "1"
	m = s.parse(tiny, WithCofactorLimit(1))
	s.True(s.det(m).Equal(dec("0."+strings.Repeat("0", 38)+"1")), "got %s", s.det(m))
	_, err := m.Inverse()
	s.NoError(err)

	_, err = s.parse("1000000,2;500000,1", WithCofactorLimit(1)).Inverse()
	requireCode(s.T(), err, fe.ErrSingularMatrix)
}

func (s *DeterminantSuite) TestEliminationAboveDefaultLimit() {
	unimodular := s.parse("1,2,0,0,0,0,0;10,21,2,0,0,0,0;0,-3,-5,2,0,0,0;" +
		"0,0,1000,2001,2,0,0;0,0,0,-3,-5,2,0;0,0,0,0,100000,200001,2;0,0,0,0,0,-3,-5")
	s.Require().Equal(7, unimodular.Rows())
	s.Equal(methodElimination, unimodular.method())
	s.True(s.det(unimodular).Equal(dec("1")))
	inv := s.requireInverse(unimodular, mathx.Zero())
	s.True(inv.cells[0][0].Equal(dec("-1439998800099")), "got %s", inv.cells[0][0])

	mixed := s.parse("0.001,2,0,0,0,0,0;1,1000000,3,0,0,0,0;0,4,0.5,7,0,0,0;" +
		"0,0,250000,0.02,1,0,0;0,0,0,6,-3,0.125,0;0,0,0,0,9,10000,2;0,0,0,0,0,1.5,-0.75")
	s.True(s.det(mixed).Equal(dec("-39313419421290.3777375")), "got %s", s.det(mixed))
	s.requireInverse(mixed, dec("0.0000000001"))
}

func (s *DeterminantSuite) TestNotSquare() {
	m := s.parse("1,2,3;4,5,6")

	_, err := m.Determinant()
	requireCode(s.T(), err, fe.ErrNotSquare)
	_, err = m.Inverse()
	requireCode(s.T(), err, fe.ErrNotSquare)
	_, err = m.Adjugate()
	requireCode(s.T(), err, fe.ErrNotSquare)
	_, err = m.Minor(0, 0)
	requireCode(s.T(), err, fe.ErrNotSquare)
}

func (s *DeterminantSuite) TestMinorCofactorAdjugate() {
	m := s.parse("1,2;3,4")

	minor, err := m.Minor(0, 1)
	s.Require().NoError(err)
	s.True(minor.Equal(dec("3")))

	cof, err := m.Cofactor(0, 1)
	s.Require().NoError(err)
	s.True(cof.Equal(dec("-3")))

	adj, err := m.Adjugate()
	s.Require().NoError(err)
	s.Equal("4,-2;-3,1", adj.String())

	_, err = m.Minor(2, 0)
	requireCode(s.T(), err, fe.ErrIndexOutOfRange)

	sub, err := s.parse("1,2,3;4,5,6;7,8,9").Submatrix(1, 1)
	s.Require().NoError(err)
	s.Equal("1,3;7,9", sub.String())
}

func (s *DeterminantSuite) TestAdjugateTimesMatrixIsScaledIdentity() {
	m := s.parse("4,3,2;1,3,1;2,1,4")
	adj, err := m.Adjugate()
	s.Require().NoError(err)

	prod, err := m.Multiply(adj)
	s.Require().NoError(err)

	id, err := Identity(3)
	s.Require().NoError(err)
	s.True(prod.Equal(id.ScalarMultiply(dec("28"))))
}

func (s *DeterminantSuite) TestInverseExact() {
	m := s.parse("1,2;3,4")
	inv, err := m.Inverse()
	s.Require().NoError(err)
	s.Equal("-2,1;1.5,-0.5", inv.String())

	prod, err := m.Multiply(inv)
	s.Require().NoError(err)
	s.True(prod.IsIdentityMatrix(), "A * inv(A) should be I, got %s", prod)

	one, err := s.parse("4").Inverse()
	s.Require().NoError(err)
	s.Equal("0.25", one.String())
}

func (s *DeterminantSuite) TestInverseBothPaths() {
	text := "4,3,2;1,3,1;2,1,4"
	exact, err := s.parse(text).Inverse()
	s.Require().NoError(err)
	elim, err := s.parse(text, WithCofactorLimit(1)).Inverse()
	s.Require().NoError(err)

	s.True(exact.EqualWithin(elim, tolerance), "exact %s vs elimination %s", exact, elim)

	id, err := Identity(3)
	s.Require().NoError(err)
	for _, inv := range []*Matrix{exact, elim} {
		prod, err := s.parse(text).Multiply(inv)
		s.Require().NoError(err)
		s.True(prod.EqualWithin(id, tolerance), "A * inv(A) = %s", prod)
	}
}

func (s *DeterminantSuite) TestSingular() {
	for _, opts := range [][]Option{nil, {WithCofactorLimit(1)}} {
		_, err := s.parse("1,2,3;4,5,6;7,8,9", opts...).Inverse()
		requireCode(s.T(), err, fe.ErrSingularMatrix)
		_, err = s.parse("1,2;2,4", opts...).Inverse()
		requireCode(s.T(), err, fe.ErrSingularMatrix)
	}
}

func (s *DeterminantSuite) TestInverseRoundsToContext() {
	inv, err := s.parse("3", WithContext(mathx.Context{Precision: 5})).Inverse()
	s.Require().NoError(err)
	s.Equal("0.33333", inv.String())

	inv, err = s.parse("3,0,0;0,3,0;0,0,3", WithContext(mathx.Context{Precision: 5}), WithCofactorLimit(2)).Inverse()
	s.Require().NoError(err)
	s.Equal("0.33333,0,0;0,0.33333,0;0,0,0.33333", inv.String())
}

func TestOptionsPanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { WithCofactorLimit(0) })
	assert.Panics(t, func() { WithCofactorLimit(MaxCofactorLimit + 1) })
	assert.Panics(t, func() { WithContext(mathx.Context{Precision: mathx.MaxPrecision + 1}) })
	assert.Panics(t, func() { WithRegistry(nil) })
	assert.Panics(t, func() { WithLogger(nil) })
	assert.NotPanics(t, func() { WithCofactorLimit(MaxCofactorLimit) })
}

func TestLoggerRecordsMethod(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatLogfmt, Output: buf})

	m, err := Parse("4,3,2;1,3,1;2,1,4", WithLogger(logger), WithCofactorLimit(2))
	require.NoError(t, err)
	_, err = m.Determinant()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "elimination")

	buf.Reset()
	_, err = m.Transpose().Inverse()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "inverse")
}

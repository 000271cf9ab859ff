// File: ops.go
// Title: Matrix Arithmetic
// Description: Element-wise and product arithmetic, transpose, integer powers,
//              trace and aggregates. All of these are exact: they only add and
//              multiply decimals. Operands are never modified; every result
//              is a fresh matrix carrying the receiver's options.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package linalgx

import (
	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/mathx"
	"github.com/msto63/gauss/foundation/utils/statx"
)

func logShape(m *Matrix) []log.Fields {
	return []log.Fields{log.Int("rows", m.rows), log.Int("cols", m.cols)}
}

func (m *Matrix) requireSameShape(op string, other *Matrix) error {
	if other == nil {
		return errors.InvalidArgument(errors.ModuleLinalgx, op, nil, "nil matrix")
	}
	if !m.sameShape(other) {
		return errors.DimensionMismatch(op, m.Shape(), other.Shape())
	}
	return nil
}

func (m *Matrix) requireSquare(op string) error {
	if !m.IsSquare() {
		return errors.NotSquare(op, m.rows, m.cols)
	}
	return nil
}

// elementwise builds a matrix of the same shape with cell (i,j) = f(m[i][j], other[i][j])
func (m *Matrix) elementwise(other *Matrix, f func(a, b mathx.Decimal) mathx.Decimal) *Matrix {
	res := m.derive(m.rows, m.cols)
	for i, row := range m.cells {
		for j, v := range row {
			res.cells[i][j] = f(v, other.cells[i][j])
		}
	}
	return res
}

// mapCells builds a matrix of the same shape with cell (i,j) = f(m[i][j])
func (m *Matrix) mapCells(f func(mathx.Decimal) mathx.Decimal) *Matrix {
	res := m.derive(m.rows, m.cols)
	for i, row := range m.cells {
		for j, v := range row {
			res.cells[i][j] = f(v)
		}
	}
	return res
}

// Add returns m + other. Shapes must match.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if err := m.requireSameShape("add", other); err != nil {
		return nil, err
	}
	return m.elementwise(other, mathx.Decimal.Add), nil
}

// Subtract returns m - other. Shapes must match.
func (m *Matrix) Subtract(other *Matrix) (*Matrix, error) {
	if err := m.requireSameShape("subtract", other); err != nil {
		return nil, err
	}
	return m.elementwise(other, mathx.Decimal.Subtract), nil
}

// ScalarMultiply returns k * m
func (m *Matrix) ScalarMultiply(k mathx.Decimal) *Matrix {
	return m.mapCells(func(v mathx.Decimal) mathx.Decimal { return v.Multiply(k) })
}

// Negate returns -m
func (m *Matrix) Negate() *Matrix {
	return m.mapCells(mathx.Decimal.Neg)
}

// Multiply returns the matrix product m * other. The column count of m must
// equal the row count of other.
func (m *Matrix) Multiply(other *Matrix) (*Matrix, error) {
	if other == nil {
		return nil, errors.InvalidArgument(errors.ModuleLinalgx, "multiply", nil, "nil matrix")
	}
	if m.cols != other.rows {
		return nil, errors.DimensionMismatch("multiply", m.Shape(), other.Shape())
	}
	return m.product(other), nil
}

func (m *Matrix) product(other *Matrix) *Matrix {
	res := m.derive(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			acc := res.cells[i][j]
			for k := 0; k < m.cols; k++ {
				a := m.cells[i][k]
				if a.IsZero() {
					continue
				}
				acc = acc.Add(a.Multiply(other.cells[k][j]))
			}
			res.cells[i][j] = acc
		}
	}
	return res
}

// Transpose returns the cols x rows transpose of m
func (m *Matrix) Transpose() *Matrix {
	res := m.derive(m.cols, m.rows)
	for i, row := range m.cells {
		for j, v := range row {
			res.cells[j][i] = v
		}
	}
	return res
}

// Power returns m raised to a non-negative integer exponent by repeated
// squaring. m^0 is the identity.
func (m *Matrix) Power(exp int) (*Matrix, error) {
	if err := m.requireSquare("power"); err != nil {
		return nil, err
	}
	if exp < 0 {
		return nil, errors.InvalidExponent("power", exp)
	}

	result := m.derive(m.rows, m.cols)
	result.setDiagonal(m.one())
	base := m.Clone()
	for exp > 0 {
		if exp&1 == 1 {
			result = result.product(base)
		}
		exp >>= 1
		if exp > 0 {
			base = base.product(base)
		}
	}
	return result, nil
}

// Trace returns the sum of the diagonal. The trace of a 0x0 matrix is zero.
func (m *Matrix) Trace() (mathx.Decimal, error) {
	if err := m.requireSquare("trace"); err != nil {
		return mathx.Decimal{}, err
	}
	acc := m.zero()
	for i := 0; i < m.rows; i++ {
		acc = acc.Add(m.cells[i][i])
	}
	return acc, nil
}

func (m *Matrix) aggregate(op string, f func([]mathx.Decimal) (mathx.Decimal, error)) (mathx.Decimal, error) {
	if m.IsEmpty() {
		return mathx.Decimal{}, errors.EmptySequence(errors.ModuleLinalgx, op)
	}
	return f(m.Cells())
}

// SumElements returns the exact sum of all cells
func (m *Matrix) SumElements() (mathx.Decimal, error) {
	return m.aggregate("sum_elements", statx.Sum)
}

// Max returns the largest cell
func (m *Matrix) Max() (mathx.Decimal, error) {
	return m.aggregate("max", statx.Max)
}

// Min returns the smallest cell
func (m *Matrix) Min() (mathx.Decimal, error) {
	return m.aggregate("min", statx.Min)
}

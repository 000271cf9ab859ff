// File: matrix.go
// Title: Decimal Matrix
// Description: The Matrix type: a rows x cols grid of mathx.Decimal cells with
//              immutable dimensions. Construction, element access, copies and
//              equality live here; arithmetic and the determinant family live
//              in their own files.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package linalgx

import (
	"fmt"

	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/utils/mathx"
	"github.com/msto63/gauss/foundation/utils/slicex"
)

// Matrix is a dense row-major matrix of decimals. Dimensions never change
// after construction; cells change only through Set. A Matrix is not safe
// for concurrent mutation.
type Matrix struct {
	rows  int
	cols  int
	cells [][]mathx.Decimal
	opts  options
}

func checkShape(op string, rows, cols int) error {
	if rows < 0 || cols < 0 || rows > MaxDimension || cols > MaxDimension {
		return errors.InvalidShape(op, rows, cols, MaxDimension)
	}
	return nil
}

// New returns a zero-filled rows x cols matrix
func New(rows, cols int, opts ...Option) (*Matrix, error) {
	if err := checkShape("new", rows, cols); err != nil {
		return nil, err
	}
	return newMatrix(rows, cols, gatherOptions(opts)), nil
}

func newMatrix(rows, cols int, o options) *Matrix {
	zero := mathx.Zero().WithLocale(o.locale).WithContext(o.ctx)
	return &Matrix{
		rows:  rows,
		cols:  cols,
		cells: slicex.Grid(rows, cols, func(int, int) mathx.Decimal { return zero }),
		opts:  o,
	}
}

// derive returns a zero-filled matrix sharing m's options
func (m *Matrix) derive(rows, cols int) *Matrix {
	return newMatrix(rows, cols, m.opts)
}

// FromGrid copies grid into a new matrix. Every row must have the same
// number of cells.
func FromGrid(grid [][]mathx.Decimal, opts ...Option) (*Matrix, error) {
	rows, cols := len(grid), 0
	if rows > 0 {
		cols = len(grid[0])
	}
	if err := checkShape("from_grid", rows, cols); err != nil {
		return nil, err
	}
	for i, row := range grid {
		if len(row) != cols {
			return nil, errors.DimensionMismatch("from_grid",
				fmt.Sprintf("row 0 has %d cells", cols), fmt.Sprintf("row %d has %d cells", i, len(row)))
		}
	}

	m := newMatrix(rows, cols, gatherOptions(opts))
	for i, row := range grid {
		copy(m.cells[i], row)
	}
	return m, nil
}

// Identity returns the n x n identity matrix
func Identity(n int, opts ...Option) (*Matrix, error) {
	if err := checkShape("identity", n, n); err != nil {
		return nil, err
	}
	m := newMatrix(n, n, gatherOptions(opts))
	m.setDiagonal(m.one())
	return m, nil
}

func (m *Matrix) one() mathx.Decimal {
	return mathx.One().WithLocale(m.opts.locale).WithContext(m.opts.ctx)
}

func (m *Matrix) zero() mathx.Decimal {
	return mathx.Zero().WithLocale(m.opts.locale).WithContext(m.opts.ctx)
}

func (m *Matrix) setDiagonal(v mathx.Decimal) {
	for i := 0; i < m.rows && i < m.cols; i++ {
		m.cells[i][i] = v
	}
}

// Rows returns the number of rows
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns
func (m *Matrix) Cols() int { return m.cols }

// Shape renders the dimensions as "rows x cols"
func (m *Matrix) Shape() string {
	return fmt.Sprintf("%dx%d", m.rows, m.cols)
}

// Locale returns the locale tag of the matrix
func (m *Matrix) Locale() string { return m.opts.locale }

// Context returns the precision context of the matrix
func (m *Matrix) Context() mathx.Context { return m.opts.ctx }

// IsSquare reports whether rows == cols
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// IsEmpty reports whether the matrix has no cells
func (m *Matrix) IsEmpty() bool { return m.rows == 0 || m.cols == 0 }

func (m *Matrix) checkIndex(op string, i, j int) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return errors.IndexOutOfRange(op, i, j, m.rows, m.cols)
	}
	return nil
}

// At returns the cell at row i, column j
func (m *Matrix) At(i, j int) (mathx.Decimal, error) {
	if err := m.checkIndex("at", i, j); err != nil {
		return mathx.Decimal{}, err
	}
	return m.cells[i][j], nil
}

// Set replaces the cell at row i, column j
func (m *Matrix) Set(i, j int, v mathx.Decimal) error {
	if err := m.checkIndex("set", i, j); err != nil {
		return err
	}
	m.cells[i][j] = v
	return nil
}

// Row returns a copy of row i
func (m *Matrix) Row(i int) ([]mathx.Decimal, error) {
	if i < 0 || i >= m.rows {
		return nil, errors.IndexOutOfRange("row", i, 0, m.rows, m.cols)
	}
	return slicex.Clone(m.cells[i]), nil
}

// Column returns a copy of column j
func (m *Matrix) Column(j int) ([]mathx.Decimal, error) {
	if j < 0 || j >= m.cols {
		return nil, errors.IndexOutOfRange("column", 0, j, m.rows, m.cols)
	}
	return slicex.Map(m.cells, func(row []mathx.Decimal) mathx.Decimal { return row[j] }), nil
}

// Grid returns a copy of the cells
func (m *Matrix) Grid() [][]mathx.Decimal {
	return slicex.Map(m.cells, slicex.Clone[mathx.Decimal])
}

// Cells returns a copy of the cells in row-major order
func (m *Matrix) Cells() []mathx.Decimal {
	out := make([]mathx.Decimal, 0, m.rows*m.cols)
	for _, row := range m.cells {
		out = append(out, row...)
	}
	return out
}

// Clone returns a deep copy sharing m's options
func (m *Matrix) Clone() *Matrix {
	c := m.derive(m.rows, m.cols)
	for i, row := range m.cells {
		copy(c.cells[i], row)
	}
	return c
}

func (m *Matrix) sameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// Equal reports whether both matrices have the same shape and exactly equal
// cells. Locale and context are not compared.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.EqualWithin(other, mathx.Zero())
}

// EqualWithin reports whether both matrices have the same shape and every
// pair of cells differs by at most |tol|
func (m *Matrix) EqualWithin(other *Matrix, tol mathx.Decimal) bool {
	if other == nil || !m.sameShape(other) {
		return false
	}
	tol = tol.Abs()
	for i, row := range m.cells {
		for j, v := range row {
			if v.Subtract(other.cells[i][j]).Abs().GreaterThan(tol) {
				return false
			}
		}
	}
	return true
}

// IsZeroMatrix reports whether every cell is zero
func (m *Matrix) IsZeroMatrix() bool {
	return slicex.Every(m.cells, func(row []mathx.Decimal) bool {
		return slicex.Every(row, mathx.Decimal.IsZero)
	})
}

// IsIdentityMatrix reports whether m is square with ones on the diagonal
// and zeros elsewhere
func (m *Matrix) IsIdentityMatrix() bool {
	if !m.IsSquare() {
		return false
	}
	one := mathx.One()
	for i, row := range m.cells {
		for j, v := range row {
			if i == j && !v.Equal(one) || i != j && !v.IsZero() {
				return false
			}
		}
	}
	return true
}

// IsSymmetric reports whether m is square and equal to its transpose
func (m *Matrix) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := i + 1; j < m.cols; j++ {
			if !m.cells[i][j].Equal(m.cells[j][i]) {
				return false
			}
		}
	}
	return true
}

// File: determinant.go
// Title: Determinant, Cofactors and Inverse
// Description: Determinant and inverse of square matrices. Matrices up to the
//              cofactor limit are handled by cofactor expansion; larger ones
//              by fraction-free (Bareiss) elimination on the cells scaled to
//              integers. Both paths give the exact determinant, and the
//              inverse divides the adjugate by it with one rounding per cell.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Exact fraction-free elimination replaces rounded partial pivoting

package linalgx

import (
	"math/big"
	"strings"

	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/mathx"
)

const (
	methodClosedForm  = "closed_form"
	methodCofactor    = "cofactor"
	methodElimination = "elimination"
)

func (m *Matrix) method() string {
	switch {
	case m.rows <= 2:
		return methodClosedForm
	case m.rows <= m.opts.cofactorLimit:
		return methodCofactor
	default:
		return methodElimination
	}
}

func (m *Matrix) logMethod(op, method string) {
	m.opts.logger.Debug(op, append(logShape(m), log.String("method", method))...)
}

// Determinant returns the determinant of a square matrix. The determinant
// of a 0x0 matrix is one.
func (m *Matrix) Determinant() (mathx.Decimal, error) {
	if err := m.requireSquare("determinant"); err != nil {
		return mathx.Decimal{}, err
	}

	method := m.method()
	m.logMethod("determinant", method)
	if method == methodElimination {
		return m.eliminationDeterminant(), nil
	}
	return m.expand(seq(m.rows), seq(m.cols)), nil
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func without(s []int, idx int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:idx]...)
	return append(out, s[idx+1:]...)
}

// expand computes the exact determinant of the submatrix selected by rows and
// cols, expanding along its first row.
func (m *Matrix) expand(rows, cols []int) mathx.Decimal {
	c := m.cells
	switch len(rows) {
	case 0:
		return m.one()
	case 1:
		return c[rows[0]][cols[0]]
	case 2:
		a, b := c[rows[0]][cols[0]], c[rows[0]][cols[1]]
		d, e := c[rows[1]][cols[0]], c[rows[1]][cols[1]]
		return a.Multiply(e).Subtract(b.Multiply(d))
	}

	acc := m.zero()
	rest := rows[1:]
	for k, col := range cols {
		v := c[rows[0]][col]
		if v.IsZero() {
			continue
		}
		term := v.Multiply(m.expand(rest, without(cols, k)))
		if k%2 == 1 {
			term = term.Neg()
		}
		acc = acc.Add(term)
	}
	return acc
}

// Submatrix returns m without row i and column j
func (m *Matrix) Submatrix(i, j int) (*Matrix, error) {
	if err := m.checkIndex("submatrix", i, j); err != nil {
		return nil, err
	}
	res := m.derive(m.rows-1, m.cols-1)
	for r, src := range without(seq(m.rows), i) {
		for c, col := range without(seq(m.cols), j) {
			res.cells[r][c] = m.cells[src][col]
		}
	}
	return res, nil
}

// Minor returns the determinant of m without row i and column j
func (m *Matrix) Minor(i, j int) (mathx.Decimal, error) {
	if err := m.requireSquare("minor"); err != nil {
		return mathx.Decimal{}, err
	}
	sub, err := m.Submatrix(i, j)
	if err != nil {
		return mathx.Decimal{}, err
	}
	return sub.Determinant()
}

// Cofactor returns (-1)^(i+j) times the (i,j) minor
func (m *Matrix) Cofactor(i, j int) (mathx.Decimal, error) {
	minor, err := m.Minor(i, j)
	if err != nil {
		return mathx.Decimal{}, err
	}
	if (i+j)%2 == 1 {
		return minor.Neg(), nil
	}
	return minor, nil
}

// Adjugate returns the transpose of the cofactor matrix
func (m *Matrix) Adjugate() (*Matrix, error) {
	if err := m.requireSquare("adjugate"); err != nil {
		return nil, err
	}
	res := m.derive(m.rows, m.cols)
	if m.rows == 1 {
		res.cells[0][0] = m.one()
		return res, nil
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			cof, err := m.Cofactor(i, j)
			if err != nil {
				return nil, err
			}
			res.cells[j][i] = cof
		}
	}
	return res, nil
}

// Inverse returns the inverse of a square matrix rounded to the matrix
// context. A zero determinant fails with SINGULAR_MATRIX.
func (m *Matrix) Inverse() (*Matrix, error) {
	if err := m.requireSquare("inverse"); err != nil {
		return nil, err
	}

	method := m.method()
	m.logMethod("inverse", method)
	if method == methodElimination {
		return m.gaussJordanInverse()
	}

	det := m.expand(seq(m.rows), seq(m.cols))
	if det.IsZero() {
		return nil, errors.SingularMatrix("inverse")
	}
	adj, err := m.Adjugate()
	if err != nil {
		return nil, err
	}
	ctx := m.opts.ctx
	for i, row := range adj.cells {
		for j, v := range row {
			if adj.cells[i][j], err = v.Divide(det, ctx); err != nil {
				return nil, err
			}
		}
	}
	return adj, nil
}

// scaled returns the cells as integers sharing one decimal scale: every
// cell times 10^scale
func (m *Matrix) scaled() ([][]*big.Int, int) {
	scale := 0
	for _, row := range m.cells {
		for _, v := range row {
			if !v.IsInteger() {
				scale = max(scale, len(v.FractionDigits()))
			}
		}
	}
	out := make([][]*big.Int, m.rows)
	for i, row := range m.cells {
		out[i] = make([]*big.Int, m.cols)
		for j, v := range row {
			frac := ""
			if !v.IsInteger() {
				frac = v.FractionDigits()
			}
			c, _ := new(big.Int).SetString(v.IntegerDigits()+frac+strings.Repeat("0", scale-len(frac)), 10)
			if v.IsNegative() {
				c.Neg(c)
			}
			out[i][j] = c
		}
	}
	return out, scale
}

// fromScaled returns x / 10^scale as a decimal carrying m's options
func (m *Matrix) fromScaled(x *big.Int, scale int) mathx.Decimal {
	digits := new(big.Int).Abs(x).String()
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}
	cut := len(digits) - scale
	// digits are ASCII and the options were validated at construction
	d, _ := mathx.New(mathx.Parts{
		Integer:  digits[:cut],
		Fraction: digits[cut:],
		Negative: x.Sign() < 0,
		Locale:   m.opts.locale,
		Context:  m.opts.ctx,
	})
	return d
}

// fractionFree runs Bareiss elimination in place on the first n columns of
// rows. Every division is exact. With jordan set the rows above each pivot
// are reduced as well, which leaves the last pivot on the whole diagonal. It
// returns the last pivot and the sign of the row permutation; ok is false
// when a column has no non-zero pivot.
func fractionFree(rows [][]*big.Int, n int, jordan bool) (last *big.Int, sign int, ok bool) {
	prev := big.NewInt(1)
	sign = 1
	for k := 0; k < n; k++ {
		p := k
		for p < n && rows[p][k].Sign() == 0 {
			p++
		}
		if p == n {
			return nil, 0, false
		}
		if p != k {
			rows[p], rows[k] = rows[k], rows[p]
			sign = -sign
		}

		pivot, first, from := rows[k][k], k+1, k
		if jordan {
			first, from = 0, 0
		}
		for i := first; i < n; i++ {
			if i == k {
				continue
			}
			factor := rows[i][k]
			for j := from; j < len(rows[i]); j++ {
				t := new(big.Int).Mul(pivot, rows[i][j])
				t.Sub(t, new(big.Int).Mul(factor, rows[k][j]))
				rows[i][j] = t.Quo(t, prev)
			}
		}
		prev = pivot
	}
	return prev, sign, true
}

func (m *Matrix) eliminationDeterminant() mathx.Decimal {
	a, scale := m.scaled()
	last, sign, ok := fractionFree(a, m.rows, false)
	if !ok {
		return m.zero()
	}
	if sign < 0 {
		last.Neg(last)
	}
	return m.fromScaled(last, scale*m.rows)
}

func (m *Matrix) gaussJordanInverse() (*Matrix, error) {
	n := m.rows
	a, scale := m.scaled()
	for i := range a {
		unit := make([]*big.Int, n)
		for j := range unit {
			unit[j] = new(big.Int)
		}
		unit[i].SetInt64(1)
		a[i] = append(a[i], unit...)
	}

	last, _, ok := fractionFree(a, n, true)
	if !ok {
		return nil, errors.SingularMatrix("inverse")
	}

	// a = 10^scale * A, so inv(A) = 10^scale * adj(a) / det(a)
	shift := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	det := m.fromScaled(last, 0)
	inv := m.derive(n, n)
	for i, row := range a {
		for j, v := range row[n:] {
			cell, err := m.fromScaled(new(big.Int).Mul(v, shift), 0).Divide(det, m.opts.ctx)
			if err != nil {
				return nil, err
			}
			inv.cells[i][j] = cell
		}
	}
	return inv, nil
}

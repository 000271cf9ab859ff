// File: grammar.go
// Title: Matrix Text Grammar
// Description: Parsing and rendering of the matrix text form. Rows are
//              separated by ";" and cells by ",". Locales whose decimal
//              separator is "," separate cells by "|" instead. Cells are
//              numbers in the matrix locale.
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
	"strings"

	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/core/i18n"
	"github.com/msto63/gauss/foundation/utils/mathx"
	"github.com/msto63/gauss/foundation/utils/slicex"
)

const (
	// RowSeparator separates the rows of the text form
	RowSeparator = ";"

	// CellSeparator separates cells unless the locale uses "," as decimal separator
	CellSeparator = ","

	// AltCellSeparator separates cells for comma-decimal locales
	AltCellSeparator = "|"
)

// CellSeparatorFor returns the cell separator of the text form in loc
func CellSeparatorFor(loc i18n.Locale) string {
	if loc.Decimal == CellSeparator {
		return AltCellSeparator
	}
	return CellSeparator
}

// Parse reads a matrix from its text form, for example "1,2;3,4" or, with
// WithLocale("de-DE"), "1,5|2;3|4,25". Cells are parsed in the locale given
// by the options. Empty input, empty rows or cells and unparsable cells fail
// with PARSE_FAILURE; rows of different length fail with DIMENSION_MISMATCH.
func Parse(text string, opts ...Option) (*Matrix, error) {
	o := gatherOptions(opts)
	loc, err := o.registry.Lookup(o.locale)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(text) == "" {
		return nil, errors.ParseFailure(errors.ModuleLinalgx, "parse", text, "empty input")
	}

	sep := CellSeparatorFor(loc)
	rows := strings.Split(text, RowSeparator)
	if err := checkShape("parse", len(rows), 0); err != nil {
		return nil, err
	}

	grid := make([][]mathx.Decimal, len(rows))
	for i, line := range rows {
		if strings.TrimSpace(line) == "" {
			return nil, errors.ParseFailure(errors.ModuleLinalgx, "parse", text, fmt.Sprintf("row %d is empty", i))
		}

		fields := strings.Split(line, sep)
		if i > 0 && len(fields) != len(grid[0]) {
			return nil, errors.DimensionMismatch("parse",
				fmt.Sprintf("row 0 has %d cells", len(grid[0])), fmt.Sprintf("row %d has %d cells", i, len(fields)))
		}

		grid[i], err = parseRow(loc, fields, i, text)
		if err != nil {
			return nil, err
		}
	}

	if err := checkShape("parse", len(grid), len(grid[0])); err != nil {
		return nil, err
	}
	m := newMatrix(len(grid), len(grid[0]), o)
	m.cells = grid
	o.logger.Debug("parsed matrix", logShape(m)...)
	return m, nil
}

func parseRow(loc i18n.Locale, fields []string, row int, text string) ([]mathx.Decimal, error) {
	cells := make([]mathx.Decimal, len(fields))
	for j, field := range fields {
		cell := strings.TrimSpace(field)
		if cell == "" {
			return nil, errors.ParseFailure(errors.ModuleLinalgx, "parse", text, fmt.Sprintf("cell (%d,%d) is empty", row, j))
		}
		d, err := loc.Parse(cell)
		if err != nil {
			return nil, errors.ParseFailure(errors.ModuleLinalgx, "parse", text,
				fmt.Sprintf("cell (%d,%d) %q is not a number in %s", row, j, cell, loc.Tag))
		}
		cells[j] = d
	}
	return cells, nil
}

// String renders the canonical text form: canonical decimals, "," between
// cells and ";" between rows. An empty matrix renders as "".
func (m *Matrix) String() string {
	return m.render(CellSeparator, mathx.Decimal.Canonical)
}

// Format renders the text form in the locale named by tag; an empty tag
// means the matrix locale. Cells are written without grouping separators so
// they never collide with the cell separator.
func (m *Matrix) Format(tag string) (string, error) {
	if tag == "" {
		tag = m.opts.locale
	}
	loc, err := m.opts.registry.Lookup(tag)
	if err != nil {
		return "", err
	}
	plain := loc
	plain.Grouping = ""
	plain.GroupingAliases = nil
	return m.render(CellSeparatorFor(loc), plain.Format), nil
}

func (m *Matrix) render(sep string, cell func(mathx.Decimal) string) string {
	if m.IsEmpty() {
		return ""
	}
	return slicex.Join(m.cells, RowSeparator, func(row []mathx.Decimal) string {
		return slicex.Join(row, sep, cell)
	})
}

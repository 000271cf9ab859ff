package cmd

import (
	"context"
	"strings"

	"github.com/msto63/gauss/foundation/utils/linalgx"
	"github.com/msto63/gauss/foundation/utils/mathx"
	"github.com/msto63/gauss/internal/workspace"
)

// RefPrefix marks an operand read from the workspace
const RefPrefix = "@"

func (s *session) entry(ctx context.Context, name string) (workspace.Entry, error) {
	store, err := s.workspace()
	if err != nil {
		return workspace.Entry{}, err
	}
	return store.Get(ctx, name)
}

// decimal parses text in the session locale, or reads a workspace value
func (s *session) decimal(ctx context.Context, text string) (mathx.Decimal, error) {
	if name, ok := strings.CutPrefix(text, RefPrefix); ok {
		e, err := s.entry(ctx, name)
		if err != nil {
			return mathx.Decimal{}, err
		}
		d, err := e.Value()
		if err != nil {
			return mathx.Decimal{}, err
		}
		return d.WithContext(s.settings.MathContext()), nil
	}

	d, err := s.registry.Parse(text, s.settings.Locale)
	if err != nil {
		return mathx.Decimal{}, err
	}
	return d.WithContext(s.settings.MathContext()), nil
}

// integer parses an integral operand such as an exponent or a place count
func (s *session) integer(ctx context.Context, text string) (int, error) {
	d, err := s.decimal(ctx, text)
	if err != nil {
		return 0, err
	}
	n, err := d.Int64()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func (s *session) matrixOptions() []linalgx.Option {
	return s.settings.MatrixOptions(s.logger.WithName("linalgx"), s.registry)
}

// matrix parses text with the session matrix options, or reads a
// workspace matrix
func (s *session) matrix(ctx context.Context, text string) (*linalgx.Matrix, error) {
	if name, ok := strings.CutPrefix(text, RefPrefix); ok {
		e, err := s.entry(ctx, name)
		if err != nil {
			return nil, err
		}
		return e.Matrix(s.matrixOptions()...)
	}
	return linalgx.Parse(text, s.matrixOptions()...)
}

// decimals parses a sequence. A workspace matrix contributes its cells in
// row-major order.
func (s *session) decimals(ctx context.Context, args []string) ([]mathx.Decimal, error) {
	var out []mathx.Decimal
	for _, arg := range args {
		if name, ok := strings.CutPrefix(arg, RefPrefix); ok {
			e, err := s.entry(ctx, name)
			if err != nil {
				return nil, err
			}
			if e.Kind == workspace.KindMatrix {
				m, err := e.Matrix(s.matrixOptions()...)
				if err != nil {
					return nil, err
				}
				out = append(out, m.Cells()...)
				continue
			}
		}
		d, err := s.decimal(ctx, arg)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *session) save(ctx context.Context, e workspace.Entry) error {
	store, err := s.workspace()
	if err != nil {
		return err
	}
	_, err = store.Save(ctx, e)
	return err
}

// saveValue stores a result under name when name is set
func (s *session) saveValue(ctx context.Context, name string, d mathx.Decimal) error {
	if name == "" {
		return nil
	}
	return s.save(ctx, workspace.ValueEntry(name, d.WithLocale(s.settings.Locale)))
}

// saveMatrix stores a result under name when name is set
func (s *session) saveMatrix(ctx context.Context, name string, m *linalgx.Matrix) error {
	if name == "" {
		return nil
	}
	return s.save(ctx, workspace.MatrixEntry(name, m))
}

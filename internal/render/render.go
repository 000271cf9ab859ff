// Package render turns gauss results into terminal output.
package render

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	gerror "github.com/msto63/gauss/foundation/core/error"
	"github.com/msto63/gauss/foundation/core/i18n"
	"github.com/msto63/gauss/foundation/utils/linalgx"
	"github.com/msto63/gauss/foundation/utils/mathx"
	"github.com/msto63/gauss/foundation/utils/slicex"
	"github.com/msto63/gauss/foundation/utils/statx"
	"github.com/msto63/gauss/foundation/utils/timex"
	"github.com/msto63/gauss/internal/workspace"
)

// Renderer formats values, matrices, summaries and workspace listings in
// one locale. A Renderer writing to something other than a terminal emits
// no color sequences.
type Renderer struct {
	styles   Styles
	registry *i18n.Registry
	locale   string
	plain    bool
}

// Option configures a Renderer
type Option func(*Renderer)

// WithLocale sets the output locale. An empty tag keeps the locale each
// value carries.
func WithLocale(tag string) Option {
	return func(r *Renderer) { r.locale = tag }
}

// WithRegistry sets the locale registry
func WithRegistry(reg *i18n.Registry) Option {
	return func(r *Renderer) {
		if reg != nil {
			r.registry = reg
		}
	}
}

// WithPlain disables boxes and tables. Plain output is the text form
// accepted back by the parsers.
func WithPlain(plain bool) Option {
	return func(r *Renderer) { r.plain = plain }
}

// New returns a Renderer whose color profile matches w
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		styles:   NewStyles(lipgloss.NewRenderer(w)),
		registry: i18n.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Decimal formats v in the renderer locale
func (r *Renderer) Decimal(v mathx.Decimal) (string, error) {
	return r.registry.Format(v, r.locale)
}

// Value renders a single result
func (r *Renderer) Value(v mathx.Decimal) (string, error) {
	text, err := r.Decimal(v)
	if err != nil {
		return "", err
	}
	if r.plain {
		return text, nil
	}
	return r.styles.Value.Render(text), nil
}

// Matrix renders m with right-aligned columns in a box titled with its
// shape. Plain output is the locale matrix grammar.
func (r *Renderer) Matrix(m *linalgx.Matrix) (string, error) {
	tag := r.locale
	if tag == "" {
		tag = m.Locale()
	}
	if r.plain {
		return m.Format(tag)
	}

	loc, err := r.registry.Lookup(tag)
	if err != nil {
		return "", err
	}
	title := r.styles.Title.Render(m.Shape())
	if m.IsEmpty() {
		return lipgloss.JoinVertical(lipgloss.Left, title, r.styles.Box.Render(r.styles.Subtitle.Render("empty"))), nil
	}

	columns := make([]string, m.Cols())
	for j := range columns {
		col, err := m.Column(j)
		if err != nil {
			return "", err
		}
		cells := slicex.Map(col, loc.Format)
		columns[j] = r.styles.Cell.Render(strings.Join(cells, "\n"))
	}

	parts := make([]string, 0, 2*len(columns))
	for j, c := range columns {
		if j > 0 {
			parts = append(parts, "  ")
		}
		parts = append(parts, c)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.JoinVertical(lipgloss.Left, title, r.styles.Box.Render(body)), nil
}

// Summary renders the descriptive statistics of a sequence as aligned
// label and value lines
func (r *Renderer) Summary(s statx.Summary) (string, error) {
	type line struct {
		label string
		value mathx.Decimal
	}
	lines := []line{
		{"sum", s.Sum},
		{"mean", s.Mean},
		{"median", s.Median},
		{"min", s.Min},
		{"max", s.Max},
		{"range", s.Range},
	}
	if s.HasSpread {
		lines = append(lines, line{"variance", s.Variance}, line{"stddev", s.StandardDeviation})
	}

	labels := []string{"count"}
	values := []string{fmt.Sprint(s.Count)}
	for _, l := range lines {
		text, err := r.Decimal(l.value)
		if err != nil {
			return "", err
		}
		labels = append(labels, l.label)
		values = append(values, text)
	}
	modes, err := slicex.MapErr(s.Modes, r.Decimal)
	if err != nil {
		return "", err
	}
	labels = append(labels, "modes")
	values = append(values, slicex.Join(modes, " ", nil))

	if r.plain {
		out := make([]string, len(labels))
		for i := range labels {
			out[i] = labels[i] + "\t" + values[i]
		}
		return strings.Join(out, "\n"), nil
	}

	left := r.styles.Label.Render(strings.Join(labels, "\n"))
	right := r.styles.Value.Render(strings.Join(values, "\n"))
	return r.styles.Box.Render(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)), nil
}

// Entries renders a workspace listing
func (r *Renderer) Entries(entries []workspace.Entry) string {
	if r.plain {
		out := slicex.Map(entries, func(e workspace.Entry) string {
			return strings.Join([]string{e.Name, string(e.Kind), e.Locale, e.Canonical}, "\t")
		})
		return strings.Join(out, "\n")
	}
	if len(entries) == 0 {
		return r.styles.Help.Render("workspace is empty")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Label).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			return r.styles.Row
		}).
		Headers("NAME", "KIND", "LOCALE", "VALUE", "UPDATED")
	now := time.Now()
	for _, e := range entries {
		t.Row(e.Name, string(e.Kind), e.Locale, e.Canonical, timex.Ago(e.UpdatedAt, now))
	}
	return t.String()
}

// Locales renders the locales of a registry
func (r *Renderer) Locales(locales []i18n.Locale) string {
	example := mathx.MustNewDecimal("-1234567.89")
	if r.plain {
		out := slicex.Map(locales, func(l i18n.Locale) string {
			return l.Tag + "\t" + l.Format(example)
		})
		return strings.Join(out, "\n")
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.styles.Label).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return r.styles.Header
			}
			return r.styles.Row
		}).
		Headers("TAG", "NAME", "DECIMAL", "GROUPING", "EXAMPLE")
	for _, l := range locales {
		t.Row(l.Tag, l.Name, quote(l.Decimal), quote(l.Grouping), l.Format(example))
	}
	return t.String()
}

func quote(sep string) string {
	if sep == "" {
		return "none"
	}
	return fmt.Sprintf("%q", sep)
}

// Error renders err with its error code when it carries one
func (r *Renderer) Error(err error) string {
	if err == nil {
		return ""
	}
	var ge *gerror.Error
	if stderrors.As(err, &ge) && ge.Code() != gerror.CodeUnknown {
		return r.styles.Code.Render(string(ge.Code())) + " " + r.styles.Error.Render(err.Error())
	}
	return r.styles.Error.Render("error: " + err.Error())
}

// Success renders a short confirmation
func (r *Renderer) Success(msg string) string {
	if r.plain {
		return msg
	}
	return r.styles.OK.Render(msg)
}

// Help renders a muted hint line
func (r *Renderer) Help(msg string) string {
	return r.styles.Help.Render(msg)
}

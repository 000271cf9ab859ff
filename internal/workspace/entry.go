package workspace

import (
	"time"

	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/core/validation"
	"github.com/msto63/gauss/foundation/utils/linalgx"
	"github.com/msto63/gauss/foundation/utils/mathx"
	"github.com/msto63/gauss/foundation/utils/validationx"
)

// Kind tells what an entry holds
type Kind string

const (
	KindValue  Kind = "value"
	KindMatrix Kind = "matrix"
)

var namePattern = validationx.Pattern(`^[A-Za-z_][A-Za-z0-9_.-]*$`,
	"a letter or underscore followed by letters, digits, '_', '.' or '-'")

var nameRules = validation.NewValidatorChain("name").
	Add(validationx.Required, validationx.MaxLength(64), namePattern).
	StopOnFirstError(true)

var kindRules = validation.NewValidatorChain("kind").
	Add(validationx.OneOf(string(KindValue), string(KindMatrix)))

var localeRules = validation.NewValidatorChain("locale").
	Add(validationx.Required, validationx.Locale).
	StopOnFirstError(true)

// ParseKind accepts "value" and "matrix"; the empty string means any kind
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return "", nil
	}
	if err := kindRules.Validate(s).ToError(errors.ModuleWorkspace, "parse_kind"); err != nil {
		return "", err
	}
	return Kind(s), nil
}

// Entry is one named value or matrix. Canonical holds the canonical text
// form: a plain decimal, or the canonical matrix grammar.
type Entry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      Kind      `json:"kind"`
	Canonical string    `json:"canonical"`
	Locale    string    `json:"locale"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ValueEntry builds an entry holding d
func ValueEntry(name string, d mathx.Decimal) Entry {
	return Entry{Name: name, Kind: KindValue, Canonical: d.Canonical(), Locale: d.Locale()}
}

// MatrixEntry builds an entry holding m
func MatrixEntry(name string, m *linalgx.Matrix) Entry {
	return Entry{Name: name, Kind: KindMatrix, Canonical: m.String(), Locale: m.Locale()}
}

// Validate checks the name, kind, locale and canonical text
func (e Entry) Validate() error {
	err := validation.Combine(
		nameRules.Validate(e.Name),
		kindRules.Validate(string(e.Kind)),
		localeRules.Validate(e.Locale),
	).ToError(errors.ModuleWorkspace, "validate")
	if err != nil {
		return err
	}
	switch e.Kind {
	case KindValue:
		_, err := e.Value()
		return err
	case KindMatrix:
		_, err := e.Matrix()
		return err
	}
	return errors.InvalidArgument(errors.ModuleWorkspace, "validate", e.Kind, "kind must be value or matrix")
}

// Value decodes a value entry, tagged with the entry locale
func (e Entry) Value() (mathx.Decimal, error) {
	if e.Kind != KindValue {
		return mathx.Decimal{}, errors.InvalidArgument(errors.ModuleWorkspace, "value", e.Name, "entry is not a value")
	}
	d, err := mathx.NewDecimal(e.Canonical)
	if err != nil {
		return mathx.Decimal{}, err
	}
	return d.WithLocale(e.Locale), nil
}

// Matrix decodes a matrix entry. The matrix takes the entry locale unless
// opts override it.
func (e Entry) Matrix(opts ...linalgx.Option) (*linalgx.Matrix, error) {
	if e.Kind != KindMatrix {
		return nil, errors.InvalidArgument(errors.ModuleWorkspace, "matrix", e.Name, "entry is not a matrix")
	}
	canonical, err := linalgx.Parse(e.Canonical, linalgx.WithLocale(mathx.DefaultLocale))
	if err != nil {
		return nil, err
	}
	return linalgx.FromGrid(canonical.Grid(), append([]linalgx.Option{linalgx.WithLocale(e.Locale)}, opts...)...)
}

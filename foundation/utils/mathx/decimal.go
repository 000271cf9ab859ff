// File: decimal.go
// Title: Decimal Value Implementation
// Description: Immutable arbitrary-precision decimal value stored as sign plus
//              integer and fraction digit strings, tagged with the locale used
//              to format it, a precision context for inexact operations and an
//              angle mode for trigonometric collaborators.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method for display purposes
// - 2026-10-16 v0.2.0: Digit string representation, Parts builder, locale and context tags

package mathx

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/utils/stringx"
)

// DefaultLocale is the locale tag used when none is given
const DefaultLocale = "en-US"

// Decimal is an immutable arbitrary-precision decimal number.
//
// Values are always stored normalized: the integer digits carry no leading
// zeros, the fraction digits no trailing zeros, an empty part is "0" and zero
// is never negative. The zero value of Decimal is a valid zero.
type Decimal struct {
	integer  string
	fraction string
	negative bool

	locale string
	ctx    Context
	angle  AngleMode
}

// Parts holds the fields of a Decimal for construction.
//
// Defaults: empty digit strings mean "0", an empty Locale means DefaultLocale,
// a zero Context means DefaultContext and the zero Angle is radians.
type Parts struct {
	Integer  string
	Fraction string
	Negative bool
	Locale   string
	Context  Context
	Angle    AngleMode
}

// New builds a Decimal from its parts. Digit strings may only contain ASCII
// digits; signs and separators belong to the locale layer.
func New(p Parts) (Decimal, error) {
	if p.Integer != "" && !stringx.IsDigits(p.Integer) {
		return Decimal{}, errors.InvalidFormat(errors.ModuleMathx, p.Integer, "ASCII digits")
	}
	if p.Fraction != "" && !stringx.IsDigits(p.Fraction) {
		return Decimal{}, errors.InvalidFormat(errors.ModuleMathx, p.Fraction, "ASCII digits")
	}
	if err := p.Context.Validate(); err != nil {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "new", p.Context, err.Error())
	}

	d := Decimal{
		integer:  stringx.TrimLeadingZeros(p.Integer),
		fraction: stringx.TrimTrailingZeros(p.Fraction),
		negative: p.Negative,
		locale:   p.Locale,
		ctx:      p.Context,
		angle:    p.Angle,
	}
	if d.IsZero() {
		d.negative = false
	}
	return d, nil
}

// NewDecimal parses the canonical form "[-]digits[.digits]". A leading "+"
// and an omitted integer part (".5") are accepted. Locale-formatted text goes
// through the i18n package instead.
func NewDecimal(s string) (Decimal, error) {
	text := strings.TrimSpace(s)
	p := Parts{}

	if strings.HasPrefix(text, "-") {
		p.Negative = true
		text = text[1:]
	} else if strings.HasPrefix(text, "+") {
		text = text[1:]
	}

	intPart, fracPart, hasDot := strings.Cut(text, ".")
	if hasDot && fracPart == "" || !hasDot && intPart == "" || intPart == "" && fracPart == "" {
		return Decimal{}, errors.InvalidFormat(errors.ModuleMathx, s, "[-]digits[.digits]")
	}
	if intPart != "" && !stringx.IsDigits(intPart) || fracPart != "" && !stringx.IsDigits(fracPart) {
		return Decimal{}, errors.InvalidFormat(errors.ModuleMathx, s, "[-]digits[.digits]")
	}

	p.Integer = intPart
	p.Fraction = fracPart
	return New(p)
}

// MustNewDecimal creates a new Decimal from a canonical string, panicking on error.
// Use this for constants.
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return fromBig(new(big.Int).SetInt64(i), 0, Decimal{})
}

// Zero returns a decimal representing zero
func Zero() Decimal {
	return Decimal{}
}

// One returns a decimal representing one
func One() Decimal {
	return Decimal{integer: "1"}
}

// IntegerDigits returns the integer digits without sign
func (d Decimal) IntegerDigits() string {
	if d.integer == "" {
		return "0"
	}
	return d.integer
}

// FractionDigits returns the fraction digits, "0" when there are none
func (d Decimal) FractionDigits() string {
	if d.fraction == "" {
		return "0"
	}
	return d.fraction
}

// Locale returns the locale tag the value formats with
func (d Decimal) Locale() string {
	if d.locale == "" {
		return DefaultLocale
	}
	return d.locale
}

// Context returns the precision context carried by the value
func (d Decimal) Context() Context {
	return d.ctx.effective()
}

// AngleMode returns the angle mode carried by the value
func (d Decimal) AngleMode() AngleMode {
	return d.angle
}

// Parts returns the fields of d with defaults applied
func (d Decimal) Parts() Parts {
	return Parts{
		Integer:  d.IntegerDigits(),
		Fraction: d.FractionDigits(),
		Negative: d.negative,
		Locale:   d.Locale(),
		Context:  d.Context(),
		Angle:    d.angle,
	}
}

// WithLocale returns a copy tagged with locale
func (d Decimal) WithLocale(locale string) Decimal {
	d.locale = locale
	return d
}

// WithContext returns a copy carrying ctx
func (d Decimal) WithContext(ctx Context) Decimal {
	d.ctx = ctx
	return d
}

// WithAngleMode returns a copy carrying mode
func (d Decimal) WithAngleMode(mode AngleMode) Decimal {
	d.angle = mode
	return d
}

// Normalized returns d with redundant zeros removed. Values built by this
// package are already normalized; this exists for values assembled from Parts
// by callers that compare digit fields directly.
func (d Decimal) Normalized() Decimal {
	d.integer = stringx.TrimLeadingZeros(d.integer)
	d.fraction = stringx.TrimTrailingZeros(d.fraction)
	if d.integer == "0" && d.fraction == "0" {
		d.negative = false
	}
	return d
}

// IsZero reports whether d equals zero
func (d Decimal) IsZero() bool {
	return d.IntegerDigits() == "0" && d.FractionDigits() == "0"
}

// IsNegative reports whether d < 0
func (d Decimal) IsNegative() bool {
	return d.negative
}

// IsPositive reports whether d > 0
func (d Decimal) IsPositive() bool {
	return !d.negative && !d.IsZero()
}

// Sign returns -1, 0 or 1
func (d Decimal) Sign() int {
	switch {
	case d.negative:
		return -1
	case d.IsZero():
		return 0
	default:
		return 1
	}
}

// IsInteger reports whether d has no fraction digits
func (d Decimal) IsInteger() bool {
	return d.FractionDigits() == "0"
}

// Neg returns -d
func (d Decimal) Neg() Decimal {
	if !d.IsZero() {
		d.negative = !d.negative
	}
	return d
}

// Abs returns |d|
func (d Decimal) Abs() Decimal {
	d.negative = false
	return d
}

// String returns the canonical form "[-]integer[.fraction]"
func (d Decimal) String() string {
	var b strings.Builder
	if d.negative {
		b.WriteByte('-')
	}
	b.WriteString(d.IntegerDigits())
	if f := d.FractionDigits(); f != "0" {
		b.WriteByte('.')
		b.WriteString(f)
	}
	return b.String()
}

// Canonical is an alias of String for call sites that want to be explicit
func (d Decimal) Canonical() string {
	return d.String()
}

// StringFixed returns the canonical form rounded half-even to exactly places
// fraction digits, padding with zeros.
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	r := d.Round(places, RoundingModeHalfEven)

	var b strings.Builder
	if r.negative {
		b.WriteByte('-')
	}
	b.WriteString(r.IntegerDigits())
	if places > 0 {
		frac := ""
		if !r.IsInteger() {
			frac = r.fraction
		}
		b.WriteByte('.')
		b.WriteString(frac)
		b.WriteString(strings.Repeat("0", places-len(frac)))
	}
	return b.String()
}

// Int64 returns d as int64. Fractional values and values out of range fail.
func (d Decimal) Int64() (int64, error) {
	if !d.IsInteger() {
		return 0, errors.IntegerRequired(errors.ModuleMathx, "int64", d.String())
	}
	i, err := strconv.ParseInt(d.String(), 10, 64)
	if err != nil {
		return 0, errors.InvalidArgument(errors.ModuleMathx, "int64", d.String(), "out of int64 range")
	}
	return i, nil
}

// Float64 returns the nearest float64. For display only; arithmetic never
// goes through floating point.
func (d Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

// scale returns the number of fraction digits
func (d Decimal) scale() int {
	if d.FractionDigits() == "0" {
		return 0
	}
	return len(d.fraction)
}

// coefficient returns the signed integer c with d = c * 10^-scale
func (d Decimal) coefficient() (*big.Int, int) {
	scale := d.scale()
	digits := d.IntegerDigits()
	if scale > 0 {
		digits += d.fraction
	}
	c, _ := new(big.Int).SetString(digits, 10)
	if d.negative {
		c.Neg(c)
	}
	return c, scale
}

// fromBig builds the normalized value c * 10^-scale, taking locale, context
// and angle mode from template.
func fromBig(c *big.Int, scale int, template Decimal) Decimal {
	out := Decimal{
		locale: template.locale,
		ctx:    template.ctx,
		angle:  template.angle,
	}

	digits := new(big.Int).Abs(c).String()
	if scale < 0 {
		digits += strings.Repeat("0", -scale)
		scale = 0
	}
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}

	out.integer = stringx.TrimLeadingZeros(digits[:len(digits)-scale])
	out.fraction = stringx.TrimTrailingZeros(digits[len(digits)-scale:])
	out.negative = c.Sign() < 0
	return out
}

var bigTen = big.NewInt(10)

func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// aligned returns the coefficients of a and b at a common scale
func aligned(a, b Decimal) (*big.Int, *big.Int, int) {
	ca, sa := a.coefficient()
	cb, sb := b.coefficient()
	switch {
	case sa < sb:
		ca.Mul(ca, pow10(sb-sa))
		return ca, cb, sb
	case sb < sa:
		cb.Mul(cb, pow10(sa-sb))
		return ca, cb, sa
	default:
		return ca, cb, sa
	}
}

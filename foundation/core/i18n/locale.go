// File: locale.go
// Title: Locale Number Conventions
// Description: Implements the Locale type describing grouping and decimal
//              separators, tag normalization with x/text/language and the
//              per-locale number parser and formatter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2026-10-16 v0.2.0: Number separator conventions replace translation locales

package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/utils/mathx"
	"github.com/msto63/gauss/foundation/utils/stringx"
)

// GroupSize is the number of integer digits between grouping separators
const GroupSize = 3

// Locale is a named convention for grouping and decimal separators.
// Separators are strings so multi-byte conventions such as the narrow
// no-break space work.
type Locale struct {
	Tag             string   `yaml:"tag" toml:"tag"`
	Name            string   `yaml:"name" toml:"name"`
	Grouping        string   `yaml:"grouping" toml:"grouping"`
	Decimal         string   `yaml:"decimal" toml:"decimal"`
	GroupingAliases []string `yaml:"grouping_aliases,omitempty" toml:"grouping_aliases"`
}

// String returns the locale tag
func (l Locale) String() string {
	return l.Tag
}

// Validate checks that the separators can be told apart from digits, the
// sign and each other
func (l Locale) Validate() error {
	if stringx.IsBlank(l.Tag) {
		return errors.InvalidArgument(errors.ModuleI18n, "locale", l.Tag, "empty locale tag")
	}
	if l.Decimal == "" {
		return errors.InvalidArgument(errors.ModuleI18n, "locale", l.Tag, "empty decimal separator")
	}
	for _, sep := range append([]string{l.Decimal}, l.separators()...) {
		if strings.ContainsAny(sep, "0123456789-") {
			return errors.InvalidArgument(errors.ModuleI18n, "locale", l.Tag, "separator "+sep+" contains a digit or sign")
		}
	}
	for _, sep := range l.separators() {
		if sep == l.Decimal {
			return errors.InvalidArgument(errors.ModuleI18n, "locale", l.Tag, "grouping and decimal separator are equal")
		}
	}
	return nil
}

// separators returns the grouping separator followed by its aliases,
// skipping empty entries
func (l Locale) separators() []string {
	seps := make([]string, 0, 1+len(l.GroupingAliases))
	if l.Grouping != "" {
		seps = append(seps, l.Grouping)
	}
	for _, alias := range l.GroupingAliases {
		if alias != "" {
			seps = append(seps, alias)
		}
	}
	return seps
}

const groupMark = "\x1f"

// groups splits the integer portion at every grouping separator
func (l Locale) groups(intPart string) []string {
	for _, sep := range l.separators() {
		intPart = strings.ReplaceAll(intPart, sep, groupMark)
	}
	return strings.Split(intPart, groupMark)
}

// Parse reads text written in this locale's convention. Grouping
// separators anywhere in the integer portion are stripped.
func (l Locale) Parse(text string) (mathx.Decimal, error) {
	d, ok := l.parse(text, false)
	if !ok {
		return mathx.Decimal{}, errors.NotANumber(text, l.Tag)
	}
	return d, nil
}

// parse implements the number grammar
//
//	["-"] digits [grouping digits]... [decimal digits]
//
// In strict mode grouping separators must split the integer portion every
// GroupSize digits, which is what auto detection relies on.
func (l Locale) parse(text string, strict bool) (mathx.Decimal, bool) {
	s := strings.TrimSpace(text)
	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	if s == "" {
		return mathx.Decimal{}, false
	}

	intPart, fracPart, hasFrac := strings.Cut(s, l.Decimal)
	if hasFrac && !stringx.IsDigits(fracPart) {
		return mathx.Decimal{}, false
	}

	groups := l.groups(intPart)
	if strict && len(groups) > 1 && !stringx.ValidGrouping(groups, GroupSize) {
		return mathx.Decimal{}, false
	}
	digits := strings.Join(groups, "")
	if !stringx.IsDigits(digits) {
		return mathx.Decimal{}, false
	}

	d, err := mathx.New(mathx.Parts{
		Integer:  digits,
		Fraction: fracPart,
		Negative: negative,
		Locale:   l.Tag,
	})
	if err != nil {
		return mathx.Decimal{}, false
	}
	return d, true
}

// Format renders v with this locale's separators. The grouping separator
// is inserted every GroupSize integer digits counted from the decimal
// separator; a zero fraction is omitted.
func (l Locale) Format(v mathx.Decimal) string {
	return l.render(v.IsNegative(), v.IntegerDigits(), v.FractionDigits(), false)
}

// FormatFixed renders v rounded to places fraction digits using the value's
// own rounding mode, keeping trailing zeros.
func (l Locale) FormatFixed(v mathx.Decimal, places int) string {
	if places < 0 {
		places = 0
	}
	fixed := v.Round(places, v.Context().Rounding).StringFixed(places)
	negative := strings.HasPrefix(fixed, "-")
	intPart, fracPart, _ := strings.Cut(strings.TrimPrefix(fixed, "-"), ".")
	return l.render(negative, intPart, fracPart, places > 0)
}

func (l Locale) render(negative bool, intPart, fracPart string, keepFraction bool) string {
	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(stringx.GroupDigits(intPart, l.Grouping, GroupSize))
	if keepFraction || fracPart != "0" && fracPart != "" {
		b.WriteString(l.Decimal)
		b.WriteString(fracPart)
	}
	return b.String()
}

// NormalizeLocale returns the canonical BCP 47 form of a locale tag
// ("de_de" becomes "de-DE"), or "" when the tag is not well formed.
func NormalizeLocale(tag string) string {
	if stringx.IsBlank(tag) {
		return ""
	}
	t, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if err != nil {
		return ""
	}
	return t.String()
}

// ValidateLocale validates if a locale string is a well formed tag
func ValidateLocale(tag string) error {
	if NormalizeLocale(tag) == "" {
		return errors.InvalidFormat(errors.ModuleI18n, tag, "BCP 47 tag such as de-DE")
	}
	return nil
}

// SplitLocale splits a locale into language and explicit region parts.
// The region is empty when the tag does not name one.
func SplitLocale(tag string) (lang, region string) {
	t, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if err != nil {
		return "", ""
	}
	base, _ := t.Base()
	if r, conf := t.Region(); conf == language.Exact {
		region = r.String()
	}
	return base.String(), region
}

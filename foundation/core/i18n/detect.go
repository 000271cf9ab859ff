// File: detect.go
// Title: Locale Auto Detection
// Description: Implements number parsing with an unknown locale by trying an
//              ordered, injectable list of strategies until one accepts the text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package i18n

import (
	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/utils/mathx"
	"github.com/msto63/gauss/foundation/utils/stringx"
)

// Strategy is one candidate interpretation tried during auto detection
type Strategy interface {
	// Name identifies the strategy, usually a locale tag
	Name() string

	// Parse returns the value and true when text is consistent with the
	// strategy's conventions
	Parse(text string) (mathx.Decimal, bool)
}

type localeStrategy struct {
	locale Locale
}

// LocaleStrategy accepts text whose separators strictly follow loc: grouping
// separators must split the integer portion every three digits.
func LocaleStrategy(loc Locale) Strategy {
	return localeStrategy{locale: loc}
}

func (s localeStrategy) Name() string { return s.locale.Tag }

func (s localeStrategy) Parse(text string) (mathx.Decimal, bool) {
	return s.locale.parse(text, true)
}

// DetectorOption configures a Detector
type DetectorOption func(*detectorConfig)

type detectorConfig struct {
	order      []string
	strategies []Strategy
}

// WithOrder replaces the registry order with the given locale tags
func WithOrder(tags ...string) DetectorOption {
	return func(c *detectorConfig) {
		c.order = append([]string(nil), tags...)
	}
}

// WithStrategies appends custom strategies after the locale strategies
func WithStrategies(strategies ...Strategy) DetectorOption {
	return func(c *detectorConfig) {
		c.strategies = append(c.strategies, strategies...)
	}
}

// Detector parses numbers of unknown locale. It is immutable and safe for
// concurrent use.
type Detector struct {
	strategies []Strategy
}

// NewDetector builds a detector over reg. Without WithOrder every locale of
// the registry is tried in registry order. Unknown tags in WithOrder fail
// with UNKNOWN_LOCALE.
func NewDetector(reg *Registry, opts ...DetectorOption) (*Detector, error) {
	cfg := detectorConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.order == nil {
		cfg.order = reg.Tags()
	}

	d := &Detector{strategies: make([]Strategy, 0, len(cfg.order)+len(cfg.strategies))}
	for _, tag := range cfg.order {
		loc, err := reg.Lookup(tag)
		if err != nil {
			return nil, err
		}
		d.strategies = append(d.strategies, LocaleStrategy(loc))
	}
	d.strategies = append(d.strategies, cfg.strategies...)
	return d, nil
}

// Order returns the strategy names in trial order
func (d *Detector) Order() []string {
	names := make([]string, len(d.strategies))
	for i, s := range d.strategies {
		names[i] = s.Name()
	}
	return names
}

// Detect returns the value parsed by the first accepting strategy together
// with that strategy's name.
func (d *Detector) Detect(text string) (mathx.Decimal, string, error) {
	if stringx.IsBlank(text) {
		return mathx.Decimal{}, "", errors.NotANumber(text, "auto")
	}
	for _, s := range d.strategies {
		if v, ok := s.Parse(text); ok {
			return v, s.Name(), nil
		}
	}
	return mathx.Decimal{}, "", errors.NoMatchingLocale(text, len(d.strategies))
}

// Parse is Detect without the strategy name
func (d *Detector) Parse(text string) (mathx.Decimal, error) {
	v, _, err := d.Detect(text)
	return v, err
}

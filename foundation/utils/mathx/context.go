// File: context.go
// Title: Precision Context and Modes
// Description: Precision context (significant digits plus rounding mode) that
//              governs every inexact operation, the rounding modes themselves
//              and the angle mode carried by values for trigonometric callers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Rounding modes introduced with decimal arithmetic
// - 2026-10-16 v0.2.0: Explicit Context value, ceiling/floor modes, angle mode

package mathx

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// RoundingMode defines how decimal numbers should be rounded.
// The zero value is banker's rounding.
type RoundingMode int

const (
	// RoundingModeHalfEven rounds ties to the nearest even digit (banker's rounding)
	RoundingModeHalfEven RoundingMode = iota

	// RoundingModeHalfUp rounds ties away from zero (commercial rounding)
	RoundingModeHalfUp

	// RoundingModeHalfDown rounds ties toward zero
	RoundingModeHalfDown

	// RoundingModeUp always rounds away from zero
	RoundingModeUp

	// RoundingModeDown always rounds toward zero (truncation)
	RoundingModeDown

	// RoundingModeCeiling rounds toward positive infinity
	RoundingModeCeiling

	// RoundingModeFloor rounds toward negative infinity
	RoundingModeFloor
)

var roundingNames = map[RoundingMode]string{
	RoundingModeHalfEven: "half_even",
	RoundingModeHalfUp:   "half_up",
	RoundingModeHalfDown: "half_down",
	RoundingModeUp:       "up",
	RoundingModeDown:     "down",
	RoundingModeCeiling:  "ceiling",
	RoundingModeFloor:    "floor",
}

// String returns the configuration name of the mode
func (m RoundingMode) String() string {
	if name, ok := roundingNames[m]; ok {
		return name
	}
	return fmt.Sprintf("RoundingMode(%d)", int(m))
}

// ParseRoundingMode accepts the names returned by String; dashes and case are ignored.
func ParseRoundingMode(s string) (RoundingMode, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if key == "" || key == "bankers" {
		return RoundingModeHalfEven, nil
	}
	for mode, name := range roundingNames {
		if name == key {
			return mode, nil
		}
	}
	return RoundingModeHalfEven, fmt.Errorf("unknown rounding mode %q", s)
}

func (m RoundingMode) apd() apd.Rounder {
	switch m {
	case RoundingModeHalfUp:
		return apd.RoundHalfUp
	case RoundingModeHalfDown:
		return apd.RoundHalfDown
	case RoundingModeUp:
		return apd.RoundUp
	case RoundingModeDown:
		return apd.RoundDown
	case RoundingModeCeiling:
		return apd.RoundCeiling
	case RoundingModeFloor:
		return apd.RoundFloor
	default:
		return apd.RoundHalfEven
	}
}

// DefaultPrecision is the number of significant digits used when a Context
// leaves Precision at zero. It matches IEEE 754 decimal128.
const DefaultPrecision uint32 = 34

// MaxPrecision bounds the precision accepted by Validate.
const MaxPrecision uint32 = 100000

// Context is the precision context of inexact operations: the number of
// significant digits kept and how the discarded digits are rounded.
// The zero value is equivalent to DefaultContext.
type Context struct {
	Precision uint32
	Rounding  RoundingMode
}

// DefaultContext returns 34 significant digits with banker's rounding
func DefaultContext() Context {
	return Context{Precision: DefaultPrecision, Rounding: RoundingModeHalfEven}
}

// WithPrecision returns a copy with the given precision
func (c Context) WithPrecision(p uint32) Context {
	c.Precision = p
	return c
}

// WithRounding returns a copy with the given rounding mode
func (c Context) WithRounding(m RoundingMode) Context {
	c.Rounding = m
	return c
}

// Validate reports whether the context can be used
func (c Context) Validate() error {
	if c.Precision > MaxPrecision {
		return fmt.Errorf("precision %d exceeds maximum %d", c.Precision, MaxPrecision)
	}
	if _, ok := roundingNames[c.Rounding]; !ok {
		return fmt.Errorf("invalid rounding mode %d", int(c.Rounding))
	}
	return nil
}

func (c Context) effective() Context {
	if c.Precision == 0 {
		c.Precision = DefaultPrecision
	}
	return c
}

// GuardDigits are carried through multi-step computations and removed by a
// final RoundToContext.
const GuardDigits uint32 = 9

// Guarded returns the working context of a multi-step computation whose
// result is rounded to c afterwards: GuardDigits more digits, half-even.
func (c Context) Guarded() Context {
	c = c.effective()
	c.Precision += GuardDigits
	c.Rounding = RoundingModeHalfEven
	return c
}

// String renders the context as "34/half_even"
func (c Context) String() string {
	c = c.effective()
	return fmt.Sprintf("%d/%s", c.Precision, c.Rounding)
}

func (c Context) apd() *apd.Context {
	c = c.effective()
	ac := apd.BaseContext.WithPrecision(c.Precision)
	ac.Rounding = c.Rounding.apd()
	return ac
}

// AngleMode tells trigonometric collaborators how to interpret a value.
// Arithmetic ignores it.
type AngleMode int

const (
	// AngleRadians is the default
	AngleRadians AngleMode = iota
	AngleDegrees
	AngleGradians
)

// String returns the mode name
func (a AngleMode) String() string {
	switch a {
	case AngleRadians:
		return "radians"
	case AngleDegrees:
		return "degrees"
	case AngleGradians:
		return "gradians"
	default:
		return "unknown"
	}
}

// ParseAngleMode parses "rad", "deg" or "grad" and their long forms
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rad", "radian", "radians":
		return AngleRadians, nil
	case "deg", "degree", "degrees":
		return AngleDegrees, nil
	case "grad", "gradian", "gradians", "gon":
		return AngleGradians, nil
	default:
		return AngleRadians, fmt.Errorf("unknown angle mode %q", s)
	}
}

// File: options.go
// Title: Matrix Options
// Description: Functional options shared by every matrix constructor. A matrix
//              remembers its options and passes them on to every matrix it
//              derives, so results keep the locale, precision context,
//              registry, cofactor limit and logger of their receiver.
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

	"github.com/msto63/gauss/foundation/core/i18n"
	"github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/mathx"
)

const (
	// MaxDimension bounds the number of rows and columns of a matrix
	MaxDimension = 4096

	// DefaultCofactorLimit is the largest dimension whose determinant and
	// inverse are computed by cofactor expansion. Larger matrices use
	// fraction-free elimination.
	DefaultCofactorLimit = 6

	// MaxCofactorLimit bounds WithCofactorLimit; expansion cost grows as n!
	MaxCofactorLimit = 10
)

// Option configures a matrix at construction time
type Option func(*options)

type options struct {
	locale        string
	ctx           mathx.Context
	registry      *i18n.Registry
	cofactorLimit int
	logger        *log.Logger
}

// WithLocale sets the locale used by Parse and Format and carried by the
// cells of constructed matrices. An empty tag means mathx.DefaultLocale.
func WithLocale(tag string) Option {
	return func(o *options) {
		if tag == "" {
			tag = mathx.DefaultLocale
		}
		if normalized := i18n.NormalizeLocale(tag); normalized != "" {
			tag = normalized
		}
		o.locale = tag
	}
}

// WithContext sets the precision context of divisions and inverses. It
// panics on an invalid context.
func WithContext(ctx mathx.Context) Option {
	if err := ctx.Validate(); err != nil {
		panic(fmt.Sprintf("linalgx: WithContext: %v", err))
	}
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithRegistry sets the locale registry used by Parse and Format
func WithRegistry(reg *i18n.Registry) Option {
	if reg == nil {
		panic("linalgx: WithRegistry: nil registry")
	}
	return func(o *options) {
		o.registry = reg
	}
}

// WithCofactorLimit sets the largest dimension computed by cofactor
// expansion. It panics outside [1, MaxCofactorLimit].
func WithCofactorLimit(n int) Option {
	if n < 1 || n > MaxCofactorLimit {
		panic(fmt.Sprintf("linalgx: WithCofactorLimit: %d outside [1, %d]", n, MaxCofactorLimit))
	}
	return func(o *options) {
		o.cofactorLimit = n
	}
}

// WithLogger sets the logger that records algorithm selection at debug level
func WithLogger(logger *log.Logger) Option {
	if logger == nil {
		panic("linalgx: WithLogger: nil logger")
	}
	return func(o *options) {
		o.logger = logger
	}
}

func gatherOptions(opts []Option) options {
	o := options{
		locale:        mathx.DefaultLocale,
		ctx:           mathx.DefaultContext(),
		cofactorLimit: DefaultCofactorLimit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.registry == nil {
		o.registry = i18n.Default()
	}
	if o.logger == nil {
		o.logger = log.GetDefault().WithName("linalgx")
	}
	return o
}

// File: chain.go
// Title: Validator Chain Implementation
// Description: Provides composable validator chains that combine multiple
//              validation rules for one named field.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-17 v0.2.0: Chains stamp their name on every failure as the field

package validation

import "fmt"

// ValidatorChain runs validators sequentially against one field. A chain
// is immutable once shared; build it fully before first use.
type ValidatorChain struct {
	validators       []Validator
	name             string
	stopOnFirstError bool
}

// NewValidatorChain creates a new validator chain for the named field
func NewValidatorChain(name string) *ValidatorChain {
	return &ValidatorChain{name: name}
}

// Add adds validators to the chain
func (c *ValidatorChain) Add(validators ...Validator) *ValidatorChain {
	c.validators = append(c.validators, validators...)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	c.validators = append(c.validators, fn)
	return c
}

// StopOnFirstError configures the chain to stop on the first validation error.
// By default, chains collect all validation errors.
func (c *ValidatorChain) StopOnFirstError(stop bool) *ValidatorChain {
	c.stopOnFirstError = stop
	return c
}

// Validate executes all validators in the chain and returns combined results.
// Failures without a field are attributed to the chain name and carry value.
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	combined := NewValidationResult()
	for _, v := range c.validators {
		result := v.Validate(value)
		if result.Valid {
			continue
		}
		for _, e := range result.Errors {
			if e.Field == "" {
				e.Field = c.name
			}
			if e.Value == nil {
				e.Value = value
			}
			combined.Errors = append(combined.Errors, e)
		}
		combined.Valid = false
		if c.stopOnFirstError {
			break
		}
	}
	return combined
}

// Name returns the field name of the chain
func (c *ValidatorChain) Name() string { return c.name }

// Length returns the number of validators in the chain
func (c *ValidatorChain) Length() int { return len(c.validators) }

// String returns a string representation of the chain
func (c *ValidatorChain) String() string {
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d, stopOnFirst: %t}",
		c.name, len(c.validators), c.stopOnFirstError)
}

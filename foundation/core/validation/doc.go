// File: doc.go
// Title: Package Documentation for validation
// Description: Package validation is the validator framework: the Validator
//              interface, structured results and validator chains. Concrete
//              rules live in utils/validationx.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework
// - 2026-10-17 v0.2.0: Results convert to foundation errors

// Package validation is the validator framework of the gauss foundation.
//
// A ValidatorChain groups the rules of one field. Its result converts into
// a VALIDATION_FAILED error scoped to a module and operation:
//
//	chain := validation.NewValidatorChain("name").
//		Add(validationx.Required, validationx.MaxLength(64))
//	if err := chain.Validate(name).ToError("workspace", "validate"); err != nil {
//		return err
//	}
//
// Several chains combine with Combine, keeping every failure.
package validation

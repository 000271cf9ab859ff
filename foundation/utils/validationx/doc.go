// File: doc.go
// Title: Package Documentation for validationx
// Description: Package validationx provides concrete validators for the core
//              validation framework.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Decimal and locale validators

// Package validationx provides concrete validators for the core validation
// framework. Validators accept strings and fmt.Stringer values; anything
// else fails with VALIDATION_TYPE.
//
//	locale := validation.NewValidatorChain("locale").Add(validationx.Required, validationx.Locale)
//	amount := validation.NewValidatorChain("amount").Add(validationx.Decimal)
//	if err := validation.Combine(locale.Validate(tag), amount.Validate(text)).ToError("app", "save"); err != nil {
//		return err
//	}
package validationx

// File: doc.go
// Title: Locale Number Format Package Documentation
// Description: Package i18n parses and formats decimal numbers according to
//              locale separator conventions and detects the convention of
//              text of unknown origin.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Locale number conventions, registry and auto detection

/*
Package i18n converts between locale formatted text and mathx.Decimal values.

Key Features:
  - Registry of about forty locales embedded from locales.yaml
  - Additional locales from YAML or TOML files via Registry.LoadDir
  - Tag normalization with golang.org/x/text/language ("de_de" is "de-DE")
  - Parsing under an explicit locale, formatting to any locale
  - Auto detection over an injectable, ordered list of strategies

# Number Grammar

	["-"] digits [grouping digits]... [decimal digits]

Grouping separators are stripped wherever they appear in the integer part
when a locale is given explicitly. Auto detection is strict: grouping must
split the integer part every three digits, so "1,23" is not read as en-US
but as de-DE 1.23. Blank or malformed text fails with NOT_A_NUMBER.

# Parsing and Formatting

	d, err := i18n.Parse("1.234,56", "de-DE") // 1234.56
	s, err := i18n.Format(d, "en-US")          // "1,234.56"

Format omits a zero fraction; FormatFixed keeps exactly the requested
number of fraction digits. Parse(Format(v, L), L) equals v for every
registered locale L.

# Auto Detection

	d, err := i18n.ParseAutoDetect("1.234,56") // de-DE

	det, err := i18n.NewDetector(i18n.Default(), i18n.WithOrder("fr-FR", "en-US"))
	v, tag, err := det.Detect("1234,5") // fr-FR

# Concurrency

Registries and detectors are immutable after construction. The default
registry is built once on first use.
*/
package i18n

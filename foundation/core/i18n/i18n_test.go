// File: i18n_test.go
// Title: Locale Number Format Tests
// Description: Tests for locale parsing and formatting, the locale round trip,
//              auto detection order, registry loading and tag normalization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: Number convention tests

package i18n

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	fe "github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/utils/mathx"
)

const (
	nbsp  = "\u00a0"
	nnbsp = "\u202f"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		locale string
		want   string
	}{
		{"german grouping and decimal", "1.234,56", "de-DE", "1234.56"},
		{"us grouping and decimal", "1,234.56", "en-US", "1234.56"},
		{"negative fraction", "-0,5", "de-DE", "-0.5"},
		{"surrounding space", "  42 ", "en-US", "42"},
		{"french narrow nbsp", "1" + nnbsp + "234,5", "fr-FR", "1234.5"},
		{"french nbsp alias", "1" + nbsp + "234,5", "fr-FR", "1234.5"},
		{"swiss apostrophe", "1'234.50", "de-CH", "1234.5"},
		{"swiss typographic apostrophe", "1\u2019234.50", "de-CH", "1234.5"},
		{"grouping anywhere", "1.2.3", "de-DE", "123"},
		{"leading zeros", "007,100", "de-DE", "7.1"},
		{"negative zero", "-0", "en-US", "0"},
		{"default locale", "1,000.25", "", "1000.25"},
		{"base language lookup", "1.000,25", "de", "1000.25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text, tt.locale)
			if err != nil {
				t.Fatalf("Parse(%q, %q) error: %v", tt.text, tt.locale, err)
			}
			if got.String() != tt.want {
				t.Errorf("Parse(%q, %q) = %s, want %s", tt.text, tt.locale, got, tt.want)
			}
		})
	}
}

func TestParseKeepsLocale(t *testing.T) {
	d, err := Parse("1.234,56", "de_de")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if d.Locale() != "de-DE" {
		t.Errorf("Locale() = %q, want de-DE", d.Locale())
	}
}

func TestParseErrors(t *testing.T) {
	invalid := []struct {
		text   string
		locale string
	}{
		{"", "en-US"},
		{"   ", "de-DE"},
		{"abc", "en-US"},
		{"-", "en-US"},
		{"--1", "en-US"},
		{"1e5", "en-US"},
		{"1.2.3", "en-US"},
		{"1,", "de-DE"},
		{",5", "de-DE"},
		{"1,2,3", "de-DE"},
		{"\u0661\u0662\u0663", "en-US"},
	}
	for _, tt := range invalid {
		if _, err := Parse(tt.text, tt.locale); !errors.Is(err, fe.ErrNotANumber) {
			t.Errorf("Parse(%q, %q) error = %v, want NOT_A_NUMBER", tt.text, tt.locale, err)
		}
	}

	if _, err := Parse("1", "sw-KE"); !errors.Is(err, fe.ErrUnknownLocale) {
		t.Errorf("unregistered locale error = %v, want UNKNOWN_LOCALE", err)
	}
	if _, err := Parse("1", "not a tag"); !errors.Is(err, fe.ErrUnknownLocale) {
		t.Errorf("malformed locale error = %v, want UNKNOWN_LOCALE", err)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		value  string
		locale string
		want   string
	}{
		{"1234.56", "de-DE", "1.234,56"},
		{"1234567.891", "en-US", "1,234,567.891"},
		{"-1000", "fr-FR", "-1" + nnbsp + "000"},
		{"100", "de-DE", "100"},
		{"0.5", "de-CH", "0.5"},
		{"-987654.25", "de-CH", "-987'654.25"},
		{"0", "ru-RU", "0"},
		{"12345", "sv-SE", "12" + nbsp + "345"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.value, func(t *testing.T) {
			got, err := Format(mathx.MustNewDecimal(tt.value), tt.locale)
			if err != nil {
				t.Fatalf("Format error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%s, %s) = %q, want %q", tt.value, tt.locale, got, tt.want)
			}
		})
	}
}

func TestFormatUsesValueLocale(t *testing.T) {
	d, err := Parse("1.234,56", "de-DE")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	got, err := Format(d, "")
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if got != "1.234,56" {
		t.Errorf("Format(d, \"\") = %q, want 1.234,56", got)
	}
}

func TestFormatFixed(t *testing.T) {
	tests := []struct {
		value  string
		locale string
		places int
		want   string
	}{
		{"2.5", "de-DE", 2, "2,50"},
		{"1234.565", "en-US", 2, "1,234.56"},
		{"1234.575", "en-US", 2, "1,234.58"},
		{"2.5", "en-US", 0, "2"},
		{"-0.004", "en-US", 2, "0.00"},
		{"7", "fr-FR", 1, "7,0"},
	}

	for _, tt := range tests {
		got, err := FormatFixed(mathx.MustNewDecimal(tt.value), tt.locale, tt.places)
		if err != nil {
			t.Fatalf("FormatFixed error: %v", err)
		}
		if got != tt.want {
			t.Errorf("FormatFixed(%s, %s, %d) = %q, want %q", tt.value, tt.locale, tt.places, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	values := []string{
		"0", "1", "-1", "0.5", "-0.5", "999", "1000", "1234.56",
		"-987654321.000123", "1000000", "12345678901234567890.0987654321",
	}

	for _, loc := range Default().Locales() {
		for _, s := range values {
			v := mathx.MustNewDecimal(s)
			text := loc.Format(v)
			back, err := loc.Parse(text)
			if err != nil {
				t.Errorf("%s: Parse(Format(%s)) = %q failed: %v", loc.Tag, s, text, err)
				continue
			}
			if !back.Equal(v) {
				t.Errorf("%s: round trip of %s via %q gave %s", loc.Tag, s, text, back)
			}
		}
	}
}

func TestParseAutoDetect(t *testing.T) {
	tests := []struct {
		text       string
		want       string
		wantLocale string
	}{
		{"1.234,56", "1234.56", "de-DE"},
		{"1,234.56", "1234.56", "en-US"},
		{"1234", "1234", "en-US"},
		{"1,23", "1.23", "de-DE"},
		{"-12.345.678,9", "-12345678.9", "de-DE"},
		{"1" + nnbsp + "234,5", "1234.5", "fr-FR"},
		{"1'234.5", "1234.5", "de-CH"},
	}

	detector, err := NewDetector(Default())
	if err != nil {
		t.Fatalf("NewDetector error: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, name, err := detector.Detect(tt.text)
			if err != nil {
				t.Fatalf("Detect(%q) error: %v", tt.text, err)
			}
			if got.String() != tt.want || name != tt.wantLocale {
				t.Errorf("Detect(%q) = %s (%s), want %s (%s)", tt.text, got, name, tt.want, tt.wantLocale)
			}
			if got.Locale() != tt.wantLocale {
				t.Errorf("value locale = %q, want %q", got.Locale(), tt.wantLocale)
			}
		})
	}

	if _, err := ParseAutoDetect("12.34.5"); !errors.Is(err, fe.ErrNoMatchingLocale) {
		t.Errorf("ParseAutoDetect(12.34.5) error = %v, want NO_MATCHING_LOCALE", err)
	}
	if _, err := ParseAutoDetect(" "); !errors.Is(err, fe.ErrNotANumber) {
		t.Errorf("ParseAutoDetect(blank) error = %v, want NOT_A_NUMBER", err)
	}
}

type fixedStrategy struct{}

func (fixedStrategy) Name() string { return "fixed" }

func (fixedStrategy) Parse(text string) (mathx.Decimal, bool) {
	if text == "one" {
		return mathx.One(), true
	}
	return mathx.Decimal{}, false
}

func TestDetectorOptions(t *testing.T) {
	d, err := NewDetector(Default(), WithOrder("fr-FR", "en-US"), WithStrategies(fixedStrategy{}))
	if err != nil {
		t.Fatalf("NewDetector error: %v", err)
	}

	order := d.Order()
	if len(order) != 3 || order[0] != "fr-FR" || order[1] != "en-US" || order[2] != "fixed" {
		t.Errorf("Order() = %v", order)
	}

	v, name, err := d.Detect("1234,5")
	if err != nil || name != "fr-FR" || v.String() != "1234.5" {
		t.Errorf("Detect(1234,5) = %s, %s, %v", v, name, err)
	}

	v, name, err = d.Detect("one")
	if err != nil || name != "fixed" || !v.Equal(mathx.One()) {
		t.Errorf("Detect(one) = %s, %s, %v", v, name, err)
	}

	if _, err := NewDetector(Default(), WithOrder("sw-KE")); !errors.Is(err, fe.ErrUnknownLocale) {
		t.Errorf("unknown order tag error = %v, want UNKNOWN_LOCALE", err)
	}

	if got := DefaultDetectionOrder(); len(got) < 40 || got[0] != "en-US" || got[1] != "de-DE" {
		t.Errorf("DefaultDetectionOrder() starts with %v (len %d)", got[:2], len(got))
	}
}

func TestRegistry(t *testing.T) {
	t.Run("lookup", func(t *testing.T) {
		tests := map[string]string{
			"de-DE": "de-DE",
			"de_at": "de-AT",
			"DE":    "de-DE",
			"fr-LU": "fr-FR",
			"nb-no": "nb-NO",
		}
		for in, want := range tests {
			loc, err := Lookup(in)
			if err != nil || loc.Tag != want {
				t.Errorf("Lookup(%q) = %q, %v, want %q", in, loc.Tag, err, want)
			}
		}
		if Default().Has("sw-KE") {
			t.Error("Has(sw-KE) should be false")
		}
	})

	t.Run("invalid locales", func(t *testing.T) {
		bad := []Locale{
			{Tag: "", Grouping: ",", Decimal: "."},
			{Tag: "en-NZ", Grouping: ",", Decimal: ""},
			{Tag: "en-NZ", Grouping: ".", Decimal: "."},
			{Tag: "en-NZ", Grouping: "1", Decimal: "."},
			{Tag: "en-NZ", Grouping: ",", Decimal: ".", GroupingAliases: []string{"."}},
		}
		for _, loc := range bad {
			if _, err := NewRegistry(loc); err == nil {
				t.Errorf("NewRegistry(%+v) should fail", loc)
			}
		}
		dup := Locale{Tag: "en-NZ", Grouping: ",", Decimal: "."}
		if _, err := NewRegistry(dup, dup); err == nil {
			t.Error("duplicate tags should fail")
		}
	})

	t.Run("extend", func(t *testing.T) {
		base := Default()
		ext, err := base.Extend(
			Locale{Tag: "en-nz", Name: "English (New Zealand)", Grouping: ",", Decimal: "."},
			Locale{Tag: "de-DE", Name: "Deutsch", Grouping: ".", Decimal: ","},
		)
		if err != nil {
			t.Fatalf("Extend error: %v", err)
		}
		if ext.Len() != base.Len()+1 {
			t.Errorf("Len() = %d, want %d", ext.Len(), base.Len()+1)
		}
		if tags := ext.Tags(); tags[1] != "de-DE" || tags[len(tags)-1] != "en-NZ" {
			t.Errorf("unexpected tag order %v", tags)
		}
		if loc, _ := ext.Lookup("de-DE"); loc.Name != "Deutsch" {
			t.Errorf("replacement not applied: %+v", loc)
		}
		if loc, _ := base.Lookup("de-DE"); loc.Name == "Deutsch" {
			t.Error("Extend must not modify the receiver")
		}
	})
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	yamlDoc := "locales:\n  - {tag: en-NZ, name: \"English (New Zealand)\", grouping: \",\", decimal: \".\"}\n"
	tomlDoc := "[[locales]]\ntag = \"es-CL\"\nname = \"Spanish (Chile)\"\ngrouping = \".\"\ndecimal = \",\"\n"
	if err := os.WriteFile(filepath.Join(dir, "nz.yaml"), []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cl.toml"), []byte(tomlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	reg, err := Default().LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir error: %v", err)
	}
	if !reg.Has("en-NZ") || !reg.Has("es-CL") {
		t.Fatalf("loaded registry misses locales: %v", reg.Tags())
	}

	v, err := reg.Parse("1.234,5", "es-CL")
	if err != nil || v.String() != "1234.5" {
		t.Errorf("Parse with loaded locale = %s, %v", v, err)
	}

	if _, err := Default().LoadDir(filepath.Join(dir, "missing")); !errors.Is(err, fe.ErrNotFound) {
		t.Errorf("missing dir error = %v, want NOT_FOUND", err)
	}

	broken := t.TempDir()
	if err := os.WriteFile(filepath.Join(broken, "bad.yaml"), []byte("locales: [ {"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Default().LoadDir(broken); !errors.Is(err, fe.ErrParseFailure) {
		t.Errorf("broken file error = %v, want PARSE_FAILURE", err)
	}
}

func TestFileFormats(t *testing.T) {
	tests := []struct {
		name   string
		format FileFormat
		ok     bool
	}{
		{"nz.yaml", FormatYAML, true},
		{"NZ.YML", FormatYAML, true},
		{"cl.toml", FormatTOML, true},
		{"README.txt", FormatYAML, false},
	}
	for _, tt := range tests {
		format, ok := formatOf(tt.name)
		if format != tt.format || ok != tt.ok {
			t.Errorf("formatOf(%q) = %s, %v", tt.name, format, ok)
		}
	}
	if FormatTOML.String() != "toml" || FormatYAML.String() != "yaml" || FileFormat(9).String() != "unknown" {
		t.Error("unexpected FileFormat names")
	}

	locales, err := DecodeLocales([]byte("[[locales]]\ntag = \"de-AT\"\ngrouping = \" \"\ndecimal = \",\"\n"), FormatTOML)
	if err != nil || len(locales) != 1 || locales[0].Tag != "de-AT" {
		t.Fatalf("DecodeLocales(toml) = %v, %v", locales, err)
	}
	if _, err := DecodeLocales([]byte("locales = ["), FormatTOML); !errors.Is(err, fe.ErrParseFailure) {
		t.Errorf("broken toml error = %v, want PARSE_FAILURE", err)
	}

	// the package level Format function and the file format type coexist
	text, err := Format(mathx.MustNewDecimal("1234.5"), "de-DE")
	if err != nil || text != "1.234,5" {
		t.Errorf("Format = %q, %v", text, err)
	}
}

func TestNormalizeLocale(t *testing.T) {
	tests := map[string]string{
		"de_de":  "de-DE",
		"EN-us":  "en-US",
		"fr":     "fr",
		"":       "",
		"not ok": "",
	}
	for in, want := range tests {
		if got := NormalizeLocale(in); got != want {
			t.Errorf("NormalizeLocale(%q) = %q, want %q", in, got, want)
		}
	}

	if lang, region := SplitLocale("pt_BR"); lang != "pt" || region != "BR" {
		t.Errorf("SplitLocale(pt_BR) = %q, %q", lang, region)
	}
	if lang, region := SplitLocale("de"); lang != "de" || region != "" {
		t.Errorf("SplitLocale(de) = %q, %q", lang, region)
	}
	if err := ValidateLocale("??"); err == nil {
		t.Error("ValidateLocale(??) should fail")
	}
}

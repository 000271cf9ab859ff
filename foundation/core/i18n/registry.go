// File: registry.go
// Title: Locale Registry
// Description: Implements the ordered, read-only locale registry built from the
//              embedded locale table and optional TOML/YAML locale files.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML language files
// - 2026-10-16 v0.2.0: Registry of number conventions with embedded defaults
// - 2026-10-17 v0.2.1: Renamed the locale file type to FileFormat

package i18n

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	gerror "github.com/msto63/gauss/foundation/core/error"
	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/filex"
	"github.com/msto63/gauss/foundation/utils/mathx"
)

//go:embed locales.yaml
var embeddedLocales []byte

// FileFormat represents the locale file format
type FileFormat int

const (
	// FormatYAML represents YAML format (default)
	FormatYAML FileFormat = iota

	// FormatTOML represents TOML format
	FormatTOML
)

// String returns the string representation of the format
func (f FileFormat) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "unknown"
	}
}

// localeFile is the document layout of a locale file:
//
//	locales:
//	  - {tag: de-DE, name: German, grouping: ".", decimal: ","}
type localeFile struct {
	Locales []Locale `yaml:"locales" toml:"locales"`
}

// Registry is an ordered set of locales. It is never modified after
// construction and safe for concurrent use; Extend and LoadDir return new
// registries.
type Registry struct {
	locales []Locale
	index   map[string]int
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry built from the embedded locale table
func Default() *Registry {
	defaultOnce.Do(func() {
		locales, err := DecodeLocales(embeddedLocales, FormatYAML)
		if err == nil {
			defaultRegistry, err = NewRegistry(locales...)
		}
		if err != nil {
			panic(gerror.Wrap(err, "embedded locale table is invalid"))
		}
	})
	return defaultRegistry
}

// NewRegistry creates a registry. Tags are normalized; duplicates are an error.
func NewRegistry(locales ...Locale) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(locales))}
	for _, loc := range locales {
		loc, err := prepare(loc)
		if err != nil {
			return nil, err
		}
		if _, dup := r.index[loc.Tag]; dup {
			return nil, errors.InvalidArgument(errors.ModuleI18n, "register", loc.Tag, "duplicate locale")
		}
		r.index[loc.Tag] = len(r.locales)
		r.locales = append(r.locales, loc)
	}
	return r, nil
}

func prepare(loc Locale) (Locale, error) {
	tag := NormalizeLocale(loc.Tag)
	if tag == "" {
		return Locale{}, errors.InvalidArgument(errors.ModuleI18n, "register", loc.Tag, "malformed locale tag")
	}
	loc.Tag = tag
	loc.GroupingAliases = append([]string(nil), loc.GroupingAliases...)
	if err := loc.Validate(); err != nil {
		return Locale{}, err
	}
	return loc, nil
}

// Extend returns a new registry with locales added. A locale whose tag is
// already registered replaces the existing entry in place.
func (r *Registry) Extend(locales ...Locale) (*Registry, error) {
	out := &Registry{
		locales: append([]Locale(nil), r.locales...),
		index:   make(map[string]int, len(r.index)+len(locales)),
	}
	for tag, i := range r.index {
		out.index[tag] = i
	}
	for _, loc := range locales {
		loc, err := prepare(loc)
		if err != nil {
			return nil, err
		}
		if i, ok := out.index[loc.Tag]; ok {
			out.locales[i] = loc
			continue
		}
		out.index[loc.Tag] = len(out.locales)
		out.locales = append(out.locales, loc)
	}
	return out, nil
}

// LoadDir returns a new registry extended with every .yaml, .yml and .toml
// locale file in dir, in directory order.
func (r *Registry) LoadDir(dir string) (*Registry, error) {
	paths, err := filex.ListFiles(dir, ".yaml", ".yml", ".toml")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.ModuleI18n, "load", dir)
		}
		return nil, errors.OperationFailed(errors.ModuleI18n, "load", gerror.CodeConfigError, err)
	}

	logger := log.GetDefault().WithName("i18n")
	out := r
	for _, path := range paths {
		format, _ := formatOf(path)
		locales, err := LoadFile(path, format)
		if err != nil {
			return nil, err
		}
		if out, err = out.Extend(locales...); err != nil {
			return nil, gerror.Wrap(err, "invalid locale file").WithDetail("file", path)
		}
		logger.Debug("locale file loaded", log.String("file", path), log.Int("locales", len(locales)))
	}
	return out, nil
}

func formatOf(name string) (FileFormat, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return FormatYAML, false
	}
}

// LoadFile reads the locales of one file
func LoadFile(path string, format FileFormat) ([]Locale, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.OperationFailed(errors.ModuleI18n, "load", gerror.CodeConfigError, err)
	}
	locales, err := DecodeLocales(content, format)
	if err != nil {
		return nil, gerror.Wrap(err, "failed to decode locale file").WithDetail("file", path)
	}
	return locales, nil
}

// DecodeLocales decodes a locale document
func DecodeLocales(content []byte, format FileFormat) ([]Locale, error) {
	var doc localeFile
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &doc); err != nil {
			return nil, errors.ParseFailure(errors.ModuleI18n, "decode", "toml", err.Error())
		}
	default:
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, errors.ParseFailure(errors.ModuleI18n, "decode", "yaml", err.Error())
		}
	}
	return doc.Locales, nil
}

// Lookup finds a locale by exact tag, then by base language in registry
// order ("de" finds the first German locale).
func (r *Registry) Lookup(tag string) (Locale, error) {
	normalized := NormalizeLocale(tag)
	if normalized == "" {
		return Locale{}, errors.UnknownLocale(tag)
	}
	if i, ok := r.index[normalized]; ok {
		return r.locales[i], nil
	}

	lang, _ := SplitLocale(normalized)
	for _, loc := range r.locales {
		if l, _ := SplitLocale(loc.Tag); l == lang {
			return loc, nil
		}
	}
	return Locale{}, errors.UnknownLocale(tag)
}

// Has reports whether Lookup would succeed
func (r *Registry) Has(tag string) bool {
	_, err := r.Lookup(tag)
	return err == nil
}

// Tags returns the registered tags in registry order
func (r *Registry) Tags() []string {
	tags := make([]string, len(r.locales))
	for i, loc := range r.locales {
		tags[i] = loc.Tag
	}
	return tags
}

// Locales returns a copy of the registered locales in registry order
func (r *Registry) Locales() []Locale {
	return append([]Locale(nil), r.locales...)
}

// Len returns the number of registered locales
func (r *Registry) Len() int {
	return len(r.locales)
}

// Parse reads text in the locale named by tag; an empty tag means
// mathx.DefaultLocale. Blank or malformed text fails with NOT_A_NUMBER.
func (r *Registry) Parse(text, tag string) (mathx.Decimal, error) {
	if tag == "" {
		tag = mathx.DefaultLocale
	}
	loc, err := r.Lookup(tag)
	if err != nil {
		return mathx.Decimal{}, err
	}
	return loc.Parse(text)
}

// Format renders v in the locale named by tag; an empty tag means the
// value's own locale.
func (r *Registry) Format(v mathx.Decimal, tag string) (string, error) {
	loc, err := r.target(v, tag)
	if err != nil {
		return "", err
	}
	return loc.Format(v), nil
}

// FormatFixed renders v with exactly places fraction digits
func (r *Registry) FormatFixed(v mathx.Decimal, tag string, places int) (string, error) {
	loc, err := r.target(v, tag)
	if err != nil {
		return "", err
	}
	return loc.FormatFixed(v, places), nil
}

func (r *Registry) target(v mathx.Decimal, tag string) (Locale, error) {
	if tag == "" {
		tag = v.Locale()
	}
	return r.Lookup(tag)
}

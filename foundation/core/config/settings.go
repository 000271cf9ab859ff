// File: settings.go
// Title: Typed gauss Settings
// Description: Settings binds the configuration file and GAUSS_* environment
//              variables to a typed struct and derives the explicit precision
//              context and logger configuration the rest of gauss is called with.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/msto63/gauss/foundation/core/errors"
	"github.com/msto63/gauss/foundation/core/i18n"
	"github.com/msto63/gauss/foundation/core/log"
	"github.com/msto63/gauss/foundation/utils/linalgx"
	"github.com/msto63/gauss/foundation/utils/mathx"
	"github.com/msto63/gauss/foundation/utils/stringx"
)

// EnvPrefix prefixes every environment override, e.g. GAUSS_PRECISION
const EnvPrefix = "GAUSS_"

const (
	// DefaultCofactorLimit is the largest dimension computed by cofactor expansion
	DefaultCofactorLimit = linalgx.DefaultCofactorLimit

	// MaxCofactorLimit bounds the configurable cofactor limit
	MaxCofactorLimit = linalgx.MaxCofactorLimit
)

// Settings is the typed gauss configuration
type Settings struct {
	Precision      uint32            `yaml:"precision" env:"PRECISION"`
	Rounding       string            `yaml:"rounding" env:"ROUNDING"`
	Angle          string            `yaml:"angle" env:"ANGLE"`
	Locale         string            `yaml:"locale" env:"LOCALE"`
	DetectionOrder []string          `yaml:"detection_order" env:"DETECTION_ORDER" envSeparator:","`
	CofactorLimit  int               `yaml:"cofactor_limit" env:"COFACTOR_LIMIT"`
	LocalesDir     string            `yaml:"locales_dir" env:"LOCALES_DIR"`
	Log            LogSettings       `yaml:"log" envPrefix:"LOG_"`
	Workspace      WorkspaceSettings `yaml:"workspace" envPrefix:"WORKSPACE_"`
}

// LogSettings configures the process logger
type LogSettings struct {
	Level  string `yaml:"level" env:"LEVEL"`
	Format string `yaml:"format" env:"FORMAT"`
}

// WorkspaceSettings configures the sqlite workspace
type WorkspaceSettings struct {
	Path string `yaml:"path" env:"PATH"`
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Precision:     mathx.DefaultPrecision,
		Rounding:      mathx.RoundingModeHalfEven.String(),
		Angle:         mathx.AngleRadians.String(),
		Locale:        mathx.DefaultLocale,
		CofactorLimit: DefaultCofactorLimit,
		Log: LogSettings{
			Level:  log.LevelWarn.String(),
			Format: log.FormatConsole.String(),
		},
		Workspace: WorkspaceSettings{Path: defaultWorkspacePath()},
	}
}

func defaultWorkspacePath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gauss", "workspace.db")
	}
	return "gauss-workspace.db"
}

// SettingsRules are the structural checks applied to a raw configuration
// before it is decoded into Settings.
func SettingsRules() ValidationRules {
	return ValidationRules{
		"precision":       {Type: "int", Min: 1, Max: int(mathx.MaxPrecision)},
		"rounding":        {Type: "string", Pattern: `^[A-Za-z_ -]+$`},
		"angle":           {Type: "string"},
		"locale":          {Type: "string", Min: 2},
		"detection_order": {Type: "[]string", Min: 1},
		"cofactor_limit":  {Type: "int", Min: 1, Max: MaxCofactorLimit},
		"locales_dir":     {Type: "string"},
		"log.level":       {Type: "string"},
		"log.format":      {Type: "string"},
		"workspace.path":  {Type: "string", Min: 1},
	}
}

// LoadSettings loads settings from path, or from the discovered gauss
// configuration file when path is empty. Missing discovery is not an error.
func LoadSettings(path string) (Settings, *Config, error) {
	var (
		cfg *Config
		err error
	)
	if stringx.IsBlank(path) {
		cfg, err = Discover(DefaultDiscoveryOptions())
	} else {
		cfg, err = LoadWithOptions(path, LoadOptions{Format: FormatAuto, EnvPrefix: EnvPrefix})
	}
	if err != nil {
		return Settings{}, nil, err
	}

	s, err := FromConfig(cfg)
	return s, cfg, err
}

// FromConfig validates cfg, decodes it over DefaultSettings, applies
// GAUSS_* environment overrides and validates the result.
func FromConfig(cfg *Config) (Settings, error) {
	if result := cfg.Validate(SettingsRules()); !result.Valid {
		return Settings{}, errors.InvalidConfig("file", cfg.FilePath(), result.Error())
	}

	s := DefaultSettings()
	if err := cfg.Decode(&s); err != nil {
		return Settings{}, err
	}
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return Settings{}, errors.InvalidConfig("environment", EnvPrefix+"*", err.Error())
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the semantic constraints of every field
func (s Settings) Validate() error {
	if s.Precision == 0 || s.Precision > mathx.MaxPrecision {
		return errors.InvalidConfig("precision", s.Precision, fmt.Sprintf("must be between 1 and %d", mathx.MaxPrecision))
	}
	if _, err := mathx.ParseRoundingMode(s.Rounding); err != nil {
		return errors.InvalidConfig("rounding", s.Rounding, err.Error())
	}
	if _, err := mathx.ParseAngleMode(s.Angle); err != nil {
		return errors.InvalidConfig("angle", s.Angle, err.Error())
	}
	if _, err := language.Parse(strings.ReplaceAll(s.Locale, "_", "-")); err != nil {
		return errors.InvalidConfig("locale", s.Locale, err.Error())
	}
	for _, tag := range s.DetectionOrder {
		if stringx.IsBlank(tag) {
			return errors.InvalidConfig("detection_order", s.DetectionOrder, "blank locale tag")
		}
	}
	if s.CofactorLimit < 1 || s.CofactorLimit > MaxCofactorLimit {
		return errors.InvalidConfig("cofactor_limit", s.CofactorLimit, fmt.Sprintf("must be between 1 and %d", MaxCofactorLimit))
	}
	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return errors.InvalidConfig("log.level", s.Log.Level, err.Error())
	}
	if _, err := log.ParseFormat(s.Log.Format); err != nil {
		return errors.InvalidConfig("log.format", s.Log.Format, err.Error())
	}
	if stringx.IsBlank(s.Workspace.Path) {
		return errors.InvalidConfig("workspace.path", s.Workspace.Path, "must not be empty")
	}
	return nil
}

// MathContext returns the precision context for arithmetic calls.
// Settings are expected to be validated.
func (s Settings) MathContext() mathx.Context {
	mode, _ := mathx.ParseRoundingMode(s.Rounding)
	return mathx.Context{Precision: s.Precision, Rounding: mode}
}

// AngleMode returns the configured angle mode
func (s Settings) AngleMode() mathx.AngleMode {
	mode, _ := mathx.ParseAngleMode(s.Angle)
	return mode
}

// LoggerConfig returns the logger configuration writing to out
func (s Settings) LoggerConfig(out io.Writer) log.Config {
	level, err := log.ParseLevel(s.Log.Level)
	if err != nil {
		level = log.DefaultLevel()
	}
	format, _ := log.ParseFormat(s.Log.Format)
	return log.Config{
		Level:  level,
		Format: format,
		Output: out,
		Name:   "gauss",
	}
}

// MatrixOptions returns the linalgx options matching the settings. A nil
// logger or registry leaves the linalgx default in place.
func (s Settings) MatrixOptions(logger *log.Logger, reg *i18n.Registry) []linalgx.Option {
	opts := []linalgx.Option{
		linalgx.WithLocale(s.Locale),
		linalgx.WithContext(s.MathContext()),
		linalgx.WithCofactorLimit(s.CofactorLimit),
	}
	if logger != nil {
		opts = append(opts, linalgx.WithLogger(logger))
	}
	if reg != nil {
		opts = append(opts, linalgx.WithRegistry(reg))
	}
	return opts
}

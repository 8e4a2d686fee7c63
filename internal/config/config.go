// Package config provides configuration management for driftlint using Viper
// for flexible loading from files, environment variables, and command-line
// flags.
//
// Configuration is read from .driftlint.yml (or the file named by --config /
// DRIFTLINT_CONFIG_FILE) with DRIFTLINT_ prefixed environment variable
// overrides. Everything has a working default: a bare `driftlint audit`
// needs no config file at all.
package config

import (
	"regexp"

	"github.com/spf13/viper"

	dlerrors "github.com/driftlint/driftlint/internal/errors"
)

// DuplicateScope controls how widely the duplicate-file check collides stems.
type DuplicateScope string

const (
	// DuplicateScopeTree collides equal stems across the whole tree.
	DuplicateScopeTree DuplicateScope = "tree"
	// DuplicateScopeDirectory collides equal stems only within one directory.
	DuplicateScopeDirectory DuplicateScope = "directory"
)

// PatternEntry is one user-supplied rule table row.
type PatternEntry struct {
	Pattern   string `yaml:"pattern" mapstructure:"pattern"`
	Rationale string `yaml:"rationale" mapstructure:"rationale"`
}

type Config struct {
	Scan   ScanConfig   `yaml:"scan" mapstructure:"scan"`
	Rules  RulesConfig  `yaml:"rules" mapstructure:"rules"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

type ScanConfig struct {
	// SkipDirs is appended to the built-in skip set (node_modules, .git, ...).
	SkipDirs []string `yaml:"skip_dirs" mapstructure:"skip_dirs"`
	// SourceExtensions replaces the default source set when non-empty.
	SourceExtensions []string `yaml:"source_extensions" mapstructure:"source_extensions"`
}

type RulesConfig struct {
	DuplicateScope DuplicateScope `yaml:"duplicate_scope" mapstructure:"duplicate_scope"`
	ExtraForbidden []PatternEntry `yaml:"extra_forbidden" mapstructure:"extra_forbidden"`
	ExtraAllowed   []string       `yaml:"extra_allowed" mapstructure:"extra_allowed"`
}

type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
	File   string `yaml:"file" mapstructure:"file"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load resolves the effective configuration from viper state and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, dlerrors.NewConfigError("config_unmarshal", "failed to parse configuration", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Rules.DuplicateScope == "" {
		cfg.Rules.DuplicateScope = DuplicateScopeTree
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}

// Validate fails fast on bad knobs so the scan never starts with a broken
// rule table.
func (c *Config) Validate() error {
	switch c.Rules.DuplicateScope {
	case DuplicateScopeTree, DuplicateScopeDirectory:
	default:
		return dlerrors.NewConfigError("config_duplicate_scope",
			"rules.duplicate_scope must be \"tree\" or \"directory\"", nil)
	}

	switch c.Output.Format {
	case "text", "json", "sarif":
	default:
		return dlerrors.NewConfigError("config_output_format",
			"output.format must be \"text\", \"json\" or \"sarif\"", nil)
	}

	for _, entry := range c.Rules.ExtraForbidden {
		if _, err := regexp.Compile(entry.Pattern); err != nil {
			return dlerrors.NewConfigError("config_forbidden_pattern",
				"invalid rules.extra_forbidden pattern "+entry.Pattern, err)
		}
	}
	for _, pattern := range c.Rules.ExtraAllowed {
		if _, err := regexp.Compile(pattern); err != nil {
			return dlerrors.NewConfigError("config_allowed_pattern",
				"invalid rules.extra_allowed pattern "+pattern, err)
		}
	}

	return nil
}

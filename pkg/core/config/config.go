// ============================================================================
// chronox - Calendar and Clock Conversion Core
// ============================================================================
//
// Package:     config
// Description: Typed configuration from TOML or YAML with environment overrides
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/chronox/foundation/core/error"
	mdwlog "github.com/msto63/chronox/foundation/core/log"
	"github.com/msto63/chronox/pkg/chrono"
	"github.com/msto63/chronox/pkg/leapsec"
	"github.com/msto63/chronox/pkg/zone"
)

// EnvConfig names the variable LoadFromEnv reads the config path from
const EnvConfig = "CHRONOX_CONFIG"

// Config holds the complete tool configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Leap    LeapConfig    `toml:"leap" yaml:"leap"`
	Zone    ZoneConfig    `toml:"zone" yaml:"zone"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level" env:"CHRONOX_LOG_LEVEL"`
	LogFormat string `toml:"log_format" yaml:"log_format" env:"CHRONOX_LOG_FORMAT"`
}

// LeapConfig selects the leap second table. An empty Table uses the table
// embedded in the binary.
type LeapConfig struct {
	Table  string `toml:"table" yaml:"table" env:"CHRONOX_LEAP_TABLE"`
	Format string `toml:"format" yaml:"format" env:"CHRONOX_LEAP_FORMAT"`
}

// ZoneConfig holds the zone used when a command names none and the choice
// applied to ambiguous or nonexistent local times
type ZoneConfig struct {
	Default string `toml:"default" yaml:"default" env:"CHRONOX_ZONE"`
	Choice  string `toml:"choice" yaml:"choice" env:"CHRONOX_ZONE_CHOICE"`
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the configuration at path from fs, applies environment
// overrides and defaults, and validates the result. The format follows the
// extension: .yaml and .yml are YAML, anything else TOML.
func Load(fs afero.Fs, path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, mdwerror.Wrap(err, "config file not found").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	var cfg Config
	if isYAML(path) {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, parseError(err, path)
		}
	} else {
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, parseError(err, path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, mdwerror.New("unknown config key "+undecoded[0].String()).
				WithCode(mdwerror.CodeInvalidConfig).
				WithOperation("config.Load").
				WithDetail("path", path)
		}
	}

	if err := cfg.finish(); err != nil {
		return nil, mdwerror.Wrap(err, "invalid config").WithDetail("path", path)
	}
	return &cfg, nil
}

// LoadFromEnv loads the file named by CHRONOX_CONFIG, or the first existing
// default location. Without either it returns the defaults with environment
// overrides applied.
func LoadFromEnv(fs afero.Fs) (*Config, error) {
	if path := os.Getenv(EnvConfig); path != "" {
		return Load(fs, path)
	}
	for _, p := range DefaultPaths() {
		if ok, _ := afero.Exists(fs, p); ok {
			return Load(fs, p)
		}
	}

	var cfg Config
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultPaths lists the locations LoadFromEnv searches, in order
func DefaultPaths() []string {
	paths := []string{
		"./chronox.toml",
		"./chronox.yaml",
		"./configs/chronox.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths,
			filepath.Join(home, ".config/chronox/config.toml"),
			filepath.Join(home, ".config/chronox/config.yaml"),
		)
	}
	return paths
}

func (c *Config) finish() error {
	if err := cleanenv.ReadEnv(c); err != nil {
		return mdwerror.Wrap(err, "read environment").
			WithCode(mdwerror.CodeEnvironmentError).
			WithOperation("config.Load")
	}
	c.applyDefaults()
	return c.Validate()
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}
	if c.Leap.Format == "" {
		c.Leap.Format = "auto"
	}
	if c.Zone.Default == "" {
		c.Zone.Default = "UTC"
	}
	if c.Zone.Choice == "" {
		c.Zone.Choice = "earliest"
	}
	c.Leap.Table = os.ExpandEnv(c.Leap.Table)
}

// Validate checks every enumerated setting
func (c *Config) Validate() error {
	if _, err := mdwlog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel)
	}
	if _, err := mdwlog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat)
	}
	if _, err := leapsec.ParseFormat(c.Leap.Format); err != nil {
		return invalid("leap.format", c.Leap.Format)
	}
	if _, err := chrono.ParseChoice(c.Zone.Choice); err != nil {
		return invalid("zone.choice", c.Zone.Choice)
	}
	return nil
}

// Choice returns the configured disambiguation
func (c *Config) Choice() chrono.Choice {
	choice, _ := chrono.ParseChoice(c.Zone.Choice)
	return choice
}

// LeapTable returns the configured leap second table: the embedded one when
// leap.table is empty, otherwise the file read through fs
func (c *Config) LeapTable(fs afero.Fs, logger *mdwlog.Logger) (*leapsec.Table, error) {
	if c.Leap.Table == "" {
		return leapsec.Default(), nil
	}
	format, err := leapsec.ParseFormat(c.Leap.Format)
	if err != nil {
		return nil, err
	}
	return leapsec.LoadFile(fs, c.Leap.Table, format, logger)
}

// DefaultZone locates zone.default through p
func (c *Config) DefaultZone(p zone.Provider) (zone.Zone, error) {
	return p.Locate(c.Zone.Default)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func parseError(err error, path string) *mdwerror.Error {
	return mdwerror.Wrap(err, "failed to parse config").
		WithCode(mdwerror.CodeInvalidFormat).
		WithOperation("config.Load").
		WithDetail("path", path)
}

func invalid(key, value string) *mdwerror.Error {
	return mdwerror.New("invalid value for "+key).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("key", key).
		WithDetail("value", value)
}

// Package config loads morphir-ir settings from a YAML file, the
// environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
)

// Name of the config file without extension.
const FileName = "morphir-ir"

// EnvPrefix prefixes every environment override, e.g. MORPHIR_IR_STORE_PATH.
const EnvPrefix = "MORPHIR_IR"

// Config represents the morphir-ir configuration.
type Config struct {
	FormatVersion int          `mapstructure:"format_version"`
	Store         StoreConfig  `mapstructure:"store"`
	Log           LogConfig    `mapstructure:"log"`
	Output        OutputConfig `mapstructure:"output"`
	Decode        DecodeConfig `mapstructure:"decode"`

	// File is the config file that was read, empty if none was found.
	File string `mapstructure:"-"`
}

// StoreConfig represents registry configuration.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig represents diagnostic logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig represents command output configuration.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// DecodeConfig represents decoder limits.
type DecodeConfig struct {
	MaxDepth int `mapstructure:"max_depth"`
}

var (
	// LogLevels lists the accepted log.level values.
	LogLevels = []string{"debug", "info", "warn", "error"}
	// LogFormats lists the accepted log.format values.
	LogFormats = []string{"console", "json"}
	// OutputFormats lists the accepted output.format values.
	OutputFormats = []string{"text", "json", "yaml"}
)

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		FormatVersion: int(ir.CurrentFormatVersion),
		Store:         StoreConfig{Path: filepath.Join(".morphir", "ir.db")},
		Log:           LogConfig{Level: "info", Format: "console"},
		Output:        OutputConfig{Format: "text"},
		Decode:        DecodeConfig{MaxDepth: codec.DefaultMaxDepth},
	}
}

// Load reads the configuration. An explicit file must exist; otherwise
// ./morphir-ir.yaml and $HOME/.config/morphir-ir/morphir-ir.yaml are
// searched and a missing file means defaults. Environment variables
// override both.
func Load(file string) (*Config, error) {
	v := viper.New()

	d := Defaults()
	v.SetDefault("format_version", d.FormatVersion)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("decode.max_depth", d.Decode.MaxDepth)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", FileName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Version returns the configured format version.
func (c *Config) Version() ir.FormatVersion {
	return ir.FormatVersion(c.FormatVersion)
}

// Validate checks every setting against its accepted values.
func (c *Config) Validate() error {
	if !c.Version().IsSupported() {
		return fmt.Errorf("format_version must be one of %v, got: %d", ir.SupportedFormatVersions, c.FormatVersion)
	}
	if c.Store.Path == "" {
		return fmt.Errorf("store.path must not be empty")
	}
	if !slices.Contains(LogLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v, got: %s", LogLevels, c.Log.Level)
	}
	if !slices.Contains(LogFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v, got: %s", LogFormats, c.Log.Format)
	}
	if !slices.Contains(OutputFormats, c.Output.Format) {
		return fmt.Errorf("output.format must be one of %v, got: %s", OutputFormats, c.Output.Format)
	}
	if c.Decode.MaxDepth <= 0 {
		return fmt.Errorf("decode.max_depth must be positive, got: %d", c.Decode.MaxDepth)
	}
	return nil
}

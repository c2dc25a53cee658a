// Package config provides configuration management for tagdata using Viper
// for loading from files, environment variables and command-line flags.
//
// Values come from .tagdata.yml, TAGDATA_ prefixed environment variables and
// flags bound by the cmd package. Load applies defaults and validates the
// result.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/conneroisu/tagdata/internal/errors"
	"github.com/conneroisu/tagdata/internal/logging"
	"github.com/conneroisu/tagdata/internal/render"
)

type Config struct {
	Log    LogConfig    `yaml:"log"    mapstructure:"log"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Render RenderConfig `yaml:"render" mapstructure:"render"`
	Data   DataConfig   `yaml:"data"   mapstructure:"data"`
	Watch  WatchConfig  `yaml:"watch"  mapstructure:"watch"`
}

type LogConfig struct {
	Level  string `yaml:"level"  mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

type RenderConfig struct {
	Style string `yaml:"style" mapstructure:"style"`
	Width int    `yaml:"width" mapstructure:"width"`
}

type DataConfig struct {
	CustomFiles []string `yaml:"custom_files" mapstructure:"custom_files"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// OutputFormats lists the accepted values of output.format.
var OutputFormats = []string{"table", "json", "yaml"}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("output.format", "table")
	v.SetDefault("render.style", "auto")
	v.SetDefault("render.width", render.DefaultWidth)
	v.SetDefault("data.custom_files", []string{})
	v.SetDefault("watch.debounce", 300*time.Millisecond)
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "cannot unmarshal configuration").
			WithCause(err)
	}

	// viper does not split comma separated env values into slices
	if v.IsSet("data.custom_files") && len(config.Data.CustomFiles) == 0 {
		config.Data.CustomFiles = v.GetStringSlice("data.custom_files")
	}
	if len(config.Data.CustomFiles) == 1 && strings.Contains(config.Data.CustomFiles[0], ",") {
		config.Data.CustomFiles = strings.Split(config.Data.CustomFiles[0], ",")
	}
	for i, path := range config.Data.CustomFiles {
		config.Data.CustomFiles[i] = strings.TrimSpace(path)
	}

	config.Log.Level = strings.ToLower(config.Log.Level)
	config.Log.Format = strings.ToLower(config.Log.Format)
	config.Output.Format = strings.ToLower(config.Output.Format)

	if err := validateConfig(&config); err != nil {
		return nil, errors.NewConfigError(errors.ErrCodeConfigInvalid, "invalid configuration").
			WithCause(err)
	}

	return &config, nil
}

// LoggerConfig converts the log section into a logger configuration.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	cfg := logging.DefaultConfig()
	// validated by Load
	cfg.Level, _ = logging.ParseLevel(c.Log.Level)
	cfg.Format = c.Log.Format

	return cfg
}

func validateConfig(config *Config) error {
	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("log config: %w", err)
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("log config: format must be text or json, got %q", config.Log.Format)
	}

	if !contains(OutputFormats, config.Output.Format) {
		return fmt.Errorf("output config: format %q is not one of: %s",
			config.Output.Format, strings.Join(OutputFormats, ", "))
	}

	if config.Render.Width < 0 || config.Render.Width > 1000 {
		return fmt.Errorf("render config: width %d is not in range 0-1000", config.Render.Width)
	}

	for _, path := range config.Data.CustomFiles {
		if err := validatePath(path); err != nil {
			return fmt.Errorf("data config: invalid custom file %q: %w", path, err)
		}
	}

	if config.Watch.Debounce < 0 {
		return fmt.Errorf("watch config: debounce must not be negative, got %s", config.Watch.Debounce)
	}

	return nil
}

func validatePath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}

	switch filepath.Ext(path) {
	case ".json", ".yaml", ".yml":
		return nil
	default:
		return fmt.Errorf("extension must be .json, .yaml or .yml")
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}

	return false
}

// Package config loads the kompost command configuration from an optional
// YAML file, KOMPOST_* environment variables and command line flags.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kompost/internal/logging"
)

const (
	OutputText = "text"
	OutputJSON = "json"

	envPrefix = "KOMPOST"
)

// Config is the command configuration.
type Config struct {
	Log    logging.Config `yaml:"log" mapstructure:"log"`
	Output string         `yaml:"output" mapstructure:"output"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Log.ApplyDefaults()
	if c.Output == "" {
		c.Output = OutputText
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	validOutputs := []string{OutputText, OutputJSON}
	if !slices.Contains(validOutputs, c.Output) {
		return fmt.Errorf("output must be one of %v (got: %s)", validOutputs, c.Output)
	}
	return nil
}

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"no-color":   "log.no_color",
	"output":     "output",
}

// Load reads the configuration. Precedence, highest first: flags that were
// set explicitly, environment variables, the config file at path (if not
// empty), defaults.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()

	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", logging.FormatConsole)
	v.SetDefault("log.no_color", false)
	v.SetDefault("log.timestamp", false)
	v.SetDefault("output", OutputText)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

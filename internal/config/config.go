// Package config defines the application configuration and loads it from a
// YAML file, the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/iwvelando/purchase-cost/pkg/constants"
	"github.com/iwvelando/purchase-cost/pkg/fields"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for purchase-cost.
type Configuration struct {
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
	Currency    string        `yaml:"currency,omitempty"`
	Locale      string        `yaml:"locale,omitempty"`
	Progressive fields.Fields `yaml:"progressive,omitempty"`
	Retrograde  fields.Fields `yaml:"retrograde,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, json
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("currency", constants.DefaultCurrency)
	v.SetDefault("locale", constants.DefaultLocale)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path yields the defaults with environment
// overrides applied.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	}
	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from an io.Reader.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// LoadDotEnv exports the variables of a .env file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

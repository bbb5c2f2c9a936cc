// Package config provides Viper-based configuration loading for the
// damage calculator.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ContentConfig holds the file paths of the reference-data catalogs.
type ContentConfig struct {
	// Natures is the path to the nature-modifier YAML table.
	Natures string `mapstructure:"natures"`
	// Items is the path to the attacker/defender item-effect YAML table.
	Items string `mapstructure:"items"`
	// Abilities is the path to the offensive/defensive ability YAML table.
	Abilities string `mapstructure:"abilities"`
	// Species is the path to the pokedex YAML table.
	Species string `mapstructure:"species"`
	// Moves is the path to the move catalog YAML table.
	Moves string `mapstructure:"moves"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// Config is the top-level application configuration.
type Config struct {
	Content ContentConfig `mapstructure:"content"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateContent(c.Content); err != nil {
		errs = append(errs, err.Error())
	}
	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateContent(c ContentConfig) error {
	var errs []string
	if c.Natures == "" {
		errs = append(errs, "content.natures must not be empty")
	}
	if c.Items == "" {
		errs = append(errs, "content.items must not be empty")
	}
	if c.Abilities == "" {
		errs = append(errs, "content.abilities must not be empty")
	}
	if c.Species == "" {
		errs = append(errs, "content.species must not be empty")
	}
	if c.Moves == "" {
		errs = append(errs, "content.moves must not be empty")
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads configuration from the given file path, applies environment
// variable overrides, and validates the result.
//
// Precondition: path must be a valid file path to a YAML configuration file.
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Environment variable overrides with POKECALC_ prefix
	v.SetEnvPrefix("POKECALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromViper builds a Config from an already-configured Viper instance.
//
// Precondition: v must be non-nil and have configuration values set.
// Postcondition: Returns a valid Config or a non-nil error.
func LoadFromViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("content.natures", "content/natures.yaml")
	v.SetDefault("content.items", "content/items.yaml")
	v.SetDefault("content.abilities", "content/abilities.yaml")
	v.SetDefault("content.species", "content/species.yaml")
	v.SetDefault("content.moves", "content/moves.yaml")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

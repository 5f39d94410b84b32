// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package config loads the decnum command line settings.
// Sources are applied in order: defaults, a config file, DECNUM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/avdva/decnum/dfp"
	"github.com/avdva/decnum/round"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables, like DECNUM_ROUNDING.
	EnvPrefix = "DECNUM"
	// FileName is the config file name searched for without an explicit path.
	FileName = "decnum"

	// FormatPlain prints values like 1234.5.
	FormatPlain = "plain"
	// FormatScientific prints values like 1.2345e+3.
	FormatScientific = "sci"
)

// Config holds the settings shared by all commands.
type Config struct {
	// Rounding is a rounding mode name, see round.ParseMode.
	Rounding string `mapstructure:"rounding"`
	// Split is the number of scale bits of packed words.
	Split int `mapstructure:"split"`
	// Scale is the target scale of extended decimal divisions and roots.
	Scale int `mapstructure:"scale"`
	// Format is either FormatPlain or FormatScientific.
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("rounding", round.HalfEven.String())
	v.SetDefault("split", 8)
	v.SetDefault("scale", -18)
	v.SetDefault("format", FormatPlain)
}

// Load reads the configuration. If path is empty, decnum.{yaml,toml,json} is looked up
// in the working directory and in $HOME/.config/decnum, and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/decnum")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks that all the settings are in range.
func (c *Config) Validate() error {
	if _, err := c.Mode(); err != nil {
		return err
	}
	if c.Split < 0 || c.Split > 8 {
		return fmt.Errorf("split must be in [0, 8], got %d", c.Split)
	}
	if c.Scale < dfp.MinScale || c.Scale > dfp.MaxScale {
		return fmt.Errorf("scale must be in [%d, %d], got %d", dfp.MinScale, dfp.MaxScale, c.Scale)
	}
	if _, err := c.Verb(); err != nil {
		return err
	}
	return nil
}

// Mode returns the configured rounding mode.
func (c *Config) Mode() (round.Mode, error) {
	return round.ParseMode(c.Rounding)
}

// Verb returns the strutil format verb for the configured output format.
func (c *Config) Verb() (byte, error) {
	switch c.Format {
	case FormatPlain:
		return 'f', nil
	case FormatScientific:
		return 'e', nil
	}
	return 0, fmt.Errorf("unknown format %q", c.Format)
}

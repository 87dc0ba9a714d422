// Package config resolves runtime settings from defaults, an optional YAML
// file, TODOS_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultDB       = "db.json"
	DefaultTheme    = "classic"
	DefaultTimezone = "Local"

	envPrefix = "TODOS"
)

// Config is the resolved application configuration.
type Config struct {
	// DB is the path of the JSON file holding the todos.
	DB string `mapstructure:"db" yaml:"db"`
	// Theme selects the color theme: classic, neon or mono.
	Theme string `mapstructure:"theme" yaml:"theme"`
	// Timezone is an IANA zone name, or "Local", used for dates and labels.
	Timezone string `mapstructure:"timezone" yaml:"timezone"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{DB: DefaultDB, Theme: DefaultTheme, Timezone: DefaultTimezone}
}

// Load reads the YAML file at path (skipped when empty or missing), then
// applies environment variables and any changed flags in flags whose names
// match config keys.
//
// Load always returns a usable config. A malformed file, an undecodable value
// or an unknown time zone is reported in the error while every other setting,
// explicit flags in particular, is kept.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("db", DefaultDB)
	v.SetDefault("theme", DefaultTheme)
	v.SetDefault("timezone", DefaultTimezone)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var errs []error
	if flags != nil {
		for _, key := range []string{"db", "theme", "timezone"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					errs = append(errs, fmt.Errorf("binding flag %s: %w", key, err))
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			var pathErr *os.PathError
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &pathErr) && !errors.As(err, &notFound) {
				errs = append(errs, fmt.Errorf("reading config %s: %w", path, err))
			}
		}
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		errs = append(errs, fmt.Errorf("parsing config %s: %w", path, err))
		cfg = Default()
	}
	ApplyFlags(cfg, flags)

	if _, err := cfg.Location(); err != nil {
		errs = append(errs, err)
	}
	return cfg, errors.Join(errs...)
}

// ApplyFlags copies changed db, theme and timezone flags onto cfg.
func ApplyFlags(cfg *Config, flags *pflag.FlagSet) {
	if flags == nil {
		return
	}
	for key, dst := range map[string]*string{
		"db":       &cfg.DB,
		"theme":    &cfg.Theme,
		"timezone": &cfg.Timezone,
	} {
		if f := flags.Lookup(key); f != nil && f.Changed {
			*dst = f.Value.String()
		}
	}
}

// Location resolves Timezone. Empty and "Local" mean the process zone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || strings.EqualFold(c.Timezone, DefaultTimezone) {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

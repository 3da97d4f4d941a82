package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment override, e.g. TRIPCOST_PEOPLE.
const EnvPrefix = "tripcost"

// Env holds overrides read from the environment. Nil or empty fields leave
// the file values untouched.
type Env struct {
	People     *int     `envconfig:"PEOPLE"`
	Days       *int     `envconfig:"DAYS"`
	SkiDays    *int     `envconfig:"SKI_DAYS"`
	Activities *float64 `envconfig:"ACTIVITIES"`
	Theme      string   `envconfig:"THEME"`
	Currency   string   `envconfig:"CURRENCY"`
	LogLevel   string   `envconfig:"LOG_LEVEL" default:"info"`
	LogFile    string   `envconfig:"LOG_FILE"`
}

// ReadEnv processes TRIPCOST_* variables.
func ReadEnv() (Env, error) {
	var env Env
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return env, fmt.Errorf("reading environment: %w", err)
	}
	return env, nil
}

// Apply returns cfg with the environment overrides laid on top.
func (e Env) Apply(cfg Config) Config {
	if e.People != nil {
		cfg.Defaults.People = *e.People
	}
	if e.Days != nil {
		cfg.Defaults.Days = *e.Days
	}
	if e.SkiDays != nil {
		cfg.Defaults.SkiDays = *e.SkiDays
	}
	if e.Activities != nil {
		cfg.Defaults.Activities = *e.Activities
	}
	if e.Theme != "" {
		cfg.Appearance.Theme = e.Theme
	}
	if e.Currency != "" {
		cfg.Display.Currency = e.Currency
	}
	return cfg
}

// LoadEffective loads the config file and applies environment overrides.
// Each source fails on its own: an unreadable file falls back to defaults,
// a malformed variable leaves the file values in place. The returned Config
// is always usable and err joins whatever went wrong.
func LoadEffective() (Config, Env, error) {
	cfg, fileErr := Load()
	if fileErr != nil {
		cfg = DefaultConfig()
	}
	env, envErr := ReadEnv()
	if envErr != nil {
		return cfg, Env{}, errors.Join(fileErr, envErr)
	}
	return env.Apply(cfg), env, fileErr
}

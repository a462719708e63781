// Package app resolves runtime configuration and opens the configured store.
package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"github.com/saadjs/nutrilog/internal/nutrition"
)

type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendBolt   Backend = "bolt"
	BackendMemory Backend = "memory"
)

func ParseBackend(raw string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(raw))); b {
	case "":
		return BackendSQLite, nil
	case BackendSQLite, BackendBolt, BackendMemory:
		return b, nil
	}
	return "", fmt.Errorf("invalid backend %q (use sqlite, bolt or memory)", raw)
}

// Config is read from NUTRILOG_* environment variables. Command line flags
// override StorePath and Backend.
type Config struct {
	StorePath string `env:"NUTRILOG_STORE"`
	Backend   string `env:"NUTRILOG_BACKEND"    envDefault:"sqlite"`
	TimeZone  string `env:"NUTRILOG_TZ"`
	WeekStart string `env:"NUTRILOG_WEEK_START" envDefault:"monday"`
	Addr      string `env:"NUTRILOG_ADDR"       envDefault:":8080"`
	Lang      string `env:"NUTRILOG_LANG"       envDefault:"en"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Location resolves TimeZone. Empty means the host's local zone.
func (c Config) Location() (*time.Location, error) {
	name := strings.TrimSpace(c.TimeZone)
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", name, err)
	}
	return loc, nil
}

func (c Config) FirstWeekday() (time.Weekday, error) {
	if strings.TrimSpace(c.WeekStart) == "" {
		return time.Monday, nil
	}
	return nutrition.ParseWeekday(c.WeekStart)
}

// Language falls back to English for tags it cannot parse.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(strings.TrimSpace(c.Lang))
	if err != nil {
		return language.English
	}
	return tag
}

// ResolveStorePath returns StorePath, or the per-user default for the backend.
func (c Config) ResolveStorePath() (string, error) {
	backend, err := ParseBackend(c.Backend)
	if err != nil {
		return "", err
	}
	if backend == BackendMemory {
		return "", nil
	}
	if p := strings.TrimSpace(c.StorePath); p != "" {
		return p, nil
	}
	return DefaultStorePath(backend)
}

// Package config loads afscreen settings from an ini file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/inovacc/afscreen/internal/application"
	"github.com/inovacc/afscreen/internal/core"
	"github.com/inovacc/afscreen/internal/encoding"
	"gopkg.in/ini.v1"
)

const (
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"

	FormatText = "text"
	FormatJSON = "json"
)

type GenerateSection struct {
	ChunkSize      int    `ini:"chunk_size"`
	NameColumn     string `ini:"name_column"`
	SequenceColumn string `ini:"sequence_column"`
	Output         string `ini:"output"`
}

type HistorySection struct {
	Enabled bool   `ini:"enabled"`
	Backend string `ini:"backend"`
}

type LogSection struct {
	Level  string `ini:"level"`
	Format string `ini:"format"`
}

// Config holds the application configuration
type Config struct {
	Generate GenerateSection
	History  HistorySection
	Log      LogSection
}

// Default returns a Config with the built-in defaults
func Default() Config {
	return Config{
		Generate: GenerateSection{ChunkSize: core.DefaultChunkSize},
		History:  HistorySection{Enabled: true, Backend: BackendBolt},
		Log:      LogSection{Level: "warn", Format: FormatText},
	}
}

// DefaultPath returns the config file inside the application directory.
func DefaultPath() (string, error) {
	return application.Path(application.ConfigFileName)
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}

		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	f, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := f.Section("generate").MapTo(&cfg.Generate); err != nil {
		return nil, fmt.Errorf("invalid [generate] section: %w", err)
	}

	if err := f.Section("history").MapTo(&cfg.History); err != nil {
		return nil, fmt.Errorf("invalid [history] section: %w", err)
	}

	if err := f.Section("log").MapTo(&cfg.Log); err != nil {
		return nil, fmt.Errorf("invalid [log] section: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	f := ini.Empty()

	if err := f.Section("generate").ReflectFrom(&cfg.Generate); err != nil {
		return err
	}

	if err := f.Section("history").ReflectFrom(&cfg.History); err != nil {
		return err
	}

	if err := f.Section("log").ReflectFrom(&cfg.Log); err != nil {
		return err
	}

	if err := encoding.EnsureParentDir(path); err != nil {
		return err
	}

	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}

	return nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if c.Generate.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be at least 1, got %d", c.Generate.ChunkSize)
	}

	switch c.History.Backend {
	case BackendBolt, BackendSQLite:
	default:
		return fmt.Errorf("unknown history backend %q (want %s or %s)", c.History.Backend, BackendBolt, BackendSQLite)
	}

	switch strings.ToLower(c.Log.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q (want %s or %s)", c.Log.Format, FormatText, FormatJSON)
	}

	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}

// ParseLevel converts a level name such as "warn" to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("unknown log level %q", s)
	}

	return level, nil
}

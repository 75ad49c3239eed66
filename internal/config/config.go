// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads wnutil settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/data"
)

// Config is the wnutil configuration.
type Config struct {
	// Dir is the database directory. If empty wordnet.DefaultDir is used.
	Dir  string     `yaml:"dir" env:"WORDNET_DIR"`
	Log  LogConfig  `yaml:"log"`
	Read ReadConfig `yaml:"read"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"WNUTIL_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"WNUTIL_LOG_FORMAT" env-default:"text"`
}

// ReadConfig holds data file read settings.
type ReadConfig struct {
	Window        int `yaml:"window"          env:"WNUTIL_READ_WINDOW"          env-default:"16384"`
	MaxRecordSize int `yaml:"max_record_size" env:"WNUTIL_READ_MAX_RECORD_SIZE" env-default:"1048576"`
	Concurrency   int `yaml:"concurrency"     env:"WNUTIL_READ_CONCURRENCY"     env-default:"16"`
}

// Load reads configuration from the YAML file at path and the environment.
// Environment variables take priority over the file. If path is empty only
// the environment and defaults are used.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	if c.Read.Window <= 0 {
		return fmt.Errorf("read.window must be > 0 (got %d)", c.Read.Window)
	}
	if c.Read.MaxRecordSize < c.Read.Window {
		return fmt.Errorf("read.max_record_size must be >= read.window (got %d)", c.Read.MaxRecordSize)
	}
	if c.Read.Concurrency <= 0 {
		return fmt.Errorf("read.concurrency must be > 0 (got %d)", c.Read.Concurrency)
	}
	return nil
}

// Options returns the wordnet options for the configuration.
func (c *Config) Options(logger *slog.Logger) *wordnet.Options {
	return &wordnet.Options{
		Logger: logger,
		File: &data.FileOptions{
			Window:        c.Read.Window,
			MaxRecordSize: c.Read.MaxRecordSize,
		},
		Concurrency: c.Read.Concurrency,
	}
}

// NewLogger creates a *slog.Logger writing to w based on the LogConfig.
func NewLogger(cfg LogConfig, w io.Writer) *slog.Logger {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

var errLevel = errors.New("unknown log level")

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w %q", errLevel, s)
	}
}

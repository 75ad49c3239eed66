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

package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var defaults = Config{
	Log: LogConfig{
		Level:  "warn",
		Format: "text",
	},
	Read: ReadConfig{
		Window:        16384,
		MaxRecordSize: 1048576,
		Concurrency:   16,
	},
}

// TestLoad_env tests loading from the environment.
func TestLoad_env(t *testing.T) {
	t.Setenv("WORDNET_DIR", "/tmp/dict")
	t.Setenv("WNUTIL_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := defaults
	want.Dir = "/tmp/dict"
	want.Log.Level = "debug"
	if diff := cmp.Diff(&want, cfg); diff != "" {
		t.Fatalf("Load (-want, +got):\n%s", diff)
	}
}

// TestLoad_file tests loading from a YAML file.
func TestLoad_file(t *testing.T) {
	t.Setenv("WNUTIL_READ_CONCURRENCY", "4")

	path := filepath.Join(t.TempDir(), "wnutil.yaml")
	yaml := "dir: /opt/wordnet\nlog:\n  format: json\nread:\n  window: 4096\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := defaults
	want.Dir = "/opt/wordnet"
	want.Log.Format = "json"
	want.Read.Window = 4096
	want.Read.Concurrency = 4
	if diff := cmp.Diff(&want, cfg); diff != "" {
		t.Fatalf("Load (-want, +got):\n%s", diff)
	}

	opts := cfg.Options(nil)
	if opts.File.Window != 4096 || opts.Concurrency != 4 {
		t.Fatalf("Options: unexpected options %+v", opts)
	}
}

// TestLoad_missingFile tests that an explicit config file must exist.
func TestLoad_missingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("Load: expected failure")
	}
}

// TestValidate tests Config.Validate.
func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*Config)
		err    string
	}{
		{
			name:   "defaults",
			modify: func(*Config) {},
		},
		{
			name:   "bad level",
			modify: func(c *Config) { c.Log.Level = "loud" },
			err:    "log.level",
		},
		{
			name:   "bad format",
			modify: func(c *Config) { c.Log.Format = "xml" },
			err:    "log.format",
		},
		{
			name:   "bad window",
			modify: func(c *Config) { c.Read.Window = 0 },
			err:    "read.window",
		},
		{
			name:   "small max record size",
			modify: func(c *Config) { c.Read.MaxRecordSize = 10 },
			err:    "read.max_record_size",
		},
		{
			name:   "bad concurrency",
			modify: func(c *Config) { c.Read.Concurrency = -1 },
			err:    "read.concurrency",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaults
			test.modify(&cfg)
			err := cfg.Validate()
			if test.err == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), test.err) {
				t.Fatalf("Validate: want error containing %q, got: %v", test.err, err)
			}
		})
	}
}

// TestNewLogger tests NewLogger.
func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(LogConfig{Level: "info", Format: "json"}, &buf)
	logger.Debug("hidden")
	logger.Info("shown", "word", "test")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug message logged at info level: %s", out)
	}
	if !strings.Contains(out, `"word":"test"`) {
		t.Fatalf("missing attribute in %s", out)
	}
}

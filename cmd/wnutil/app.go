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

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/index"
	"github.com/ianlewis/go-wordnet/internal/config"
	"github.com/ianlewis/go-wordnet/pos"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrWnutil is a parent error for all command errors.
var ErrWnutil = errors.New("wnutil")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrWnutil)

var copyrightNames = []string{
	"2026 Google LLC",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print version information and exit",
		Aliases:            []string{"V"},
		DisableDefaultText: true,
	}
	cli.VersionPrinter = printVersion
}

func printVersion(c *cli.Context) {
	fmt.Fprintf(c.App.Writer, "%s %s\n", c.App.Name, c.App.Version)
	fmt.Fprintln(c.App.Writer)
	vi := version.GetVersionInfo()
	fmt.Fprint(c.App.Writer, vi.String())
	fmt.Fprintln(c.App.Writer)
	fmt.Fprintln(c.App.Writer, "Copyright (c)", c.App.Copyright)
}

func newWnutilApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search WordNet lexical databases.",
		Description: strings.Join([]string{
			"WordNet utility written in Go.",
			"http://github.com/ianlewis/go-wordnet",
		}, "\n"),
		Version: version.GetVersionInfo().GitVersion,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Usage:   "read the database in `DIR`",
				Aliases: []string{"d"},
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read settings from the YAML file at `PATH`",
				EnvVars: []string{"WNUTIL_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log at `LEVEL` (debug, info, warn, error)",
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Commands: []*cli.Command{
			wordsCommand,
			entriesCommand,
			lookupCommand,
			synsetsCommand,
		},
	}
}

// loadConfig loads the configuration and applies the global flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWnutil, err)
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
		}
	}
	if c.IsSet("data-dir") {
		cfg.Dir = c.String("data-dir")
	}
	if cfg.Dir == "" {
		cfg.Dir = findDataDir(dataLocations())
	}
	return cfg, nil
}

// findDataDir returns the first directory in dirs that holds a noun index or
// the empty string if there is none.
func findDataDir(dirs []string) string {
	for _, dir := range dirs {
		if _, err := index.Path(dir, pos.StorageNoun); err == nil {
			return dir
		}
	}
	return ""
}

// openWordNet loads the database selected by the configuration.
func openWordNet(c *cli.Context) (*wordnet.WordNet, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	logger := config.NewLogger(cfg.Log, c.App.ErrWriter)

	wn, err := wordnet.Open(c.Context, cfg.Dir, cfg.Options(logger))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWnutil, err)
	}
	return wn, nil
}

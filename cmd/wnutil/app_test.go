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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/internal/testutil"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := newWnutilApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr
	err := app.Run(append([]string{"wnutil"}, args...))
	return stdout.String(), err
}

func fixtureDB(t *testing.T) string {
	t.Helper()

	return testutil.MakeDB(t, testutil.Fixture(), &testutil.MakeDBOptions{
		Lexnames:   testutil.Lexnames,
		Exceptions: testutil.Exceptions,
	}).Dir
}

// TestWords tests the words command.
func TestWords(t *testing.T) {
	t.Parallel()

	out, err := run(t, "-d", fixtureDB(t), "words")
	if err != nil {
		t.Fatalf("words: %v", err)
	}
	want := []string{
		"covering",
		"experiment",
		"natural covering",
		"sea urchin",
		"test",
		"trial",
		"examine",
		"prove",
		"try",
		"hard",
		"soft",
		"tough",
	}
	if diff := cmp.Diff(want, strings.Split(strings.TrimSpace(out), "\n")); diff != "" {
		t.Fatalf("words (-want, +got):\n%s", diff)
	}
}

// TestLookup tests the lookup command.
func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string

		contains []string
		excludes []string
		err      error
	}{
		{
			name: "pointers",
			args: []string{"lookup", "test"},
			contains: []string{
				"\n  test\n",
				"type: noun",
				"lexfile: noun.act",
				"words: trial test",
				testutil.ShellGloss,
				"type: verb",
				"words: test prove try",
			},
			excludes: []string{
				"words: experiment",
				"words: examine",
			},
		},
		{
			name: "skip pointers",
			args: []string{"lookup", "--skip-pointers", "hard"},
			contains: []string{
				"type: adjective",
				"type: adverb",
			},
			excludes: []string{
				"words: soft",
			},
		},
		{
			name: "exception",
			args: []string{"lookup", "tried"},
			contains: []string{
				"\n  tried\n",
				"words: test prove try",
			},
		},
		{
			name: "not found",
			args: []string{"lookup", "notaword"},
			err:  wordnet.ErrNotFound,
		},
		{
			name: "no word",
			args: []string{"lookup"},
			err:  ErrFlagParse,
		},
	}

	dir := fixtureDB(t)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, append([]string{"-d", dir}, test.args...)...)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("lookup: want %v, got: %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			for _, s := range test.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output does not contain %q:\n%s", s, out)
				}
			}
			for _, s := range test.excludes {
				if strings.Contains(out, s) {
					t.Errorf("output contains %q:\n%s", s, out)
				}
			}
		})
	}
}

// TestEntries tests the entries command.
func TestEntries(t *testing.T) {
	t.Parallel()

	dir := fixtureDB(t)

	out, err := run(t, "-d", dir, "entries", "hard")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if want, got := 3, len(lines); want != got {
		t.Fatalf("entries: want %d lines, got:\n%s", want, out)
	}
	if !strings.HasPrefix(lines[0], "Lemma") {
		t.Fatalf("entries: missing header:\n%s", out)
	}

	out, err = run(t, "-d", dir, "entries")
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if want, got := 15, len(strings.Split(strings.TrimSpace(out), "\n")); want != got {
		t.Fatalf("entries: want %d lines, got %d:\n%s", want, got, out)
	}
}

// TestSynsets tests the synsets command.
func TestSynsets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string

		lines    int
		contains []string
		err      error
	}{
		{
			name:     "all",
			args:     []string{"synsets"},
			lines:    12,
			contains: []string{"noun.object", "sea urchin"},
		},
		{
			name:     "satellite",
			args:     []string{"synsets", "--pos", "s"},
			lines:    2,
			contains: []string{"tough"},
		},
		{
			name:  "limit",
			args:  []string{"synsets", "--limit", "2"},
			lines: 3,
		},
		{
			name: "bad pos",
			args: []string{"synsets", "--pos", "x"},
			err:  ErrFlagParse,
		},
	}

	dir := fixtureDB(t)

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			out, err := run(t, append([]string{"-d", dir}, test.args...)...)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("synsets: want %v, got: %v", test.err, err)
				}
				if exitCode(err) != ExitCodeFlagParseError {
					t.Fatalf("exitCode: want %d, got: %d", ExitCodeFlagParseError, exitCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("synsets: %v", err)
			}
			lines := strings.Split(strings.TrimSpace(out), "\n")
			if want, got := test.lines, len(lines); want != got {
				t.Fatalf("synsets: want %d lines, got %d:\n%s", want, got, out)
			}
			for _, s := range test.contains {
				if !strings.Contains(out, s) {
					t.Errorf("output does not contain %q:\n%s", s, out)
				}
			}
		})
	}
}

// TestDataDirEnv tests selecting the database with the environment.
func TestDataDirEnv(t *testing.T) {
	t.Setenv(wordnet.DirEnv, fixtureDB(t))

	out, err := run(t, "lookup", "--skip-pointers", "sea urchin")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if !strings.Contains(out, "words: sea urchin") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

// TestFindDataDir tests findDataDir.
func TestFindDataDir(t *testing.T) {
	t.Parallel()

	dir := fixtureDB(t)
	if want, got := dir, findDataDir([]string{t.TempDir(), dir}); want != got {
		t.Fatalf("findDataDir; want: %q, got: %q", want, got)
	}
	if got := findDataDir([]string{t.TempDir()}); got != "" {
		t.Fatalf("findDataDir; want: empty, got: %q", got)
	}
}

// TestVersion tests the version flag.
func TestVersion(t *testing.T) {
	t.Parallel()

	out, err := run(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	for _, want := range []string{"GitVersion:", "Copyright (c) 2026 Google LLC"} {
		if !strings.Contains(out, want) {
			t.Errorf("--version output does not contain %q:\n%s", want, out)
		}
	}
}

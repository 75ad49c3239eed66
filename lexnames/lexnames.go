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

// Package lexnames reads the WordNet lexnames file which maps lexicographer
// file numbers to lexicographer file names such as "noun.animal".
//
// Each line holds a two digit file number, the file name and the number of
// the syntactic category separated by tabs.
//
//	05	noun.animal	1
package lexnames

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-wordnet/internal/errs"
	"github.com/ianlewis/go-wordnet/internal/fields"
	"github.com/ianlewis/go-wordnet/internal/lines"
	"github.com/ianlewis/go-wordnet/pos"
)

// FileName is the name of the lexnames file in the database directory.
const FileName = "lexnames"

// ErrMalformed indicates a line that is not a valid lexnames line.
var ErrMalformed = errs.ErrMalformed

// categories maps syntactic category numbers to storage parts of speech.
var categories = map[int]pos.Storage{
	1: pos.StorageNoun,
	2: pos.StorageVerb,
	3: pos.StorageAdjective,
	4: pos.StorageAdverb,
}

// Name is a single lexicographer file.
type Name struct {
	// Number is the lexicographer file number used in data lines.
	Number int

	// Name is the lexicographer file name, e.g. "noun.animal".
	Name string

	// POS is the part of speech of the synsets in the file.
	POS pos.Storage
}

// Lexnames is a table of lexicographer files.
type Lexnames struct {
	names map[int]*Name
}

// New reads a lexnames table from r. New takes ownership of r and closes it.
func New(r io.ReadCloser) (*Lexnames, error) {
	return parse(lines.NewScanner(r))
}

// Open reads the lexnames file in dir. The returned error wraps
// fs.ErrNotExist if the database has no lexnames file.
func Open(dir string) (*Lexnames, error) {
	s, err := lines.Open(filepath.Join(dir, FileName))
	if err != nil {
		return nil, err
	}
	return parse(s)
}

func parse(s *lines.Scanner) (*Lexnames, error) {
	defer s.Close()

	l := &Lexnames{
		names: map[int]*Name{},
	}
	n := 0
	for s.Scan() {
		n++
		line := strings.TrimRight(s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		l.names[name.Number] = name
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading lexnames: %w", err)
	}

	return l, nil
}

// ParseLine parses a single lexnames line.
func ParseLine(line string) (*Name, error) {
	c := fields.NewCursor(strings.Fields(line))

	num, err := c.Int("file_number", fields.NoIndex, 10)
	if err != nil {
		return nil, fmt.Errorf("parsing lexnames line %q: %w", line, err)
	}
	name, err := c.Next("file_name", fields.NoIndex)
	if err != nil {
		return nil, fmt.Errorf("parsing lexnames line %q: %w", line, err)
	}
	cat, err := c.Int("category", fields.NoIndex, 10)
	if err != nil {
		return nil, fmt.Errorf("parsing lexnames line %q: %w", line, err)
	}
	p, ok := categories[cat]
	if !ok {
		return nil, fmt.Errorf("parsing lexnames line %q: %w: unknown category %d", line, ErrMalformed, cat)
	}

	return &Name{
		Number: num,
		Name:   name,
		POS:    p,
	}, nil
}

// Name returns the name of the lexicographer file with the given number.
func (l *Lexnames) Name(n int) (string, bool) {
	name, ok := l.Lookup(n)
	if !ok {
		return "", false
	}
	return name.Name, true
}

// Lookup returns the lexicographer file with the given number.
func (l *Lexnames) Lookup(n int) (*Name, bool) {
	if l == nil {
		return nil, false
	}
	name, ok := l.names[n]
	return name, ok
}

// Len returns the number of lexicographer files.
func (l *Lexnames) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

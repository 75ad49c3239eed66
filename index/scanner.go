// Copyright 2021 Google LLC
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

package index

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-wordnet/internal/lines"
	"github.com/ianlewis/go-wordnet/pos"
)

// Scanner scans an index file from start to end. Blank lines and comment
// lines are skipped.
type Scanner struct {
	s     *lines.Scanner
	entry *Entry
	n     int
	err   error
}

// NewScanner return a new index scanner that scans the index from start to
// end. The Scanner assumes ownership of the reader and should be closed with
// the Close method.
func NewScanner(r io.ReadCloser) *Scanner {
	return &Scanner{
		s: lines.NewScanner(r),
	}
}

// Open returns a new Scanner for the index file of the given part of speech
// in dir.
func Open(dir string, p pos.Storage) (*Scanner, error) {
	path, err := Path(dir, p)
	if err != nil {
		return nil, err
	}
	s, err := lines.Open(path)
	if err != nil {
		return nil, err
	}
	return &Scanner{s: s}, nil
}

// Scan advances the scanner to the next index entry. It returns false if the
// scan stops either by reaching the end of the index or an error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.s.Scan() {
		s.n++
		line := strings.TrimRight(s.s.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			s.err = fmt.Errorf("line %d: %w", s.n, err)
			return false
		}
		if e == nil {
			continue
		}
		s.entry = e
		return true
	}
	s.err = s.s.Err()
	return false
}

// Entry returns the most recent entry read by Scan.
func (s *Scanner) Entry() *Entry {
	return s.entry
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.s.Close(); err != nil {
		return fmt.Errorf("closing index file: %w", err)
	}
	return nil
}

// Path returns the path of the index file for the part of speech in dir. Both
// the Unix (index.noun) and Windows (noun.idx) file names are recognized and
// the Unix name may carry a .gz extension.
func Path(dir string, p pos.Storage) (string, error) {
	if !p.Valid() {
		return "", fmt.Errorf("%w: invalid part of speech %q", ErrMalformed, p)
	}

	names := []string{
		"index." + p.Ext(),
		"index." + p.Ext() + ".gz",
		p.Ext() + ".idx",
	}
	var err error
	for _, name := range names {
		path := filepath.Join(dir, name)
		_, err = os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("opening index file: %w", err)
		}
	}

	// Report the conventional name when nothing was found.
	return "", fmt.Errorf("opening index file %q: %w", filepath.Join(dir, names[0]), err)
}

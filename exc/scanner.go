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

package exc

import (
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-wordnet/internal/lines"
)

// Scanner scans an exception list from start to end. Blank lines are
// skipped.
type Scanner struct {
	s         *lines.Scanner
	exception *Exception
	n         int
	err       error
}

// NewScanner return a new exception list scanner. The Scanner assumes
// ownership of the reader and should be closed with the Close method.
func NewScanner(r io.ReadCloser) *Scanner {
	return &Scanner{
		s: lines.NewScanner(r),
	}
}

// Scan advances the scanner to the next exception. It returns false if the
// scan stops either by reaching the end of the list or an error.
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
		s.exception = e
		return true
	}
	s.err = s.s.Err()
	return false
}

// Exception returns the most recent exception read by Scan.
func (s *Scanner) Exception() *Exception {
	return s.exception
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	return s.err
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.s.Close(); err != nil {
		return fmt.Errorf("closing exception list: %w", err)
	}
	return nil
}

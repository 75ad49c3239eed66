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

// Package lines reads text files line by line.
package lines

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

const (
	initialBufSize = 64 * 1024

	// MaxLineSize is the longest line a Scanner accepts.
	MaxLineSize = 4 * 1024 * 1024
)

// Scanner scans a file from start to end one line at a time. Lines are
// returned without their terminating newline and are otherwise untouched:
// carriage returns and leading whitespace are left for the caller.
type Scanner struct {
	r io.ReadCloser
	s *bufio.Scanner
}

// NewScanner returns a new Scanner reading from r. The Scanner assumes
// ownership of the reader and should be closed with the Close method.
func NewScanner(r io.ReadCloser) *Scanner {
	s := &Scanner{
		r: r,
		s: bufio.NewScanner(r),
	}
	s.s.Buffer(make([]byte, initialBufSize), MaxLineSize)
	s.s.Split(splitLine)
	return s
}

// Open opens the file at path for scanning. Files ending in .gz or .dz are
// decompressed.
func Open(path string) (*Scanner, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	var r io.ReadCloser = f
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".gz" || ext == ".dz" {
		z, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		r = &gzipFile{Reader: z, f: f}
	}

	return NewScanner(r), nil
}

// Scan advances to the next line. It returns false if the scan stops either
// by reaching the end of the file or an error.
func (s *Scanner) Scan() bool {
	return s.s.Scan()
}

// Text returns the current line.
func (s *Scanner) Text() string {
	return s.s.Text()
}

// Bytes returns the current line. The underlying array may be overwritten by
// a subsequent call to Scan.
func (s *Scanner) Bytes() []byte {
	return s.s.Bytes()
}

// Err returns the first error encountered.
func (s *Scanner) Err() error {
	//nolint:wrapcheck // error should not be wrapped
	return s.s.Err()
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing file: %w", err)
	}
	return nil
}

// All returns an iterator over the lines of the file at path. The file is
// opened when iteration starts and closed when it stops, so every range over
// the iterator reads the file again from the start. Errors are yielded with
// an empty line and end the iteration.
func All(path string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s, err := Open(path)
		if err != nil {
			yield("", err)
			return
		}
		defer s.Close()

		for s.Scan() {
			if !yield(s.Text(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield("", fmt.Errorf("reading %q: %w", path, err))
		}
	}
}

// splitLine splits data at each newline. Trailing data without a newline is
// returned as the final line.
func splitLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	// Request more data.
	return 0, nil, nil
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g *gzipFile) Close() error {
	return errors.Join(g.Reader.Close(), g.f.Close())
}

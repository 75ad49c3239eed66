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

package data

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-wordnet/internal/errs"
	"github.com/ianlewis/go-wordnet/pos"
)

var (
	// ErrNoRecord indicates that there is no record at an offset, usually
	// because the offset is at or past the end of the file.
	ErrNoRecord = errors.New("no record")

	// ErrRecordTooLong indicates a record longer than FileOptions.MaxRecordSize.
	ErrRecordTooLong = errors.New("record too long")

	// ErrMissingFile indicates that there is no data file for a part of
	// speech.
	ErrMissingFile = errs.ErrMissingFile
)

// FileOptions are options for reading records from a data file.
type FileOptions struct {
	// Window is the number of bytes read at an offset. The longest synset in
	// the Princeton WordNet 3.0 data files is a little over 13000 bytes, so
	// most records are read with a single read.
	Window int

	// MaxRecordSize is the largest window tried when a record does not fit
	// in Window.
	MaxRecordSize int
}

// DefaultFileOptions is the default options for a File.
var DefaultFileOptions = &FileOptions{
	Window:        16 * 1024,
	MaxRecordSize: 1024 * 1024,
}

// File provides random access to the records of a data file. Record may be
// called concurrently.
type File struct {
	name   string
	r      io.ReaderAt
	f      *os.File
	window int
	max    int

	// mu serializes reads of compressed files.
	mu     sync.Mutex
	shared bool
}

// Open opens the data file at path. Files ending in .dz are read as dictzip
// files.
func Open(path string, options *FileOptions) (*File, error) {
	if options == nil {
		options = DefaultFileOptions
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}

	d := &File{
		name:   path,
		r:      f,
		f:      f,
		window: options.Window,
		max:    options.MaxRecordSize,
	}
	if d.window <= 0 {
		d.window = DefaultFileOptions.Window
	}
	if d.max < d.window {
		d.max = d.window
	}

	if strings.ToLower(filepath.Ext(path)) == ".dz" {
		z, err := dictzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("opening %q: %w", path, err)
		}
		d.r = z
		d.shared = true
	}

	return d, nil
}

// Name returns the path of the file.
func (d *File) Name() string {
	return d.name
}

// Record returns the record starting at offset, without its newline. The
// offset must be the start of a record. A record that does not fit in the
// read window is read again with a doubled window until it fits or
// MaxRecordSize is reached.
func (d *File) Record(offset int64) (string, error) {
	if offset < 0 {
		return "", fmt.Errorf("%w: negative offset %d in %q", ErrNoRecord, offset, d.name)
	}

	if d.shared {
		d.mu.Lock()
		defer d.mu.Unlock()
	}

	size := d.window
	for {
		b := make([]byte, size)
		n, err := d.r.ReadAt(b, offset)
		b = b[:n]
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			return string(b[:i]), nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading %q at offset %d: %w", d.name, offset, err)
		}

		if n == 0 {
			return "", fmt.Errorf("%w: offset %d in %q", ErrNoRecord, offset, d.name)
		}
		if n < size {
			// The last record in the file has no newline.
			return string(b), nil
		}
		if size >= d.max {
			return "", fmt.Errorf("%w: offset %d in %q exceeds %d bytes", ErrRecordTooLong, offset, d.name, d.max)
		}
		size = min(size*2, d.max)
	}
}

// Close closes the data file.
func (d *File) Close() error {
	if err := d.f.Close(); err != nil {
		return fmt.Errorf("closing data file: %w", err)
	}
	return nil
}

// ReadRecord opens the data file at path, reads the record at offset and
// closes the file.
func ReadRecord(path string, offset int64) (string, error) {
	d, err := Open(path, nil)
	if err != nil {
		return "", err
	}
	defer d.Close()
	return d.Record(offset)
}

// Path returns the path of the data file for the part of speech in dir. Both
// the Unix (data.noun) and Windows (noun.dat) file names are recognized and
// the Unix name may carry a .dz extension. If no file exists the returned
// error wraps ErrMissingFile.
func Path(dir string, p pos.Storage) (string, error) {
	if !p.Valid() {
		return "", fmt.Errorf("%w: invalid part of speech %q", ErrMissingFile, p)
	}

	names := []string{
		"data." + p.Ext(),
		"data." + p.Ext() + ".dz",
		p.Ext() + ".dat",
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("opening data file: %w", err)
		}
	}

	return "", fmt.Errorf("%w: %q", ErrMissingFile, filepath.Join(dir, names[0]))
}

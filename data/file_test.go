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

package data_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/internal/testutil"
	"github.com/ianlewis/go-wordnet/pos"
)

const testData = "  1 license\n" +
	"00000012 03 n 01 entity 0 000 | that which is perceived  \n" +
	"00000070 03 n 01 thing 0 000 | a separate and self-contained entity"

// TestFile_Record tests File.Record.
func TestFile_Record(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		ext      string
		dictZip  bool
		options  *data.FileOptions
		offset   int64
		expected string
		err      error
	}{
		{
			name:     "first record",
			ext:      ".noun",
			offset:   12,
			expected: "00000012 03 n 01 entity 0 000 | that which is perceived  ",
		},
		{
			name:     "last record without newline",
			ext:      ".noun",
			offset:   70,
			expected: "00000070 03 n 01 thing 0 000 | a separate and self-contained entity",
		},
		{
			name:   "past end",
			ext:    ".noun",
			offset: int64(len(testData)),
			err:    data.ErrNoRecord,
		},
		{
			name:   "negative",
			ext:    ".noun",
			offset: -1,
			err:    data.ErrNoRecord,
		},
		{
			name: "small window",
			ext:  ".noun",
			options: &data.FileOptions{
				Window:        4,
				MaxRecordSize: 1024,
			},
			offset:   12,
			expected: "00000012 03 n 01 entity 0 000 | that which is perceived  ",
		},
		{
			name: "record too long",
			ext:  ".noun",
			options: &data.FileOptions{
				Window:        4,
				MaxRecordSize: 16,
			},
			offset: 12,
			err:    data.ErrRecordTooLong,
		},
		{
			name:     "dictzip",
			ext:      ".noun.dz",
			dictZip:  true,
			offset:   12,
			expected: "00000012 03 n 01 entity 0 000 | that which is perceived  ",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "data"+test.ext)
			testutil.WriteFile(t, path, []byte(testData), test.dictZip)

			f, err := data.Open(path, test.options)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer f.Close()

			line, err := f.Record(test.offset)
			if !errors.Is(err, test.err) {
				t.Fatalf("Record: unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.expected, line); diff != "" {
				t.Fatalf("Record (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestFile_roundTrip reads every fixture synset back at its offset.
func TestFile_roundTrip(t *testing.T) {
	t.Parallel()

	for _, dictZip := range []bool{false, true} {
		db := testutil.MakeDB(t, testutil.Fixture(), &testutil.MakeDBOptions{DictZip: dictZip})

		for _, s := range testutil.Fixture() {
			path, err := data.Path(db.Dir, s.POS.Storage())
			if err != nil {
				t.Fatalf("Path: %v", err)
			}
			line, err := data.ReadRecord(path, db.Offsets[s.ID])
			if err != nil {
				t.Fatalf("ReadRecord(%q): %v", s.ID, err)
			}
			if diff := cmp.Diff(db.Lines[s.ID], line); diff != "" {
				t.Fatalf("ReadRecord(%q) (-want, +got):\n%s", s.ID, diff)
			}

			synset, err := data.ParseLine(line)
			if err != nil {
				t.Fatalf("ParseLine(%q): %v", s.ID, err)
			}
			if want, got := db.Offsets[s.ID], synset.Offset; want != got {
				t.Fatalf("%q offset; want: %d, got: %d", s.ID, want, got)
			}
			if want, got := s.Gloss, synset.Glossary; want != got {
				t.Fatalf("%q glossary; want: %q, got: %q", s.ID, want, got)
			}
		}
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	db := testutil.MakeDB(t, testutil.Fixture(), &testutil.MakeDBOptions{
		OmitData: []pos.Storage{pos.StorageAdverb},
	})

	path, err := data.Path(db.Dir, pos.StorageAdjective)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if want, got := filepath.Join(db.Dir, "data.adj"), path; want != got {
		t.Fatalf("Path; want: %q, got: %q", want, got)
	}

	_, err = data.Path(db.Dir, pos.StorageAdverb)
	if !errors.Is(err, data.ErrMissingFile) {
		t.Fatalf("Path: unexpected error: %v", err)
	}
	if !strings.Contains(err.Error(), "data.adv") {
		t.Fatalf("Path: error %q does not name the file", err)
	}
}

func TestOpen_missing(t *testing.T) {
	t.Parallel()

	_, err := data.Open(filepath.Join(t.TempDir(), "data.noun"), nil)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Open: unexpected error: %v", err)
	}
}

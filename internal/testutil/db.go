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

package testutil

import (
	"compress/gzip"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-wordnet/data"
	"github.com/ianlewis/go-wordnet/pos"
)

// License is written at the top of every fixture index and data file.
const License = "  1 This software and database is being provided to you, the LICENSEE, by  \n" +
	"  2 Princeton University under the following license.  By obtaining, using  \n"

// Synset is a fixture synset. Pointers refer to other fixture synsets by ID so
// that offsets can be computed when the files are written.
type Synset struct {
	ID         string
	POS        pos.POS
	LexFilenum int
	Words      []data.Word
	Pointers   []Pointer
	Frames     []data.Frame
	Gloss      string
}

// Pointer is a fixture pointer. If Target is empty the pointer points at
// Offset and POS, which need not exist.
type Pointer struct {
	Symbol       string
	Target       string
	SourceTarget string

	Offset int64
	POS    pos.POS
}

// MakeDBOptions are options for MakeDB.
type MakeDBOptions struct {
	// DictZip compresses the data files with dictzip and names them
	// data.<ext>.dz.
	DictZip bool

	// Gzip compresses the index files with gzip and names them
	// index.<ext>.gz.
	Gzip bool

	// OmitData lists parts of speech whose data file is not written.
	OmitData []pos.Storage

	// Lexnames is written to the lexnames file if not empty.
	Lexnames string

	// Exceptions are written to <ext>.exc files.
	Exceptions map[pos.Storage]string
}

// DB is a fixture database written to a temporary directory.
type DB struct {
	// Dir is the database directory.
	Dir string

	// Offsets maps synset IDs to their data file offsets.
	Offsets map[string]int64

	// Lines maps synset IDs to their data file lines.
	Lines map[string]string
}

// MakeDB writes the index and data files for synsets to a temporary
// directory. Index entries are generated from the synsets' words.
func MakeDB(t *testing.T, synsets []*Synset, opts *MakeDBOptions) *DB {
	t.Helper()
	if opts == nil {
		opts = &MakeDBOptions{}
	}

	db := &DB{
		Dir:     t.TempDir(),
		Offsets: map[string]int64{},
		Lines:   map[string]string{},
	}
	byID := map[string]*Synset{}
	for _, s := range synsets {
		byID[s.ID] = s
	}

	// All offsets are formatted with eight digits so lines have the same
	// length before and after offsets are known.
	for _, p := range pos.StorageOrder {
		offset := int64(len(License))
		for _, s := range synsets {
			if s.POS.Storage() != p {
				continue
			}
			db.Offsets[s.ID] = offset
			offset += int64(len(formatLine(t, s, nil, byID))) + 1
		}
	}

	for _, p := range pos.StorageOrder {
		var b strings.Builder
		b.WriteString(License)
		for _, s := range synsets {
			if s.POS.Storage() != p {
				continue
			}
			line := formatLine(t, s, db.Offsets, byID)
			db.Lines[s.ID] = line
			b.WriteString(line)
			b.WriteByte('\n')
		}

		if !slices.Contains(opts.OmitData, p) {
			name := "data." + p.Ext()
			if opts.DictZip {
				name += ".dz"
			}
			WriteFile(t, filepath.Join(db.Dir, name), []byte(b.String()), opts.DictZip)
		}

		name := "index." + p.Ext()
		idx := []byte(makeIndex(synsets, p, db.Offsets))
		if opts.Gzip {
			writeGzip(t, filepath.Join(db.Dir, name+".gz"), idx)
		} else {
			WriteFile(t, filepath.Join(db.Dir, name), idx, false)
		}
	}

	if opts.Lexnames != "" {
		WriteFile(t, filepath.Join(db.Dir, "lexnames"), []byte(opts.Lexnames), false)
	}
	for p, exc := range opts.Exceptions {
		WriteFile(t, filepath.Join(db.Dir, p.Ext()+".exc"), []byte(exc), false)
	}

	return db
}

// Lemma returns the index lemma of a fixture word.
func Lemma(w data.Word) string {
	return strings.ToLower(strings.TrimSuffix(w.Lemma, w.Marker()))
}

// WriteFile writes b to path, compressing it with dictzip if dictZip is true.
func WriteFile(t *testing.T, path string, b []byte, dictZip bool) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if dictZip {
		z, err := dictzip.NewWriter(f)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := z.Write(b); err != nil {
			t.Fatal(err)
		}
		if err := z.Close(); err != nil {
			t.Fatal(err)
		}
	} else if _, err := f.Write(b); err != nil {
		t.Fatal(err)
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

func writeGzip(t *testing.T, path string, b []byte) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z := gzip.NewWriter(f)
	if _, err := z.Write(b); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
}

// formatLine formats a data line. Offsets that are not known yet are written
// as zero.
func formatLine(t *testing.T, s *Synset, offsets map[string]int64, byID map[string]*Synset) string {
	t.Helper()

	var b strings.Builder
	fmt.Fprintf(&b, "%08d %02d %c %02x ", offsets[s.ID], s.LexFilenum, s.POS, len(s.Words))
	for _, w := range s.Words {
		fmt.Fprintf(&b, "%s %x ", w.Lemma, w.LexID)
	}
	fmt.Fprintf(&b, "%03d ", len(s.Pointers))
	for _, p := range s.Pointers {
		offset, ptrPOS := p.Offset, p.POS
		if p.Target != "" {
			target, ok := byID[p.Target]
			if !ok {
				t.Fatalf("synset %q: unknown pointer target %q", s.ID, p.Target)
			}
			offset, ptrPOS = offsets[p.Target], target.POS
		}
		st := p.SourceTarget
		if st == "" {
			st = "0000"
		}
		fmt.Fprintf(&b, "%s %08d %c %s ", p.Symbol, offset, ptrPOS, st)
	}
	if len(s.Frames) > 0 {
		fmt.Fprintf(&b, "%02d ", len(s.Frames))
		for _, f := range s.Frames {
			fmt.Fprintf(&b, "+ %02d %02x ", f.Number, f.Word)
		}
	}
	fmt.Fprintf(&b, "| %s  ", s.Gloss)
	return b.String()
}

// makeIndex builds the index file for one part of speech with lemmas sorted
// as in the WordNet distribution.
func makeIndex(synsets []*Synset, p pos.Storage, offsets map[string]int64) string {
	type entry struct {
		offsets  []int64
		pointers []string
	}
	entries := map[string]*entry{}
	for _, s := range synsets {
		if s.POS.Storage() != p {
			continue
		}
		for _, w := range s.Words {
			lemma := Lemma(w)
			e, ok := entries[lemma]
			if !ok {
				e = &entry{}
				entries[lemma] = e
			}
			if !slices.Contains(e.offsets, offsets[s.ID]) {
				e.offsets = append(e.offsets, offsets[s.ID])
			}
			for _, ptr := range s.Pointers {
				if !slices.Contains(e.pointers, ptr.Symbol) {
					e.pointers = append(e.pointers, ptr.Symbol)
				}
			}
		}
	}

	lemmas := make([]string, 0, len(entries))
	for lemma := range entries {
		lemmas = append(lemmas, lemma)
	}
	sort.Strings(lemmas)

	var b strings.Builder
	b.WriteString(License)
	for _, lemma := range lemmas {
		e := entries[lemma]
		fmt.Fprintf(&b, "%s %c %d %d ", lemma, p, len(e.offsets), len(e.pointers))
		for _, ptr := range e.pointers {
			fmt.Fprintf(&b, "%s ", ptr)
		}
		fmt.Fprintf(&b, "%d %d", len(e.offsets), 0)
		for _, o := range e.offsets {
			fmt.Fprintf(&b, " %08d", o)
		}
		b.WriteString("  \n")
	}
	return b.String()
}

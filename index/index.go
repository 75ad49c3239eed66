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

package index

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ianlewis/go-wordnet/internal/errs"
	"github.com/ianlewis/go-wordnet/internal/fields"
	"github.com/ianlewis/go-wordnet/pos"
)

// ErrMalformed indicates an index line that does not follow the index line
// grammar.
var ErrMalformed = errs.ErrMalformed

// Entry is an index file entry.
type Entry struct {
	// Lemma is the lemma in lower case with words joined by underscores.
	Lemma string

	// POS is the part of speech of the index file the entry came from.
	POS pos.POS

	// SynsetCount is the number of synsets the lemma is in.
	SynsetCount int

	// PointerCount is the number of distinct pointer types used by synsets
	// containing the lemma.
	PointerCount int

	// Pointers holds the PointerCount pointer symbols.
	Pointers []string

	// SenseCount is the number of senses of the lemma.
	SenseCount int

	// TagSenseCount is the number of senses ranked by semantic concordance
	// frequency.
	TagSenseCount int

	// Offsets are the byte offsets of the lemma's synsets in the data file
	// of POS, in index file order.
	Offsets []int64
}

// String implements [fmt.Stringer.String].
func (e *Entry) String() string {
	return e.Lemma
}

// Clone returns a copy of e that shares no memory with e.
func (e *Entry) Clone() *Entry {
	c := *e
	c.Pointers = slices.Clone(e.Pointers)
	c.Offsets = slices.Clone(e.Offsets)
	return &c
}

// IsComment returns true if line is a comment or license line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, " ")
}

// ParseLine parses a single index line. Comment lines return a nil Entry and
// a nil error.
func ParseLine(line string) (*Entry, error) {
	if IsComment(line) {
		return nil, nil
	}

	e, err := parseFields(fields.NewCursor(strings.Fields(line)))
	if err != nil {
		return nil, fmt.Errorf("parsing index line %q: %w", line, err)
	}
	return e, nil
}

func parseFields(c *fields.Cursor) (*Entry, error) {
	var e Entry
	var err error

	e.Lemma, err = c.Next("lemma", fields.NoIndex)
	if err != nil {
		return nil, err
	}

	code, err := c.Next("pos", fields.NoIndex)
	if err != nil {
		return nil, err
	}
	e.POS, err = pos.Parse(code)
	if err != nil {
		return nil, err
	}

	e.SynsetCount, err = c.Int("synset_cnt", fields.NoIndex, 10)
	if err != nil {
		return nil, err
	}

	e.PointerCount, err = c.Int("p_cnt", fields.NoIndex, 10)
	if err != nil {
		return nil, err
	}
	e.Pointers = make([]string, 0, min(e.PointerCount, c.Remaining()))
	for i := range e.PointerCount {
		symbol, err := c.Next("ptr_symbol", i)
		if err != nil {
			return nil, err
		}
		e.Pointers = append(e.Pointers, symbol)
	}

	e.SenseCount, err = c.Int("sense_cnt", fields.NoIndex, 10)
	if err != nil {
		return nil, err
	}

	e.TagSenseCount, err = c.Int("tagsense_cnt", fields.NoIndex, 10)
	if err != nil {
		return nil, err
	}

	rest := c.Rest()
	e.Offsets = make([]int64, len(rest))
	oc := fields.NewCursor(rest)
	for i := range e.Offsets {
		e.Offsets[i], err = oc.Int64("synset_offset", i, 10)
		if err != nil {
			return nil, err
		}
	}

	return &e, nil
}

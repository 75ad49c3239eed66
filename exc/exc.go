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

// Package exc reads WordNet morphological exception lists. An exception list
// maps irregular inflected forms to their base forms, one form per line:
//
//	geese goose
//	axes ax axis
package exc

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ianlewis/go-wordnet/internal/errs"
	"github.com/ianlewis/go-wordnet/internal/folding"
	"github.com/ianlewis/go-wordnet/internal/lines"
	"github.com/ianlewis/go-wordnet/internal/ordered"
	"github.com/ianlewis/go-wordnet/pos"
)

// ErrMalformed indicates a line without a base form.
var ErrMalformed = errs.ErrMalformed

// Exception is an exception list entry.
type Exception struct {
	// Inflected is the inflected form.
	Inflected string

	// BaseForms are the base forms of Inflected.
	BaseForms []string
}

// ParseLine parses a single exception list line.
func ParseLine(line string) (*Exception, error) {
	tokens := strings.Fields(line)
	if len(tokens) < 2 {
		return nil, fmt.Errorf("parsing exception line %q: %w: missing base form", line, ErrMalformed)
	}
	return &Exception{
		Inflected: tokens[0],
		BaseForms: tokens[1:],
	}, nil
}

// List is an exception list for one part of speech.
type List struct {
	// index is keyed by the folded inflected form.
	index *ordered.Index[*Exception]
}

// New reads an exception list from r. New takes ownership of r and closes
// it.
func New(r io.ReadCloser) (*List, error) {
	return read(NewScanner(r))
}

// Open reads the exception list of the part of speech in dir. The returned
// error wraps fs.ErrNotExist if there is no list.
func Open(dir string, p pos.Storage) (*List, error) {
	s, err := lines.Open(Path(dir, p))
	if err != nil {
		return nil, err
	}
	return read(&Scanner{s: s})
}

// Path returns the path of the exception list of the part of speech in dir.
func Path(dir string, p pos.Storage) string {
	return filepath.Join(dir, p.Ext()+".exc")
}

func read(s *Scanner) (*List, error) {
	defer s.Close()

	l := &List{
		index: ordered.NewIndex[*Exception](),
	}
	for s.Scan() {
		e := s.Exception()
		key, err := folding.Key(e.Inflected)
		if err != nil {
			return nil, err
		}
		l.index.Add(key, e)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("reading exception list: %w", err)
	}

	return l, nil
}

// BaseForms returns the base forms of word in human readable form, or nil if
// word is not in the list.
func (l *List) BaseForms(word string) []string {
	if l == nil {
		return nil
	}
	key, err := folding.Key(word)
	if err != nil {
		return nil
	}

	var forms []string
	for _, e := range l.index.Search(key) {
		for _, f := range e.BaseForms {
			forms = append(forms, folding.Display(f))
		}
	}
	return forms
}

// Len returns the number of entries in the list.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return l.index.Len()
}

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

package data

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ianlewis/go-wordnet/internal/errs"
	"github.com/ianlewis/go-wordnet/internal/fields"
	"github.com/ianlewis/go-wordnet/pos"
)

// ErrMalformed indicates a data line that does not follow the data line
// grammar.
var ErrMalformed = errs.ErrMalformed

// frameMarker precedes each verb frame.
const frameMarker = "+"

var recordRegex = regexp.MustCompile(`^[0-9]{8}\s`)

// IsRecord returns true if line starts like a synset record, with an eight
// digit offset followed by whitespace. License lines at the top of data files
// do not.
func IsRecord(line string) bool {
	return recordRegex.MatchString(line)
}

// ParseLine parses a single data line. Pointers are returned unresolved.
func ParseLine(line string) (*Synset, error) {
	meta := line
	var gloss string
	if i := strings.IndexByte(line, '|'); i >= 0 {
		meta = line[:i]
		gloss = line[i+1:]
	}

	s, err := parseFields(fields.NewCursor(strings.Fields(meta)))
	if err != nil {
		return nil, fmt.Errorf("parsing data line %q: %w", line, err)
	}
	s.Glossary = strings.TrimSpace(gloss)
	return s, nil
}

func parseFields(c *fields.Cursor) (*Synset, error) {
	var s Synset
	var err error

	s.Offset, err = c.Int64("synset_offset", fields.NoIndex, 10)
	if err != nil {
		return nil, err
	}

	s.LexFilenum, err = c.Int("lex_filenum", fields.NoIndex, 10)
	if err != nil {
		return nil, err
	}

	code, err := c.Next("ss_type", fields.NoIndex)
	if err != nil {
		return nil, err
	}
	s.POS, err = pos.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("ss_type: %w", err)
	}
	s.SynsetType = s.POS.Name()

	s.WordCount, err = c.Int("w_cnt", fields.NoIndex, 16)
	if err != nil {
		return nil, err
	}
	s.Words = make([]Word, 0, min(s.WordCount, c.Remaining()/2))
	for i := range s.WordCount {
		var w Word
		w.Lemma, err = c.Next("word", i)
		if err != nil {
			return nil, err
		}
		w.LexID, err = c.Int("lex_id", i, 16)
		if err != nil {
			return nil, err
		}
		s.Words = append(s.Words, w)
	}

	s.PointerCount, err = c.Int("p_cnt", fields.NoIndex, 10)
	if err != nil {
		return nil, err
	}
	s.Pointers = make([]Pointer, 0, min(s.PointerCount, c.Remaining()/4))
	for i := range s.PointerCount {
		p, err := parsePointer(c, i)
		if err != nil {
			return nil, err
		}
		s.Pointers = append(s.Pointers, p)
	}

	// Verb synsets end with a frame block.
	if c.Remaining() > 0 {
		s.Frames, err = parseFrames(c)
		if err != nil {
			return nil, err
		}
	}

	return &s, nil
}

func parsePointer(c *fields.Cursor, i int) (Pointer, error) {
	var p Pointer
	var err error

	p.Symbol, err = c.Next("pointer.symbol", i)
	if err != nil {
		return p, err
	}
	p.Offset, err = c.Int64("pointer.offset", i, 10)
	if err != nil {
		return p, err
	}
	code, err := c.Next("pointer.pos", i)
	if err != nil {
		return p, err
	}
	p.POS, err = pos.Parse(code)
	if err != nil {
		return p, fmt.Errorf("pointer[%d]: %w", i, err)
	}
	p.SourceTarget, err = c.Next("pointer.source_target", i)
	return p, err
}

func parseFrames(c *fields.Cursor) ([]Frame, error) {
	n, err := c.Int("f_cnt", fields.NoIndex, 10)
	if err != nil {
		return nil, err
	}
	frames := make([]Frame, 0, min(n, c.Remaining()/3))
	for i := range n {
		marker, err := c.Next("frame.marker", i)
		if err != nil {
			return nil, err
		}
		if marker != frameMarker {
			return nil, fmt.Errorf("%w: frame[%d] starts with %q", ErrMalformed, i, marker)
		}
		var f Frame
		f.Number, err = c.Int("frame.f_num", i, 10)
		if err != nil {
			return nil, err
		}
		f.Word, err = c.Int("frame.w_num", i, 16)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

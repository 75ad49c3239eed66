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

// Package fields reads whitespace separated record fields in order.
package fields

import (
	"fmt"
	"strconv"

	"github.com/ianlewis/go-wordnet/internal/errs"
)

// NoIndex is passed as the index of fields that are not part of a list.
const NoIndex = -1

// Cursor walks a fixed list of tokens. Every read is bounds checked and
// failures name the field that was expected.
type Cursor struct {
	tokens []string
	pos    int
}

// NewCursor returns a Cursor positioned at the first token.
func NewCursor(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next returns the next token. field and i name the token in errors.
func (c *Cursor) Next(field string, i int) (string, error) {
	if c.pos >= len(c.tokens) {
		return "", fmt.Errorf("%w: missing %s", errs.ErrMalformed, name(field, i))
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, nil
}

// Int reads the next token as an integer in the given base.
func (c *Cursor) Int(field string, i, base int) (int, error) {
	n, err := c.Int64(field, i, base)
	return int(n), err
}

// Int64 reads the next token as a 64 bit integer in the given base.
func (c *Cursor) Int64(field string, i, base int) (int64, error) {
	tok, err := c.Next(field, i)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok, base, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", errs.ErrMalformed, name(field, i), tok)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative %s %q", errs.ErrMalformed, name(field, i), tok)
	}
	return n, nil
}

// Remaining returns the number of unread tokens.
func (c *Cursor) Remaining() int {
	return len(c.tokens) - c.pos
}

// Rest consumes and returns all unread tokens.
func (c *Cursor) Rest() []string {
	rest := c.tokens[c.pos:]
	c.pos = len(c.tokens)
	return rest
}

func name(field string, i int) string {
	if i == NoIndex {
		return field
	}
	return fmt.Sprintf("%s[%d]", field, i)
}

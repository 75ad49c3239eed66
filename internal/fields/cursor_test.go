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

package fields

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordnet/internal/errs"
)

func TestCursor(t *testing.T) {
	t.Parallel()

	c := NewCursor(strings.Fields("dog n 0a 3 x y"))

	tok, err := c.Next("lemma", NoIndex)
	if err != nil || tok != "dog" {
		t.Fatalf("Next: %q, %v", tok, err)
	}
	if _, err := c.Next("pos", NoIndex); err != nil {
		t.Fatalf("Next: %v", err)
	}
	n, err := c.Int("count", NoIndex, 16)
	if err != nil || n != 10 {
		t.Fatalf("Int: %d, %v", n, err)
	}
	n64, err := c.Int64("offset", 2, 10)
	if err != nil || n64 != 3 {
		t.Fatalf("Int64: %d, %v", n64, err)
	}
	if want, got := 2, c.Remaining(); want != got {
		t.Fatalf("Remaining; want: %d, got: %d", want, got)
	}
	if diff := cmp.Diff([]string{"x", "y"}, c.Rest()); diff != "" {
		t.Fatalf("Rest (-want, +got):\n%s", diff)
	}
	if want, got := 0, c.Remaining(); want != got {
		t.Fatalf("Remaining; want: %d, got: %d", want, got)
	}
}

func TestCursor_errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		read     func(*Cursor) error
		expected string
	}{
		{
			name: "missing",
			read: func(c *Cursor) error {
				_, err := c.Next("lemma", NoIndex)
				return err
			},
			expected: "malformed record: missing lemma",
		},
		{
			name: "missing indexed",
			read: func(c *Cursor) error {
				_, err := c.Next("pointer.symbol", 3)
				return err
			},
			expected: "malformed record: missing pointer.symbol[3]",
		},
		{
			name: "not a number",
			read: func(c *Cursor) error {
				c.tokens = []string{"zz"}
				_, err := c.Int("w_cnt", NoIndex, 16)
				return err
			},
			expected: `malformed record: invalid w_cnt "zz"`,
		},
		{
			name: "negative",
			read: func(c *Cursor) error {
				c.tokens = []string{"-1"}
				_, err := c.Int64("offset", NoIndex, 10)
				return err
			},
			expected: `malformed record: negative offset "-1"`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			err := test.read(NewCursor(nil))
			if !errors.Is(err, errs.ErrMalformed) {
				t.Fatalf("unexpected error: %v", err)
			}
			if want, got := test.expected, err.Error(); want != got {
				t.Fatalf("error; want: %q, got: %q", want, got)
			}
		})
	}
}

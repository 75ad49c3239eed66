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

package pos

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-wordnet/internal/errs"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code     string
		expected POS
		err      error
	}{
		{code: "n", expected: Noun},
		{code: "v", expected: Verb},
		{code: "a", expected: Adjective},
		{code: "s", expected: AdjectiveSatellite},
		{code: "r", expected: Adverb},
		{code: "x", err: errs.ErrMalformed},
		{code: "", err: errs.ErrMalformed},
		{code: "nn", err: errs.ErrMalformed},
	}

	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			t.Parallel()

			p, err := Parse(test.code)
			if !errors.Is(err, test.err) {
				t.Fatalf("Parse(%q): unexpected error: %v", test.code, err)
			}
			if diff := cmp.Diff(test.expected, p); diff != "" {
				t.Fatalf("Parse(%q) (-want, +got):\n%s", test.code, diff)
			}
		})
	}
}

func TestPOS_Storage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pos     POS
		storage Storage
		ext     string
		name    string
	}{
		{Noun, StorageNoun, "noun", "noun"},
		{Verb, StorageVerb, "verb", "verb"},
		{Adjective, StorageAdjective, "adj", "adjective"},
		{AdjectiveSatellite, StorageAdjective, "adj", "adjective satellite"},
		{Adverb, StorageAdverb, "adv", "adverb"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if want, got := test.storage, test.pos.Storage(); want != got {
				t.Errorf("Storage; want: %q, got: %q", want, got)
			}
			if want, got := test.ext, test.pos.Storage().Ext(); want != got {
				t.Errorf("Ext; want: %q, got: %q", want, got)
			}
			if want, got := test.name, test.pos.Name(); want != got {
				t.Errorf("Name; want: %q, got: %q", want, got)
			}
		})
	}
}

func TestStorageOrder(t *testing.T) {
	t.Parallel()

	want := []Storage{'n', 'v', 'a', 'r'}
	if diff := cmp.Diff(want, StorageOrder); diff != "" {
		t.Fatalf("StorageOrder (-want, +got):\n%s", diff)
	}
	for _, s := range StorageOrder {
		if !s.Valid() {
			t.Errorf("%q: not valid", s)
		}
	}
	if Storage('s').Valid() {
		t.Errorf("satellite must not be a storage part of speech")
	}
}

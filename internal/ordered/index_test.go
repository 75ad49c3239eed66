// Copyright 2024 Google LLC
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

package ordered

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type pair struct {
	key   string
	value int
}

func TestIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		pairs  []pair
		query  string
		search []int
		keys   []string
		values []int
	}{
		{
			name:   "empty",
			query:  "foo",
			search: nil,
			keys:   []string{},
			values: []int{},
		},
		{
			name:   "single results",
			pairs:  []pair{{"foo", 1}, {"bar", 2}, {"baz", 3}},
			query:  "foo",
			search: []int{1},
			keys:   []string{"foo", "bar", "baz"},
			values: []int{1, 2, 3},
		},
		{
			name:   "multiple results",
			pairs:  []pair{{"foo", 1}, {"bar", 2}, {"baz", 3}, {"bar", 4}},
			query:  "bar",
			search: []int{2, 4},
			keys:   []string{"foo", "bar", "baz"},
			values: []int{1, 2, 4, 3},
		},
		{
			name:   "no results",
			pairs:  []pair{{"foo", 1}, {"bar", 2}},
			query:  "none",
			search: nil,
			keys:   []string{"foo", "bar"},
			values: []int{1, 2},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			index := NewIndex[int]()
			for _, p := range test.pairs {
				index.Add(p.key, p.value)
			}

			if diff := cmp.Diff(test.search, index.Search(test.query)); diff != "" {
				t.Errorf("Search (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.keys, index.Keys()); diff != "" {
				t.Errorf("Keys (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff(test.values, index.Values()); diff != "" {
				t.Errorf("Values (-want, +got):\n%s", diff)
			}
			if want, got := len(test.pairs), index.Len(); want != got {
				t.Errorf("Len; want: %d, got: %d", want, got)
			}
		})
	}
}

func TestIndex_nil(t *testing.T) {
	t.Parallel()

	var index *Index[int]
	if got := index.Search("foo"); got != nil {
		t.Errorf("Search: %v", got)
	}
	if got := index.Keys(); got != nil {
		t.Errorf("Keys: %v", got)
	}
	if got := index.Len(); got != 0 {
		t.Errorf("Len: %d", got)
	}
}
